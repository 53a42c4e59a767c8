package ports

import (
	"context"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Методы Get* возвращают (nil, nil), если запись не найдена.
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

// ItemStorage определяет методы для взаимодействия с хранилищем предметов
type ItemStorage interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter, page, perPage int) ([]domain.Item, error)
	CountItems(ctx context.Context, filter domain.ItemFilter) (int64, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
