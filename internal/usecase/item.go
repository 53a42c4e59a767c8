package usecase

import (
	"context"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
)

// Pagination — сводка пагинации публичного списка предметов.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int64 `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
}

// ItemPage — страница предметов вместе со сводкой пагинации.
type ItemPage struct {
	Items      []domain.Item `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// CreateItemInput — данные создания предмета.
// Price обязателен (ноль допустим, отсутствие — нет), поэтому указатель.
type CreateItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	IsAvailable *bool    `json:"isAvailable"`
}

// UpdateItemInput — частичное обновление предмета,
// nil-поле означает "оставить прежнее значение".
type UpdateItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	IsAvailable *bool    `json:"isAvailable"`
}

// ItemUseCase определяет интерфейс бизнес-логики работы с предметами.
type ItemUseCase interface {
	// List возвращает публичную страницу предметов по фильтру,
	// отсортированную по времени создания (новые первыми).
	List(ctx context.Context, filter domain.ItemFilter, page, perPage int) (*ItemPage, error)

	// Get возвращает предмет по ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// Create создает предмет. Владелец всегда берется из ownerID,
	// даже если тело запроса содержало другое значение.
	Create(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) (*domain.Item, error)

	// Update применяет частичное обновление. Не-владелец получает
	// ошибку KindForbidden, предмет остается без изменений.
	Update(ctx context.Context, actorID, id uuid.UUID, input UpdateItemInput) (*domain.Item, error)

	// Remove удаляет предмет. Проверка владельца как в Update.
	Remove(ctx context.Context, actorID, id uuid.UUID) error
}
