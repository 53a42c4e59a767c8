package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthPayload — публичные поля пользователя плюс свежий bearer-токен.
// Возвращается из регистрации, логина и обновления профиля.
type AuthPayload struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

// Profile — публичные поля пользователя без токена.
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// RegisterInput — данные регистрации нового пользователя.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateInput — частичное обновление профиля.
// nil-поле означает "оставить прежнее значение".
type ProfileUpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями.
type UserUseCase interface {
	// Register создает пользователя, хеширует пароль и выпускает токен.
	// Дубликат email завершается ошибкой KindConflict без записи в хранилище.
	Register(ctx context.Context, input RegisterInput) (*AuthPayload, error)

	// Login проверяет учетные данные и выпускает токен.
	// Неизвестный email и неверный пароль дают одинаковое сообщение,
	// чтобы не раскрывать, какое из полей было неверным.
	Login(ctx context.Context, email, password string) (*AuthPayload, error)

	// GetProfile возвращает публичные поля пользователя по его ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// UpdateProfile применяет только присутствующие поля, перехеширует
	// пароль при его наличии и выпускает свежий токен.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdateInput) (*AuthPayload, error)

	// ResolveFromToken проверяет токен и возвращает публичные поля
	// пользователя — для публичного маршрута "кто я" без Auth Guard.
	ResolveFromToken(ctx context.Context, token string) (*Profile, error)
}
