package ports

import "github.com/google/uuid"

// PasswordHasher определяет одностороннее хеширование пароля и проверку.
type PasswordHasher interface {
	// Hash возвращает хеш пароля для хранения в бд.
	Hash(password string) (string, error)

	// Verify проверяет пароль против сохраненного хеша.
	Verify(hash, password string) bool
}

// TokenService определяет выпуск и проверку bearer-токенов.
// Токен несет идентификатор пользователя (subject) и срок действия.
type TokenService interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
