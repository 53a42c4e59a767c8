package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser сохраняет нового пользователя в базе данных.
// ID и отметки времени назначаются здесь, если не заданы.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			s.logger.Warn("duplicate email on insert", "email", user.Email)
			return domain.NewError(domain.KindConflict, "User already exists")
		}
		s.logger.Error("failed to create user", "email", user.Email, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении пользователя: %w", result.Error)
	}

	s.logger.Info("user saved successfully",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByEmail получает пользователя по email.
// Возвращает (nil, nil), если запись не найдена.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get user by email", "email", email, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", result.Error)
	}
	return &user, nil
}

// GetUserByID получает пользователя по ID.
func (s *UserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get user by id", "user_id", id, "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по ID: %w", result.Error)
	}
	return &user, nil
}

// UpdateUser сохраняет измененного пользователя целиком.
func (s *UserStorage) UpdateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()
	user.UpdatedAt = time.Now()

	result := s.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewError(domain.KindConflict, "User already exists")
		}
		s.logger.Error("failed to update user", "user_id", user.ID, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении пользователя: %w", result.Error)
	}

	s.logger.Info("user updated successfully",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
