package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/google/uuid"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	hasher      ports.PasswordHasher
	tokens      ports.TokenService
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
// принимает реализации портов UserStorage, PasswordHasher и TokenService
func NewUserUseCase(
	userStorage ports.UserStorage,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage: userStorage,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя.
// Проверяет обязательные поля, уникальность email, хеширует пароль,
// сохраняет запись и выпускает токен.
func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*AuthPayload, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.NewError(domain.KindValidation, "Please add all fields")
	}

	existing, err := uc.userStorage.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя по email: %w", err)
	}
	if existing != nil {
		return nil, domain.NewError(domain.KindConflict, "User already exists")
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return &AuthPayload{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

// Login аутентифицирует пользователя по email и паролю.
func (uc *userUseCase) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя по email: %w", err)
	}

	// Одно и то же сообщение для неизвестного email и неверного пароля
	if user == nil || !uc.hasher.Verify(user.PasswordHash, password) {
		return nil, domain.NewError(domain.KindAuth, "Invalid email or password")
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return &AuthPayload{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

// GetProfile возвращает публичные поля пользователя.
func (uc *userUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID: %w", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.KindNotFound, "User not found")
	}
	return &Profile{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// UpdateProfile применяет частичное обновление профиля и выпускает свежий токен.
// Токен перевыпускается для совместимости с прежним поведением,
// хотя subject (ID) никогда не меняется.
func (uc *userUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdateInput) (*AuthPayload, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID: %w", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.KindNotFound, "User not found")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.NewError(domain.KindValidation, "Name cannot be empty")
		}
		user.Name = *input.Name
	}

	if input.Email != nil && *input.Email != user.Email {
		if *input.Email == "" {
			return nil, domain.NewError(domain.KindValidation, "Email cannot be empty")
		}
		other, err := uc.userStorage.GetUserByEmail(ctx, *input.Email)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка при проверке уникальности email: %w", err)
		}
		if other != nil {
			return nil, domain.NewError(domain.KindConflict, "User already exists")
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.NewError(domain.KindValidation, "Password cannot be empty")
		}
		hash, err := uc.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userStorage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении пользователя: %w", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user profile updated", "user_id", user.ID)
	return &AuthPayload{ID: user.ID, Name: user.Name, Email: user.Email, Token: token}, nil
}

// ResolveFromToken проверяет токен и возвращает публичные поля пользователя.
func (uc *userUseCase) ResolveFromToken(ctx context.Context, token string) (*Profile, error) {
	userID, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, domain.NewError(domain.KindAuth, "Not authorized, token failed")
	}

	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении пользователя по ID: %w", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.KindNotFound, "User not found")
	}
	return &Profile{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
