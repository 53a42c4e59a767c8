package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/database/client"
	"github.com/GoArmGo/InventoryApp/internal/domain"
)

// Тестовые пользователи; пароль у всех "password123"
var seedUsers = []domain.User{
	{Name: "Admin User", Email: "admin@example.com"},
	{Name: "John Doe", Email: "john@example.com"},
	{Name: "Jane Smith", Email: "jane@example.com"},
}

var seedCategories = []string{"Electronics", "Clothing", "Books", "Home", "Sports"}

const seedPassword = "password123"

// runSeeder наполняет базу тестовыми данными: пользователи с
// захешированными паролями и по 5-10 предметов на каждого.
// destroyOnly очищает таблицы без наполнения.
func runSeeder(
	ctx context.Context,
	logger *slog.Logger,
	dbClient *client.Client,
	userStorage ports.UserStorage,
	itemStorage ports.ItemStorage,
	hasher ports.PasswordHasher,
	destroyOnly bool,
) error {
	// Предметы ссылаются на пользователей, порядок очистки важен
	if err := dbClient.Gorm.WithContext(ctx).Exec("DELETE FROM items").Error; err != nil {
		return fmt.Errorf("ошибка очистки таблицы items: %w", err)
	}
	if err := dbClient.Gorm.WithContext(ctx).Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("ошибка очистки таблицы users: %w", err)
	}

	if destroyOnly {
		logger.Info("data destroyed")
		return nil
	}

	hash, err := hasher.Hash(seedPassword)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля для сидов: %w", err)
	}

	itemsCreated := 0
	for _, u := range seedUsers {
		user := u
		user.PasswordHash = hash
		if err := userStorage.CreateUser(ctx, &user); err != nil {
			return fmt.Errorf("ошибка создания пользователя %s: %w", user.Email, err)
		}

		count := 5 + rand.Intn(6)
		for i := 0; i < count; i++ {
			item := randomItem(user)
			if err := itemStorage.CreateItem(ctx, &item); err != nil {
				return fmt.Errorf("ошибка создания предмета для %s: %w", user.Email, err)
			}
			itemsCreated++
		}
	}

	logger.Info("data imported",
		"users", len(seedUsers),
		"items", itemsCreated,
	)
	return nil
}

// randomItem генерирует случайный предмет для пользователя.
func randomItem(owner domain.User) domain.Item {
	category := seedCategories[rand.Intn(len(seedCategories))]
	return domain.Item{
		OwnerID:     owner.ID,
		Name:        fmt.Sprintf("%s Item %d", category, rand.Intn(100)),
		Description: fmt.Sprintf("This is a sample %s item description.", strings.ToLower(category)),
		Category:    category,
		Price:       float64(rand.Intn(9000)+1000) / 100,
		Quantity:    rand.Intn(50) + 1,
		IsAvailable: rand.Float64() > 0.2,
	}
}
