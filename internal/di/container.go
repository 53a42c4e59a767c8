package di

import (
	"github.com/GoArmGo/InventoryApp/internal/app"
	"github.com/GoArmGo/InventoryApp/internal/auth"
	"github.com/GoArmGo/InventoryApp/internal/config"
	"github.com/GoArmGo/InventoryApp/internal/database/client"
	"github.com/GoArmGo/InventoryApp/internal/database/storage"
	"github.com/GoArmGo/InventoryApp/internal/logger"
	"github.com/GoArmGo/InventoryApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (соединение + миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	itemStorage := storage.NewItemStorage(dbClient.Gorm, slogger)

	// 4. Инициализация внешних коллабораторов: хешер паролей и токены
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTService([]byte(cfg.JWTSecret), cfg.JWTExpiresIn)

	// 5. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, hasher, tokens, slogger)
	itemUseCase := usecase.NewItemUseCase(itemStorage, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userUseCase,
		itemUseCase,
		tokens,
		hasher,
		userStorage,
		itemStorage,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
