package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/InventoryApp/internal/config"
	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/database/client"
	"github.com/GoArmGo/InventoryApp/internal/usecase"
)

type App struct {
	Config *config.Config

	logger      *slog.Logger
	dbClient    *client.Client
	userUseCase usecase.UserUseCase
	itemUseCase usecase.ItemUseCase
	tokens      ports.TokenService
	hasher      ports.PasswordHasher
	userStorage ports.UserStorage
	itemStorage ports.ItemStorage
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userUseCase usecase.UserUseCase,
	itemUseCase usecase.ItemUseCase,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	userStorage ports.UserStorage,
	itemStorage ports.ItemStorage,
) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		dbClient:    dbClient,
		userUseCase: userUseCase,
		itemUseCase: itemUseCase,
		tokens:      tokens,
		hasher:      hasher,
		userStorage: userStorage,
		itemStorage: itemStorage,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и по завершении
// аккуратно закрывает ресурсы.
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application running", "mode", mode)

	var err error

	switch mode {
	case "server":
		router := NewRouter(a.Config, a.logger, a.userUseCase, a.itemUseCase, a.tokens, a.userStorage)
		err = runServer(ctx, a.Config, a.logger, router)

	case "seed":
		err = runSeeder(ctx, a.logger, a.dbClient, a.userStorage, a.itemStorage, a.hasher, false)

	case "seed:destroy":
		err = runSeeder(ctx, a.logger, a.dbClient, a.userStorage, a.itemStorage, a.hasher, true)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server', 'seed' или 'seed:destroy')", mode)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
