package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/InventoryApp/internal/config"
	"github.com/GoArmGo/InventoryApp/internal/core/ports"
	"github.com/GoArmGo/InventoryApp/internal/handler"
	"github.com/GoArmGo/InventoryApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter собирает маршруты API и статическую страницу фронтенда.
// AuthGuard навешивается только на защищенные группы.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	itemUseCase usecase.ItemUseCase,
	tokens ports.TokenService,
	userStorage ports.UserStorage,
) http.Handler {
	production := cfg.IsProduction()

	userHandler := handler.NewUserHandler(userUseCase, production, logger)
	itemHandler := handler.NewItemHandler(itemUseCase, production, logger)
	guard := handler.AuthGuard(tokens, userStorage, production, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to InventoryApp API"}`))
	})

	// Статическая одностраничная витрина
	r.Handle("/app/*", http.StripPrefix("/app/", http.FileServer(http.Dir("web/static"))))

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Post("/login", userHandler.Login)

		// Публичный "кто я": токен разбирается в самом обработчике
		r.Get("/me", userHandler.Me)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Get("/profile", userHandler.GetProfile)
			r.Put("/profile", userHandler.UpdateProfile)
		})
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Get("/{id}", itemHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", itemHandler.Create)
			r.Put("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.Delete)
		})
	})

	return r
}

// runServer запускает HTTP сервер и блокируется до отмены контекста
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, router http.Handler) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
