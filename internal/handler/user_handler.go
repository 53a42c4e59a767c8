package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoArmGo/InventoryApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	production  bool
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, production bool, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		production:  production,
		logger:      logger,
	}
}

// Register — регистрирует нового пользователя.
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.production, h.logger)
		return
	}

	payload, err := h.userUseCase.Register(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, payload, h.logger)
}

// Login — аутентифицирует пользователя и выдает токен.
// POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.production, h.logger)
		return
	}

	payload, err := h.userUseCase.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, payload, h.logger)
}

// Me — публичный маршрут "кто я": сам разбирает bearer-заголовок,
// не проходя через AuthGuard.
// GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
		respondWithError(w, http.StatusUnauthorized, "Not authorized, no token", h.production, h.logger)
		return
	}

	profile, err := h.userUseCase.ResolveFromToken(r.Context(), parts[1])
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, profile, h.logger)
}

// GetProfile — возвращает профиль аутентифицированного пользователя.
// GET /api/users/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	profile, err := h.userUseCase.GetProfile(r.Context(), identity.ID)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, profile, h.logger)
}

// UpdateProfile — частично обновляет профиль и возвращает свежий токен.
// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var input usecase.ProfileUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.production, h.logger)
		return
	}

	payload, err := h.userUseCase.UpdateProfile(r.Context(), identity.ID, input)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, payload, h.logger)
}
