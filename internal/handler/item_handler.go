package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/InventoryApp/internal/domain"
	"github.com/GoArmGo/InventoryApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ItemHandler — обработчик HTTP-запросов для работы с предметами.
type ItemHandler struct {
	itemUseCase usecase.ItemUseCase
	production  bool
	logger      *slog.Logger
}

// NewItemHandler создаёт новый экземпляр ItemHandler.
func NewItemHandler(uc usecase.ItemUseCase, production bool, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemUseCase: uc,
		production:  production,
		logger:      logger,
	}
}

// List — публичный список предметов с фильтром и пагинацией.
// GET /api/items?page=&limit=&category=&available=
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if perPage <= 0 {
		perPage = 10
	}

	filter := domain.ItemFilter{
		Category: r.URL.Query().Get("category"),
		// Фильтр активируется только литералом "true";
		// любое другое значение не ограничивает выборку
		AvailableOnly: r.URL.Query().Get("available") == "true",
	}

	pageResult, err := h.itemUseCase.List(r.Context(), filter, page, perPage)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, pageResult, h.logger)
}

// Get — возвращает один предмет по ID.
// GET /api/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Некорректный ID эквивалентен отсутствующему предмету
		respondWithError(w, http.StatusNotFound, "Item not found", h.production, h.logger)
		return
	}

	item, err := h.itemUseCase.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, item, h.logger)
}

// Create — создает предмет от имени аутентифицированного пользователя.
// Владелец всегда берется из identity, а не из тела запроса.
// POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	var input usecase.CreateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.production, h.logger)
		return
	}

	item, err := h.itemUseCase.Create(r.Context(), identity.ID, input)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, item, h.logger)
}

// Update — частично обновляет предмет владельца.
// PUT /api/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Item not found", h.production, h.logger)
		return
	}

	var input usecase.UpdateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.production, h.logger)
		return
	}

	item, err := h.itemUseCase.Update(r.Context(), identity.ID, id, input)
	if err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, item, h.logger)
}

// Delete — удаляет предмет владельца.
// DELETE /api/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Item not found", h.production, h.logger)
		return
	}

	if err := h.itemUseCase.Remove(r.Context(), identity.ID, id); err != nil {
		respondWithDomainError(w, err, h.production, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed"}, h.logger)
}
