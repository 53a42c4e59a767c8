package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/GoArmGo/InventoryApp/internal/domain"
)

// errorEnvelope — единый формат ошибки API.
// Stack заполняется только вне production-режима.
type errorEnvelope struct {
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет конверт ошибки.
func respondWithError(w http.ResponseWriter, code int, message string, production bool, logger *slog.Logger) {
	envelope := errorEnvelope{Message: message}
	if !production {
		stack := string(debug.Stack())
		envelope.Stack = &stack
	}
	respondWithJSON(w, code, envelope, logger)
}

// statusForError — фиксированная таблица kind → HTTP-статус.
// Несовпадение владельца намеренно дает 401, а не 403:
// так вело себя наблюдаемое поведение, менять его нельзя молча.
func statusForError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWithDomainError — преобразует ошибку бизнес-слоя в HTTP-ответ.
// Неожиданные ошибки уходят как 500 с исходным сообщением.
func respondWithDomainError(w http.ResponseWriter, err error, production bool, logger *slog.Logger) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		logger.Error("unhandled error", "error", err)
	}
	respondWithError(w, code, err.Error(), production, logger)
}
