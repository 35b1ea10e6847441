package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"taskflow/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondError hata türünü durum koduna ve makine tarafından okunabilir
// hata gövdesine çevirir. Depolama hataları istemciye detay sızdırmaz.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: domain.ErrKindValidation, Message: validationErr.Error()})
	case errors.As(err, &notFoundErr):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: domain.ErrKindNotFound, Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: domain.ErrKindConflict, Message: conflictErr.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: domain.ErrKindStore, Message: "beklenmeyen depolama hatası"})
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Reason: "yol parametresi tam sayı değil"}
	}
	return id, nil
}
