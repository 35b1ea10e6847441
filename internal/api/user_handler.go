package api

import (
	"fmt"
	"io"
	"net/http"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type UserHandler struct {
	service domain.UserService
	logger  logger.Logger
}

func NewUserHandler(service domain.UserService, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		h.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "body", Reason: "istek gövdesi okunamadı"})
		return
	}

	user, err := domain.ParseUser(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.CreateUser(user); err != nil {
		h.logger.Error("Kullanıcı oluşturma hatası", map[string]interface{}{"id": user.ID, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, fmt.Sprintf("Yeni kullanıcı oluşturuldu: %d", user.ID))
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "body", Reason: "istek gövdesi okunamadı"})
		return
	}

	user, err := domain.ParseUser(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.ReplaceUser(id, user); err != nil {
		h.logger.Error("Kullanıcı güncelleme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Kullanıcı güncellendi: %d", id))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		h.logger.Error("Kullanıcı silme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Kullanıcı silindi: %d", id))
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /users", h.ListUsers)
	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("GET /users/{id}", h.GetUserByID)
	mux.HandleFunc("PUT /users/{id}", h.ReplaceUser)
	mux.HandleFunc("DELETE /users/{id}", h.DeleteUser)
}
