package api

import (
	"fmt"
	"io"
	"net/http"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type OrderHandler struct {
	service domain.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service domain.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders()
	if err != nil {
		h.logger.Error("Siparişler listelenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "body", Reason: "istek gövdesi okunamadı"})
		return
	}

	order, err := domain.ParseOrder(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.CreateOrder(order); err != nil {
		h.logger.Error("Sipariş oluşturma hatası", map[string]interface{}{"id": order.ID, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, fmt.Sprintf("Yeni sipariş oluşturuldu: %d", order.ID))
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	order, err := h.service.GetOrderByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ReplaceOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := domain.ParseOrder(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.ReplaceOrder(id, order); err != nil {
		h.logger.Error("Sipariş güncelleme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Sipariş güncellendi: %d", id))
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.DeleteOrder(id); err != nil {
		h.logger.Error("Sipariş silme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Sipariş silindi: %d", id))
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /orders", h.ListOrders)
	mux.HandleFunc("POST /orders", h.CreateOrder)
	mux.HandleFunc("GET /orders/{id}", h.GetOrderByID)
	mux.HandleFunc("PUT /orders/{id}", h.ReplaceOrder)
	mux.HandleFunc("DELETE /orders/{id}", h.DeleteOrder)
}
