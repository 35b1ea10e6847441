package api

import (
	"fmt"
	"io"
	"net/http"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type OfferHandler struct {
	service domain.OfferService
	logger  logger.Logger
}

func NewOfferHandler(service domain.OfferService, logger logger.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListOffers()
	if err != nil {
		h.logger.Error("Teklifler listelenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ValidationError{Field: "body", Reason: "istek gövdesi okunamadı"})
		return
	}

	offer, err := domain.ParseOffer(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.CreateOffer(offer); err != nil {
		h.logger.Error("Teklif oluşturma hatası", map[string]interface{}{"id": offer.ID, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, fmt.Sprintf("Yeni teklif oluşturuldu: %d", offer.ID))
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	offer, err := h.service.GetOfferByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) ReplaceOffer(w http.ResponseWriter, r *http.Request) {
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

	offer, err := domain.ParseOffer(body)
	if err != nil {
		h.logger.Error("İstek gövdesi çözümlenemedi", map[string]interface{}{"error": err.Error()})
		respondError(w, err)
		return
	}

	if err := h.service.ReplaceOffer(id, offer); err != nil {
		h.logger.Error("Teklif güncelleme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Teklif güncellendi: %d", id))
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.DeleteOffer(id); err != nil {
		h.logger.Error("Teklif silme hatası", map[string]interface{}{"id": id, "error": err.Error()})
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Teklif silindi: %d", id))
}

func (h *OfferHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /offers", h.ListOffers)
	mux.HandleFunc("POST /offers", h.CreateOffer)
	mux.HandleFunc("GET /offers/{id}", h.GetOfferByID)
	mux.HandleFunc("PUT /offers/{id}", h.ReplaceOffer)
	mux.HandleFunc("DELETE /offers/{id}", h.DeleteOffer)
}
