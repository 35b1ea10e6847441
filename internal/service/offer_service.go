package service

import (
	"fmt"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type OfferService struct {
	repo   domain.OfferRepository
	logger logger.Logger
}

func NewOfferService(repo domain.OfferRepository, logger logger.Logger) domain.OfferService {
	return &OfferService{
		repo:   repo,
		logger: logger,
	}
}

func (s *OfferService) ListOffers() ([]domain.Offer, error) {
	offers, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("teklifler listelenemedi: %w", err)
	}
	return offers, nil
}

func (s *OfferService) GetOfferByID(id int64) (*domain.Offer, error) {
	offer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("teklif bulunamadı: %w", err)
	}

	if offer == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityOffer, ID: id}
	}

	return offer, nil
}

func (s *OfferService) CreateOffer(offer *domain.Offer) error {
	existing, err := s.repo.FindByID(offer.ID)
	if err != nil {
		s.logger.Error("ID kontrolü sırasında hata oluştu", map[string]interface{}{"id": offer.ID, "error": err.Error()})
		return fmt.Errorf("teklif oluşturulamadı: %w", err)
	}

	if existing != nil {
		return &domain.ConflictError{Entity: domain.EntityOffer, ID: offer.ID}
	}

	if err := s.repo.Create(offer); err != nil {
		return err
	}

	s.logger.Info("Yeni teklif oluşturuldu", map[string]interface{}{"id": offer.ID})
	return nil
}

func (s *OfferService) ReplaceOffer(id int64, offer *domain.Offer) error {
	if offer.ID != id {
		return &domain.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("gövdedeki id (%d) yol parametresiyle (%d) eşleşmiyor", offer.ID, id),
		}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("teklif güncellenemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityOffer, ID: id}
	}

	if err := s.repo.Update(offer); err != nil {
		return err
	}

	s.logger.Info("Teklif güncellendi", map[string]interface{}{"id": id})
	return nil
}

func (s *OfferService) DeleteOffer(id int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("teklif silinemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityOffer, ID: id}
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Teklif silindi", map[string]interface{}{"id": id})
	return nil
}
