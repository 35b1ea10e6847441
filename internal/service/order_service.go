package service

import (
	"fmt"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type OrderService struct {
	repo   domain.OrderRepository
	logger logger.Logger
}

func NewOrderService(repo domain.OrderRepository, logger logger.Logger) domain.OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
	}
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("siparişler listelenemedi: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(id int64) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("sipariş bulunamadı: %w", err)
	}

	if order == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityOrder, ID: id}
	}

	return order, nil
}

func (s *OrderService) CreateOrder(order *domain.Order) error {
	existing, err := s.repo.FindByID(order.ID)
	if err != nil {
		s.logger.Error("ID kontrolü sırasında hata oluştu", map[string]interface{}{"id": order.ID, "error": err.Error()})
		return fmt.Errorf("sipariş oluşturulamadı: %w", err)
	}

	if existing != nil {
		return &domain.ConflictError{Entity: domain.EntityOrder, ID: order.ID}
	}

	// start_date <= end_date beklenir ama zorunlu tutulmaz; ters aralıklar
	// kaydedilir ve olduğu gibi geri döner.
	if err := s.repo.Create(order); err != nil {
		return err
	}

	s.logger.Info("Yeni sipariş oluşturuldu", map[string]interface{}{"id": order.ID})
	return nil
}

func (s *OrderService) ReplaceOrder(id int64, order *domain.Order) error {
	if order.ID != id {
		return &domain.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("gövdedeki id (%d) yol parametresiyle (%d) eşleşmiyor", order.ID, id),
		}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("sipariş güncellenemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityOrder, ID: id}
	}

	if err := s.repo.Update(order); err != nil {
		return err
	}

	s.logger.Info("Sipariş güncellendi", map[string]interface{}{"id": id})
	return nil
}

func (s *OrderService) DeleteOrder(id int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("sipariş silinemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityOrder, ID: id}
	}

	// İlişkili teklifler bilerek silinmez; sarkan referanslar
	// uygulama katmanında doğrulanmıyor.
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Sipariş silindi", map[string]interface{}{"id": id})
	return nil
}
