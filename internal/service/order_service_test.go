package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/domain"
)

type stubOrderRepo struct {
	findByIDFn func(id int64) (*domain.Order, error)
	createFn   func(order *domain.Order) error
}

func (s *stubOrderRepo) FindAll() ([]domain.Order, error) { return nil, nil }

func (s *stubOrderRepo) FindByID(id int64) (*domain.Order, error) { return s.findByIDFn(id) }

func (s *stubOrderRepo) Create(order *domain.Order) error { return s.createFn(order) }

func (s *stubOrderRepo) Update(order *domain.Order) error { return nil }

func (s *stubOrderRepo) Delete(id int64) error { return nil }

func sampleOrder(id int64) *domain.Order {
	return &domain.Order{
		ID:          id,
		Name:        "A",
		Description: "d",
		StartDate:   domain.NewDate(2024, time.June, 1),
		EndDate:     domain.NewDate(2024, time.June, 10),
		Address:     "x",
		Price:       100,
		CustomerID:  5,
	}
}

func TestCreateOrder_Duplicate(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{
		findByIDFn: func(id int64) (*domain.Order, error) { return sampleOrder(id), nil },
	}
	svc := NewOrderService(repo, testLogger())

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, svc.CreateOrder(sampleOrder(1)), &conflictErr)
	assert.Equal(t, domain.EntityOrder, conflictErr.Entity)
}

func TestCreateOrder_ReversedDatesAccepted(t *testing.T) {
	t.Parallel()

	// start_date <= end_date beklenir ama zorunlu değildir.
	var created *domain.Order
	repo := &stubOrderRepo{
		findByIDFn: func(id int64) (*domain.Order, error) { return nil, nil },
		createFn: func(order *domain.Order) error {
			created = order
			return nil
		},
	}
	svc := NewOrderService(repo, testLogger())

	order := sampleOrder(1)
	order.StartDate = domain.NewDate(2024, time.June, 10)
	order.EndDate = domain.NewDate(2024, time.June, 1)

	require.NoError(t, svc.CreateOrder(order))
	require.NotNil(t, created)
}

func TestReplaceOrder_IDMismatch(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{
		findByIDFn: func(id int64) (*domain.Order, error) {
			t.Fatal("id uyuşmazlığında depo çağrılmamalı")
			return nil, nil
		},
	}
	svc := NewOrderService(repo, testLogger())

	var validationErr *domain.ValidationError
	require.ErrorAs(t, svc.ReplaceOrder(9, sampleOrder(1)), &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}
