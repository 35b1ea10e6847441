package repository

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
	"taskflow/pkg/metrics"
)

type OfferRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewOfferRepository(db *sql.DB, logger logger.Logger) domain.OfferRepository {
	return &OfferRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OfferRepository) FindAll() ([]domain.Offer, error) {
	defer metrics.ObserveDatabaseOperation("list", "offer", time.Now())

	query := `SELECT id, order_id, executor_id FROM offers ORDER BY id`

	offers := make([]domain.Offer, 0)
	err := withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o domain.Offer
			if err := rows.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
				return err
			}
			offers = append(offers, o)
		}

		return rows.Err()
	})

	if err != nil {
		r.logger.Error("Teklifler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("teklifler listelenemedi: %w", err)
	}

	return offers, nil
}

func (r *OfferRepository) FindByID(id int64) (*domain.Offer, error) {
	defer metrics.ObserveDatabaseOperation("find_by_id", "offer", time.Now())

	query := `SELECT id, order_id, executor_id FROM offers WHERE id = $1`

	var offer domain.Offer
	err := withTx(r.db, func(tx *sql.Tx) error {
		return tx.QueryRow(query, id).Scan(&offer.ID, &offer.OrderID, &offer.ExecutorID)
	})

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Teklif ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("teklif sorgulanamadı: %w", err)
	}

	return &offer, nil
}

func (r *OfferRepository) Create(offer *domain.Offer) error {
	defer metrics.ObserveDatabaseOperation("create", "offer", time.Now())

	query := `INSERT INTO offers (id, order_id, executor_id) VALUES ($1, $2, $3)`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(query, offer.ID, offer.OrderID, offer.ExecutorID)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Entity: domain.EntityOffer, ID: offer.ID}
		}
		r.logger.Error("Teklif oluşturulamadı", map[string]interface{}{"id": offer.ID, "error": err.Error()})
		return fmt.Errorf("teklif oluşturulamadı: %w", err)
	}

	return nil
}

func (r *OfferRepository) Update(offer *domain.Offer) error {
	defer metrics.ObserveDatabaseOperation("update", "offer", time.Now())

	query := `UPDATE offers SET order_id = $1, executor_id = $2 WHERE id = $3`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(query, offer.OrderID, offer.ExecutorID, offer.ID)
		return err
	})

	if err != nil {
		r.logger.Error("Teklif güncellenemedi", map[string]interface{}{"id": offer.ID, "error": err.Error()})
		return fmt.Errorf("teklif güncellenemedi: %w", err)
	}

	return nil
}

func (r *OfferRepository) Delete(id int64) error {
	defer metrics.ObserveDatabaseOperation("delete", "offer", time.Now())

	query := `DELETE FROM offers WHERE id = $1`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(query, id)
		return err
	})

	if err != nil {
		r.logger.Error("Teklif silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("teklif silinemedi: %w", err)
	}

	return nil
}
