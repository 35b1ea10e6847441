package repository

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
	"taskflow/pkg/metrics"
)

type OrderRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewOrderRepository(db *sql.DB, logger logger.Logger) domain.OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

func scanOrder(row interface{ Scan(...interface{}) error }) (domain.Order, error) {
	var o domain.Order
	var executorID sql.NullInt64

	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Description,
		&o.StartDate,
		&o.EndDate,
		&o.Address,
		&o.Price,
		&o.CustomerID,
		&executorID,
	)
	if err != nil {
		return domain.Order{}, err
	}

	if executorID.Valid {
		o.ExecutorID = &executorID.Int64
	}

	return o, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func (r *OrderRepository) FindAll() ([]domain.Order, error) {
	defer metrics.ObserveDatabaseOperation("list", "order", time.Now())

	query := `
		SELECT id, name, description, start_date, end_date, address, price, customer_id, executor_id
		FROM orders ORDER BY id
	`

	orders := make([]domain.Order, 0)
	err := withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}

		return rows.Err()
	})

	if err != nil {
		r.logger.Error("Siparişler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("siparişler listelenemedi: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) FindByID(id int64) (*domain.Order, error) {
	defer metrics.ObserveDatabaseOperation("find_by_id", "order", time.Now())

	query := `
		SELECT id, name, description, start_date, end_date, address, price, customer_id, executor_id
		FROM orders WHERE id = $1
	`

	var order domain.Order
	err := withTx(r.db, func(tx *sql.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(query, id))
		return err
	})

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Sipariş ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("sipariş sorgulanamadı: %w", err)
	}

	return &order, nil
}

func (r *OrderRepository) Create(order *domain.Order) error {
	defer metrics.ObserveDatabaseOperation("create", "order", time.Now())

	query := `
		INSERT INTO orders (id, name, description, start_date, end_date, address, price, customer_id, executor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			query,
			order.ID,
			order.Name,
			order.Description,
			order.StartDate,
			order.EndDate,
			order.Address,
			order.Price,
			order.CustomerID,
			nullableID(order.ExecutorID),
		)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Entity: domain.EntityOrder, ID: order.ID}
		}
		r.logger.Error("Sipariş oluşturulamadı", map[string]interface{}{"id": order.ID, "error": err.Error()})
		return fmt.Errorf("sipariş oluşturulamadı: %w", err)
	}

	return nil
}

func (r *OrderRepository) Update(order *domain.Order) error {
	defer metrics.ObserveDatabaseOperation("update", "order", time.Now())

	query := `
		UPDATE orders
		SET name = $1, description = $2, start_date = $3, end_date = $4, address = $5, price = $6, customer_id = $7, executor_id = $8
		WHERE id = $9
	`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			query,
			order.Name,
			order.Description,
			order.StartDate,
			order.EndDate,
			order.Address,
			order.Price,
			order.CustomerID,
			nullableID(order.ExecutorID),
			order.ID,
		)
		return err
	})

	if err != nil {
		r.logger.Error("Sipariş güncellenemedi", map[string]interface{}{"id": order.ID, "error": err.Error()})
		return fmt.Errorf("sipariş güncellenemedi: %w", err)
	}

	return nil
}

func (r *OrderRepository) Delete(id int64) error {
	defer metrics.ObserveDatabaseOperation("delete", "order", time.Now())

	query := `DELETE FROM orders WHERE id = $1`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(query, id)
		return err
	})

	if err != nil {
		r.logger.Error("Sipariş silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("sipariş silinemedi: %w", err)
	}

	return nil
}
