package repository

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
	"taskflow/pkg/metrics"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) FindAll() ([]domain.User, error) {
	defer metrics.ObserveDatabaseOperation("list", "user", time.Now())

	query := `SELECT id, first_name, last_name, age, email, role, phone FROM users ORDER BY id`

	users := make([]domain.User, 0)
	err := withTx(r.db, func(tx *sql.Tx) error {
		rows, err := tx.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u domain.User
			if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone); err != nil {
				return err
			}
			users = append(users, u)
		}

		return rows.Err()
	})

	if err != nil {
		r.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}

	return users, nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	defer metrics.ObserveDatabaseOperation("find_by_id", "user", time.Now())

	query := `SELECT id, first_name, last_name, age, email, role, phone FROM users WHERE id = $1`

	var user domain.User
	err := withTx(r.db, func(tx *sql.Tx) error {
		return tx.QueryRow(query, id).Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Age,
			&user.Email,
			&user.Role,
			&user.Phone,
		)
	})

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Create(user *domain.User) error {
	defer metrics.ObserveDatabaseOperation("create", "user", time.Now())

	query := `
		INSERT INTO users (id, first_name, last_name, age, email, role, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			query,
			user.ID,
			user.FirstName,
			user.LastName,
			user.Age,
			user.Email,
			user.Role,
			user.Phone,
		)
		return err
	})

	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Entity: domain.EntityUser, ID: user.ID}
		}
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	return nil
}

func (r *UserRepository) Update(user *domain.User) error {
	defer metrics.ObserveDatabaseOperation("update", "user", time.Now())

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, age = $3, email = $4, role = $5, phone = $6
		WHERE id = $7
	`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			query,
			user.FirstName,
			user.LastName,
			user.Age,
			user.Email,
			user.Role,
			user.Phone,
			user.ID,
		)
		return err
	})

	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(id int64) error {
	defer metrics.ObserveDatabaseOperation("delete", "user", time.Now())

	query := `DELETE FROM users WHERE id = $1`

	err := withTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(query, id)
		return err
	})

	if err != nil {
		r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return nil
}
