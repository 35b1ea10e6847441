package database

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow/pkg/logger"
)

type MigrationService struct {
	db     *sql.DB
	logger logger.Logger
}

func NewMigrationService(db *sql.DB, logger logger.Logger) *MigrationService {
	return &MigrationService{
		db:     db,
		logger: logger,
	}
}

func (m *MigrationService) InitMigrationTable() error {
	query := `
    CREATE TABLE IF NOT EXISTS migrations (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL UNIQUE,
        applied_at TIMESTAMP NOT NULL
    )
    `

	_, err := m.db.Exec(query)
	if err != nil {
		m.logger.Error("Migration tablosu oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return err
	}

	return nil
}

func (m *MigrationService) IsMigrationApplied(name string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE name = $1"
	err := m.db.QueryRow(query, name).Scan(&count)
	if err != nil {
		m.logger.Error("Migration durumu kontrol edilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return false, err
	}

	return count > 0, nil
}

func (m *MigrationService) ApplyMigration(name string, migrationFunc func(*sql.Tx) error) error {
	applied, err := m.IsMigrationApplied(name)
	if err != nil {
		return err
	}

	if applied {
		m.logger.Debug("Migration zaten uygulanmış", map[string]interface{}{"name": name})
		return nil
	}

	m.logger.Info("Migration uygulanıyor", map[string]interface{}{"name": name})

	tx, err := m.db.Begin()
	if err != nil {
		m.logger.Error("Transaction başlatılamadı", map[string]interface{}{"error": err.Error()})
		return err
	}

	if err := migrationFunc(tx); err != nil {
		tx.Rollback()
		m.logger.Error("Migration uygulanamadı", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	if _, err := tx.Exec("INSERT INTO migrations (name, applied_at) VALUES ($1, $2)", name, time.Now()); err != nil {
		tx.Rollback()
		m.logger.Error("Migration kaydedilemedi", map[string]interface{}{"name": name, "error": err.Error()})
		return err
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("Transaction commit edilemedi", map[string]interface{}{"error": err.Error()})
		return err
	}

	m.logger.Info("Migration başarıyla uygulandı", map[string]interface{}{"name": name})
	return nil
}

func (m *MigrationService) RunMigrations() error {
	if err := m.InitMigrationTable(); err != nil {
		return fmt.Errorf("migration tablosu oluşturulamadı: %w", err)
	}

	migrations := []struct {
		Name string
		Func func(*sql.Tx) error
	}{
		{"create_users_table", CreateUsersTable},
		{"create_orders_table", CreateOrdersTable},
		{"create_offers_table", CreateOffersTable},
	}

	for _, migration := range migrations {
		if err := m.ApplyMigration(migration.Name, migration.Func); err != nil {
			return fmt.Errorf("migration uygulanamadı %s: %w", migration.Name, err)
		}
	}

	return nil
}

// Kimlikler istemci tarafından atanır; AUTOINCREMENT kullanılmaz.
// Tarihler TEXT sütununda ISO biçiminde tutulur.

func CreateUsersTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY,
        first_name TEXT NOT NULL,
        last_name TEXT NOT NULL,
        age INTEGER NOT NULL,
        email TEXT NOT NULL,
        role TEXT NOT NULL,
        phone TEXT NOT NULL
    )
    `

	_, err := tx.Exec(query)
	return err
}

func CreateOrdersTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS orders (
        id INTEGER PRIMARY KEY,
        name TEXT NOT NULL,
        description TEXT NOT NULL,
        start_date TEXT NOT NULL,
        end_date TEXT NOT NULL,
        address TEXT NOT NULL,
        price REAL NOT NULL,
        customer_id INTEGER NOT NULL,
        executor_id INTEGER
    )
    `

	_, err := tx.Exec(query)
	return err
}

func CreateOffersTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS offers (
        id INTEGER PRIMARY KEY,
        order_id INTEGER NOT NULL,
        executor_id INTEGER NOT NULL
    )
    `

	_, err := tx.Exec(query)
	return err
}
