package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// withTx her depo çağrısını kendi kapsamlı transaction'ı içinde çalıştırır.
// Hata yolu dahil her çıkışta bağlantının serbest bırakılması garanti edilir.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("transaction başlatılamadı: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit edilemedi: %w", err)
	}

	return nil
}

// isUniqueViolation INSERT sırasında birincil anahtar çakışmasını yakalar.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
