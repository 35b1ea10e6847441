package domain

import "fmt"

// Makine tarafından okunabilir hata türleri; API hata gövdesindeki "error" alanında döner.
const (
	ErrKindValidation = "validation"
	ErrKindNotFound   = "not_found"
	ErrKindConflict   = "conflict"
	ErrKindStore      = "store"
)

const (
	EntityUser  = "kullanıcı"
	EntityOrder = "sipariş"
	EntityOffer = "teklif"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("geçersiz alan %q: %s", e.Field, e.Reason)
}

func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "alan gövdede bulunamadı"}
}

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s bulunamadı: %d", e.Entity, e.ID)
}

type ConflictError struct {
	Entity string
	ID     int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("bu id ile bir %s zaten mevcut: %d", e.Entity, e.ID)
}
