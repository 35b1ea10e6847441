package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout tel üzerindeki kanonik tarih biçimidir: "A/G/Y" (ay/gün/yıl),
// sıfır dolgusu zorunlu değildir. Hem girişte hem çıkışta bu biçim kullanılır.
const DateLayout = "1/2/2006"

// dateStoreLayout veritabanında TEXT sütununda tutulan biçimdir.
const dateStoreLayout = "2006-01-02"

// Date saat bileşeni olmayan bir takvim günüdür.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate "A/G/Y" biçimindeki bir dizgeyi çözümler; başka her biçim reddedilir.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("geçersiz tarih %q, beklenen biçim A/G/Y", s)
	}
	return Date{t: t.UTC()}, nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tarih dizge olmalı: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.t.Format(dateStoreLayout), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		t, err := time.Parse(dateStoreLayout, v)
		if err != nil {
			return fmt.Errorf("saklanan tarih çözümlenemedi %q: %w", v, err)
		}
		d.t = t
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		d.t = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	default:
		return fmt.Errorf("tarih için desteklenmeyen kaynak tipi: %T", src)
	}
}
