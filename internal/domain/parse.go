package domain

import "encoding/json"

// decodeFields istek gövdesini düz bir alan haritasına çözer.
func decodeFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &ValidationError{Field: "body", Reason: "gövde bir JSON nesnesi değil"}
	}
	return fields, nil
}

// requireField alanın gövdede bulunmasını şart koşar; null değer mevcut sayılır.
func requireField(fields map[string]json.RawMessage, name string, dst interface{}) error {
	raw, ok := fields[name]
	if !ok {
		return NewMissingFieldError(name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ValidationError{Field: name, Reason: "alan değeri beklenen tipte değil"}
	}
	return nil
}

func requireDateField(fields map[string]json.RawMessage, name string) (Date, error) {
	var s string
	if err := requireField(fields, name, &s); err != nil {
		return Date{}, err
	}

	d, err := ParseDate(s)
	if err != nil {
		return Date{}, &ValidationError{Field: name, Reason: err.Error()}
	}

	return d, nil
}
