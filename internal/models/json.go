package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Loose JSON columns. The stored shape is whatever the client sent; nothing
// here validates it.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// JSONValue holds an arbitrary JSON document (object, array or scalar).
type JSONValue struct {
	Raw json.RawMessage
}

func (v JSONValue) IsZero() bool {
	return len(v.Raw) == 0
}

func (v JSONValue) Value() (driver.Value, error) {
	if len(v.Raw) == 0 {
		return nil, nil
	}
	return string(v.Raw), nil
}

func (v *JSONValue) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		v.Raw = nil
		return nil
	case []byte:
		v.Raw = append(json.RawMessage(nil), s...)
		return nil
	case string:
		v.Raw = json.RawMessage(s)
		return nil
	}
	return errors.New("unsupported source for JSONValue")
}

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v.Raw) == 0 {
		return []byte("null"), nil
	}
	return v.Raw, nil
}

func (v *JSONValue) UnmarshalJSON(b []byte) error {
	v.Raw = append(json.RawMessage(nil), b...)
	return nil
}

type VisitDocument struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	URL        string    `json:"url,omitempty"`
	UploadTime time.Time `json:"upload_time"`
}

type DocumentList []VisitDocument

func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *DocumentList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	}
	return errors.New("unsupported source for JSON column")
}
