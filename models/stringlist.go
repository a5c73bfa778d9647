package models

import (
	"database/sql/driver"
	"encoding/json"
	"log"
)

// StringList is an ordered list of strings stored as a JSON text column.
// A malformed stored value scans to an empty list instead of failing the
// whole row read; the corruption is logged and never reaches the caller.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	if err := json.Unmarshal(bytes, l); err != nil {
		log.Printf("Warning: malformed stored list %q, substituting empty list: %v", string(bytes), err)
		*l = StringList{}
	}
	return nil
}
