package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Tags — список меток проекта, сериализуется в одну текстовую колонку.
type Tags []string

// Value implements driver.Valuer for gorm.
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for gorm.
func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("tags: unsupported column type")
	}
	if len(data) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(t))
}
