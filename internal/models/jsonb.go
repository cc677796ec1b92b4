package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON unmarshals a jsonb column value into dest. Postgres drivers hand
// the raw value over as either []byte or string.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, dest)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type SectionMap map[string]string

func (m SectionMap) Value() (driver.Value, error) {
	if m == nil {
		m = SectionMap{}
	}
	return json.Marshal(m)
}

func (m *SectionMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}
