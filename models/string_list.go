// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of free-text tags (effects, flavors, aroma).
// It is stored in a single TEXT column as a JSON array so the same schema
// works on PostgreSQL and SQLite.
type StringList []string

// Value implements [driver.Valuer].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return l.decode([]byte(value))
	case []byte:
		return l.decode(value)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

func (l *StringList) decode(b []byte) error {
	if len(b) == 0 {
		*l = nil
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("error decoding StringList: %w", err)
	}
	*l = items
	return nil
}
