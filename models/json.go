// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

var errUnsupportedScanType = errors.New("unsupported scan source type")

// StringList is a list of strings persisted as a JSONB array.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements [sql.Scanner].
func (l *StringList) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if raw == nil {
		*l = StringList{}
		return nil
	}

	var out []string
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("error decoding string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// JSONObject is a schema-free JSON object persisted as JSONB.
type JSONObject map[string]any

// Value implements [driver.Valuer]. A nil object is stored as "{}".
func (o JSONObject) Value() (driver.Value, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(o))
}

// Scan implements [sql.Scanner].
func (o *JSONObject) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if raw == nil {
		*o = JSONObject{}
		return nil
	}

	out := make(map[string]any)
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("error decoding json object: %w", err)
	}
	*o = out
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedScanType, src)
	}
}
