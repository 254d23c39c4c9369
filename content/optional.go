// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Optional is a text value that may be absent.
//
// The zero value is absent. Some("") is present and empty, which is a
// different state: consumers omit the dependent element only when the value
// is absent.
type Optional struct {
	value   string
	present bool
}

// Some returns a present Optional holding s.
func Some(s string) Optional {
	return Optional{value: s, present: true}
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.present
}

// Present reports whether the value is present.
func (o Optional) Present() bool {
	return o.present
}

// Or returns the value if present, otherwise fallback.
func (o Optional) Or(fallback string) string {
	if o.present {
		return o.value
	}

	return fallback
}

// IsZero reports whether the value is absent. Encoders use it for omitzero
// and omitempty.
func (o Optional) IsZero() bool {
	return !o.present
}

func (o Optional) String() string {
	if !o.present {
		return "<absent>"
	}

	return o.value
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional{}

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*o = Some(s)

	return nil
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler.
func (o Optional) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler. A null or
// missing value decodes as absent; a quoted empty string is present.
func (o *Optional) UnmarshalYAML(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "", "null", "~", "Null", "NULL":
		*o = Optional{}

		return nil
	}

	var s string
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}

	*o = Some(s)

	return nil
}
