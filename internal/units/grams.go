// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package units converts loosely formatted consumption quantities into numbers.
//
// Weight values arrive either as JSON numbers or as strings typed by hand
// ("0.35", "0.35g", "0.35 grams"). All parsing is done here so that the
// storage and service layers only ever see float64 grams.
package units

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidGrams is returned when a weight value is not a finite number
	// optionally followed by a grams unit.
	ErrInvalidGrams = errors.New("invalid grams value")

	// ErrEmptyGrams is returned for an empty weight string.
	ErrEmptyGrams = errors.New("empty grams value")
)

// gramSuffixes are checked longest first so "grams" is not cut down to "gram" + "s".
var gramSuffixes = []string{"grams", "gram", "gms", "gm", "gr", "g"}

// ParseGrams converts a weight given as a number or a string into grams.
//
// Supported inputs: float64, float32, int, int64, json.Number and string.
// Strings may carry a unit suffix: "0.35g", "0.35 g", "0.35 grams".
func ParseGrams(v any) (float64, error) {
	switch value := v.(type) {
	case float64:
		return finite(value)
	case float32:
		return finite(float64(value))
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case json.Number:
		return ParseGramsString(value.String())
	case string:
		return ParseGramsString(value)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidGrams, v)
	}
}

// ParseGramsString parses a textual weight such as "0.35", "0.35g" or "1.5 grams".
func ParseGramsString(s string) (float64, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return 0, ErrEmptyGrams
	}

	for _, suffix := range gramSuffixes {
		if strings.HasSuffix(raw, suffix) {
			raw = strings.TrimSpace(strings.TrimSuffix(raw, suffix))
			break
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrams, s)
	}

	return finite(value)
}

func finite(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: not a finite number", ErrInvalidGrams)
	}
	return value, nil
}

// Grams is a weight in grams that decodes from either a JSON number or a
// unit-suffixed JSON string. It always encodes as a plain number.
type Grams float64

// UnmarshalJSON implements [json.Unmarshaler].
func (g *Grams) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var v any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGrams, err)
	}

	value, err := ParseGrams(v)
	if err != nil {
		return err
	}

	*g = Grams(value)
	return nil
}

// Float64 returns the weight as a plain float64.
func (g Grams) Float64() float64 {
	return float64(g)
}

// Ptr returns the weight as *float64, nil when g itself is nil.
func (g *Grams) Ptr() *float64 {
	if g == nil {
		return nil
	}
	value := float64(*g)
	return &value
}
