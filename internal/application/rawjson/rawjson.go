// Package rawjson holds the tolerant building blocks used by raw backend shapes.
// Nothing here is meant to leave a transformer.
package rawjson

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// List decodes a JSON array into its elements and anything else (missing, null,
// object, string, number) into an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*l = List[T]{}
		return nil
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	*l = items
	return nil
}

// Slice never returns nil, so canonical entities always serialise lists as [].
func (l List[T]) Slice() []T {
	if l == nil {
		return []T{}
	}
	out := make([]T, len(l))
	copy(out, l)
	return out
}

// Scalar accepts a JSON string, number or bool and keeps its text. null stays "".
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*s = ""
	case trimmed[0] == '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*s = Scalar(trimmed)
	default:
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return err
		}
		*s = Scalar(num.String())
	}
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Int accepts a JSON number or a numeric string. Anything unparseable is 0.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	var s Scalar
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	n, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = Int(n)
	return nil
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FirstNonEmpty returns the first non-empty value.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
