package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Params are query parameters. Values must be primitives, pointers to primitives or
// slices of primitives; nil values, nil pointers and empty strings are dropped.
type Params map[string]any

// Encode serialises p. Keys come out sorted.
func (p Params) Encode() string {
	return p.Values().Encode()
}

func (p Params) Values() url.Values {
	values := url.Values{}
	for key, raw := range p {
		for _, s := range formatValue(raw) {
			values.Add(key, s)
		}
	}
	return values
}

func formatValue(v any) []string {
	if v == nil {
		return nil
	}
	// A nil pointer must be dropped before String is called on it.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case bool:
		return []string{strconv.FormatBool(val)}
	case int:
		return []string{strconv.Itoa(val)}
	case int64:
		return []string{strconv.FormatInt(val, 10)}
	case float64:
		return []string{strconv.FormatFloat(val, 'f', -1, 64)}
	case fmt.Stringer:
		if s := val.String(); s != "" {
			return []string{s}
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		var out []string
		for i := 0; i < rv.Len(); i++ {
			out = append(out, formatValue(rv.Index(i).Interface())...)
		}
		return out
	default:
		s := fmt.Sprint(v)
		if s == "" {
			return nil
		}
		return []string{s}
	}
}
