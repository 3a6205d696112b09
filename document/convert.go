package document

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value into a document tree.
//
// Decoded JSON and YAML shapes ([]any, map[string]any, yaml.MapSlice and the
// numeric kinds) are converted directly. Map keys are sorted since Go maps
// carry no order. Any other value is serialized with encoding/json and decoded
// back, so struct field order and json tags are honoured.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if !validNumber(string(t)) {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSerialize, string(t))
		}
		return Number(t), nil
	case int:
		return Number(strconv.FormatInt(int64(t), 10)), nil
	case int8:
		return Number(strconv.FormatInt(int64(t), 10)), nil
	case int16:
		return Number(strconv.FormatInt(int64(t), 10)), nil
	case int32:
		return Number(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return Number(strconv.FormatInt(t, 10)), nil
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint8:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint16:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case float32:
		return fromFloat(float64(t), 32)
	case float64:
		return fromFloat(t, 64)
	case []any:
		arr := make(Array, 0, len(t))
		for _, item := range t {
			c, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, c)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		obj := NewObject()
		for _, k := range keys {
			c, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			obj.set(k, c)
		}
		return obj, nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range t {
			c, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			obj.set(mapKey(item.Key), c)
		}
		return obj, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	doc, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return doc, nil
}

func fromFloat(f float64, bitSize int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: unsupported number %v", ErrSerialize, f)
	}
	return Number(strconv.FormatFloat(f, 'g', -1, bitSize)), nil
}

func mapKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}

// ToAny converts a document tree into the plain Go shapes produced by
// encoding/json: map[string]any, []any, string, bool, nil and numbers as
// int64 when integral, float64 otherwise.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		if i, ok := t.Int64(); ok {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return json.Number(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, 0, len(t))
		for _, item := range t {
			out = append(out, ToAny(item))
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for k, item := range t.All() {
			out[k] = ToAny(item)
		}
		return out
	}
	return nil
}

// validNumber checks JSON number syntax only, so literals beyond float64
// range are kept as the decoder keeps them.
func validNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
