package config

import (
	"encoding/json"
	"fmt"
)

// Accepted value descriptions used in TypeError.Want.
const (
	wantString         = "a string"
	wantNonEmptyString = "a non-empty string"
	wantInteger        = "an integer"
	wantBool           = "a boolean"
	wantList           = "a list"
	wantObject         = "an object"
)

// kindOf names the JSON kind of a decoded value.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any, Source:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func typeError(key, want string, v any) *TypeError {
	return &TypeError{Key: key, Want: want, Got: kindOf(v)}
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeError(key, wantString, v)
	}
	return s, nil
}

// asInt accepts JSON integers only. Fractional numbers and booleans are
// rejected even when they could be converted.
func asInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &TypeError{Key: key, Want: wantInteger, Got: "number " + n.String()}
		}
		return int(i), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	default:
		return 0, typeError(key, wantInteger, v)
	}
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, typeError(key, wantBool, v)
	}
	return b, nil
}

func asList(key string, v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, typeError(key, wantList, v)
	}
	return list, nil
}

func asObject(key string, v any) (map[string]any, error) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, nil
	case Source:
		return obj, nil
	default:
		return nil, typeError(key, wantObject, v)
	}
}

// requiredString reads a present, non-empty string field of obj.
func requiredString(obj map[string]any, parent, field string) (string, error) {
	key := parent + "." + field

	v, ok := obj[field]
	if !ok {
		return "", &TypeError{Key: key, Want: wantNonEmptyString, Got: gotMissing}
	}

	s, ok := v.(string)
	if !ok {
		return "", typeError(key, wantNonEmptyString, v)
	}
	if s == "" {
		return "", &TypeError{Key: key, Want: wantNonEmptyString, Got: "empty string"}
	}
	return s, nil
}
