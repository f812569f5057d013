package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Coerce converts decoded JSON array elements into item text.
//
// Strings are used verbatim, json.Number keeps its literal form, booleans
// and null use their JSON spelling, and objects or arrays are re-encoded as
// compact JSON.
func Coerce(values []any) ([]string, error) {
	items := make([]string, 0, len(values))
	for i, value := range values {
		text, err := coerceValue(value)
		if err != nil {
			return nil, fmt.Errorf("resources: item %d: %w", i+1, err)
		}
		items = append(items, text)
	}
	return items, nil
}

func coerceValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "null", nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		encoded, err := marshalCompact(v)
		if err != nil {
			return "", err
		}
		return encoded, nil
	}
}

// marshalCompact keeps markup characters literal, matching how string items
// are emitted.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
