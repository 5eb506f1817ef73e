package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// CoerceInt converts loosely typed input (form values, JSON numbers, numeric
// strings) to an int, returning fallback when it is not a whole number.
func CoerceInt(v any, fallback int) int {
	if n, ok := toInt(v); ok {
		return n
	}
	return fallback
}

// AsString renders identifiers and other scalar cells as text. Values with
// no text form yield "".
func AsString(v any) string {
	s, _ := toString(v)
	return s
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		return parseInt(x)
	case []byte:
		return parseInt(string(x))
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt(f)
}

func toBool(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil, false
		}
		return b, true
	case []byte:
		return toBool(string(x))
	}
	if n, ok := toInt(v); ok {
		return n != 0, true
	}
	return nil, false
}

func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case [16]byte:
		return uuid.UUID(x).String(), true
	case uuid.UUID:
		return x.String(), true
	case fmt.Stringer:
		return x.String(), true
	case int, int32, int64, uint32, uint64, float64, bool:
		return fmt.Sprint(x), true
	}
	return "", false
}

// ParseSettings accepts a settings value in any of the shapes a store may
// return: a serialized JSON blob (string or bytes) or an already structured map.
func ParseSettings(v any) (map[string]any, error) {
	switch x := v.(type) {
	case map[string]any:
		return x, nil
	case datatypes.JSONMap:
		return map[string]any(x), nil
	case Record:
		return map[string]any(x), nil
	case string:
		return parseSettingsBlob([]byte(x))
	case []byte:
		return parseSettingsBlob(x)
	case json.RawMessage:
		return parseSettingsBlob(x)
	case datatypes.JSON:
		return parseSettingsBlob(x)
	}
	return nil, errors.Errorf("unsupported settings value of type %T", v)
}

func parseSettingsBlob(b []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, errors.New("empty settings blob")
	}
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, errors.Wrap(err, "decoding settings blob")
	}
	switch x := decoded.(type) {
	case map[string]any:
		return x, nil
	case string:
		// serialized twice
		return parseSettingsBlob([]byte(x))
	}
	return nil, errors.Errorf("settings blob holds %T, want an object", decoded)
}

// EncodeSettings serializes a settings row into the text blob stored in the
// settings columns.
func EncodeSettings(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}
