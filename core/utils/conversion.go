package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt64 converts feed-supplied values to int64 using explicit type switching.
// Feeds are loosely typed: numeric ids arrive as numbers or strings.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(v), 10, 64)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	}
}

// ToFloat converts feed-supplied values to float64.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		s := fmt.Sprintf("%v", v)
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
}

// ToString converts feed-supplied values to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts feed-supplied values to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case float32:
		return v == 1
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt64(v) == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case []byte:
		s := string(v)
		return s == "1" || strings.EqualFold(s, "true")
	default:
		return false
	}
}
