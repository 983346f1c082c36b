package decode

import (
	"math"
	"time"
)

// Accessors below assume the document already passed its schema check.
// Absent or mismatched values collapse to zero values so the builders
// stay total even on partially valid documents.

func getString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func optString(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func getFloat(m map[string]interface{}, key string) float64 {
	v, _ := m[key].(float64)
	return v
}

func optFloat(m map[string]interface{}, key string) *float64 {
	v, ok := m[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

func getInt(m map[string]interface{}, key string) int {
	v, ok := m[key].(float64)
	if !ok || math.Trunc(v) != v {
		return 0
	}
	return int(v)
}

func optInt(m map[string]interface{}, key string) *int {
	v, ok := m[key].(float64)
	if !ok || math.Trunc(v) != v {
		return nil
	}
	n := int(v)
	return &n
}

func getBool(m map[string]interface{}, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func getTime(m map[string]interface{}, key string) time.Time {
	s, ok := m[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func optTime(m map[string]interface{}, key string) *time.Time {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return nil
	}
	return &t
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	v, _ := m[key].(map[string]interface{})
	return v
}

func getSlice(m map[string]interface{}, key string) []interface{} {
	v, _ := m[key].([]interface{})
	return v
}

func stringSlice(m map[string]interface{}, key string) []string {
	items, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intSlice(m map[string]interface{}, key string) []int {
	items, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if v, ok := item.(float64); ok && math.Trunc(v) == v {
			out = append(out, int(v))
		}
	}
	return out
}
