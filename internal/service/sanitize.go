package service

import "github.com/microcosm-cc/bluemonday"

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeInput strips HTML from every string in a decoded JSON payload,
// recursing through objects and arrays. Non-string values pass through
// untouched.
func SanitizeInput(data interface{}) interface{} {
	switch v := data.(type) {
	case string:
		return sanitizePolicy.Sanitize(v)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			out[k] = SanitizeInput(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = SanitizeInput(val)
		}
		return out
	default:
		return data
	}
}
