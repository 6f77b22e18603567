// Package extract turns free-text model output into schema-conforming
// objects. Models are asked for "exactly one JSON object, no prose" but do
// not always comply; everything here exists to tolerate that without ever
// raising a parse failure to the caller.
package extract

import (
	"encoding/json"
	"strings"
)

type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindList
	KindObject
)

// Field declares one expected top-level key with its default. The default
// is what callers observe when the model omits the key or sends something
// that cannot be coerced.
type Field struct {
	Name    string
	Kind    Kind
	Default interface{}
}

type Schema struct {
	Fields []Field
}

// Defaults builds the full fallback object: every declared field present,
// carrying its default. Returned values are deep copies so callers can
// mutate the result freely.
func (s Schema) Defaults() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = deepCopy(f.Default)
	}
	return out
}

// StripFences removes a surrounding ```json ... ``` block if present.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// Locate returns the outermost brace-delimited span of raw. Models often
// wrap the object in an explanation; the span between the first '{' and
// the last '}' is the best-effort candidate.
func Locate(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// Decode recovers a schema-conforming object from raw model output.
// It never fails: when no JSON can be recovered it returns the schema's
// default object. The second return value lists the fields that were
// filled with defaults, for diagnostics only.
func Decode(raw string, schema Schema) (map[string]interface{}, []string) {
	span, ok := Locate(StripFences(raw))
	if !ok {
		return schema.Defaults(), allFieldNames(schema)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(span), &decoded); err != nil {
		// Generation artifacts: literal newlines inside JSON strings are
		// rejected by the parser. Normalizing them to spaces recovers most
		// of those responses.
		normalized := strings.ReplaceAll(span, "\n", " ")
		if err := json.Unmarshal([]byte(normalized), &decoded); err != nil {
			return schema.Defaults(), allFieldNames(schema)
		}
	}

	var filled []string
	for _, f := range schema.Fields {
		value, present := decoded[f.Name]
		if !present || value == nil {
			decoded[f.Name] = deepCopy(f.Default)
			filled = append(filled, f.Name)
			continue
		}
		coerced, ok := coerce(value, f)
		if !ok {
			decoded[f.Name] = deepCopy(f.Default)
			filled = append(filled, f.Name)
			continue
		}
		decoded[f.Name] = coerced
	}
	return decoded, filled
}

// coerce bends value toward the declared kind. Numbers asserted as text
// are parsed; scalars asserted as lists are wrapped.
func coerce(value interface{}, f Field) (interface{}, bool) {
	switch f.Kind {
	case KindNumber:
		switch v := value.(type) {
		case float64:
			return v, true
		case string:
			var n float64
			if err := json.Unmarshal([]byte(strings.TrimSpace(v)), &n); err != nil {
				return nil, false
			}
			return n, true
		default:
			return nil, false
		}
	case KindList:
		if _, ok := value.([]interface{}); ok {
			return value, true
		}
		return []interface{}{value}, true
	case KindObject:
		if _, ok := value.(map[string]interface{}); ok {
			return value, true
		}
		return nil, false
	default:
		return value, true
	}
}

// Number reads a numeric field out of a decoded object, substituting def
// when the value is absent or not coercible.
func Number(obj map[string]interface{}, key string, def float64) float64 {
	v, ok := obj[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		var parsed float64
		if err := json.Unmarshal([]byte(strings.TrimSpace(n)), &parsed); err == nil {
			return parsed
		}
	}
	return def
}

// ReplaceNulls recursively replaces nil with the empty string at every
// nesting depth. Running it twice is the same as running it once.
func ReplaceNulls(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = ReplaceNulls(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = ReplaceNulls(item)
		}
		return out
	case nil:
		return ""
	default:
		return v
	}
}

func allFieldNames(schema Schema) []string {
	names := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		names[i] = f.Name
	}
	return names
}

func deepCopy(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = deepCopy(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
