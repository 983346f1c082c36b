package decode

import (
	"fmt"
	"math"
	"time"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
)

// FieldKind is the expected JSON shape of a schema field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindInteger
	KindBoolean
	KindTimestamp
	KindObject
	KindArray
	KindStringArray
	KindIntArray
	KindDisplayText
	KindDisplayTextArray
)

// expected returns the human-readable shape description used in
// invalid-type errors.
func (k FieldKind) expected() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "ISO 8601 date-time string"
	case KindObject:
		return "object"
	case KindArray:
		return "array of objects"
	case KindStringArray:
		return "array of strings"
	case KindIntArray:
		return "array of integers"
	case KindDisplayText:
		return "string or {language, text} object"
	case KindDisplayTextArray:
		return "array of strings or {language, text} objects"
	default:
		return "value"
	}
}

// Field describes one entry of an entity schema: its wire name, whether
// the object type's profile requires it, and its expected shape. Object
// and array-of-object fields carry the element schema.
type Field struct {
	Name     string
	Required bool
	Kind     FieldKind
	Object   *Schema
}

// Schema is an ordered field list for one entity shape. The order
// determines the order structural errors are reported in.
type Schema struct {
	Fields []Field
}

// WithRequired returns a copy of the schema whose top-level required set
// is exactly names. Nested schemas are unchanged. Used to apply
// deployment-profile overrides.
func (s *Schema) WithRequired(names []string) *Schema {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	out := &Schema{Fields: make([]Field, len(s.Fields))}
	copy(out.Fields, s.Fields)
	for i := range out.Fields {
		out.Fields[i].Required = set[out.Fields[i].Name]
	}
	return out
}

// Check walks doc against the schema and returns all structural errors:
// missing required fields and present fields whose values have the wrong
// shape. Nested object and array-element schemas are checked for every
// element actually present; errors are reported with full paths such as
// "evses[0].connectors[1].max_voltage".
func (s *Schema) Check(doc map[string]interface{}, prefix string) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	for _, field := range s.Fields {
		path := joinPath(prefix, field.Name)

		value, present := doc[field.Name]
		if !present || value == nil {
			if field.Required {
				errs.Add(ocpiErrors.MissingRequiredField(path))
			}
			continue
		}

		// A required list with no elements counts as missing, not as a
		// wrong shape: connectors, dimensions, elements and
		// price_components must carry at least one entry.
		if field.Required && isEmptyArray(value, field.Kind) {
			errs.Add(ocpiErrors.MissingRequiredField(path))
			continue
		}

		checkValue(value, field, path, errs)
	}

	return errs
}

// isEmptyArray reports whether value is a zero-element list for an
// array-shaped field kind.
func isEmptyArray(value interface{}, kind FieldKind) bool {
	switch kind {
	case KindArray, KindStringArray, KindIntArray, KindDisplayTextArray:
		items, ok := value.([]interface{})
		return ok && len(items) == 0
	default:
		return false
	}
}

// checkValue verifies a single present value against its field
// description, recursing into nested objects and arrays.
func checkValue(value interface{}, field Field, path string, errs *ocpiErrors.ErrorList) {
	switch field.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
		}

	case KindNumber:
		if _, ok := value.(float64); !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
		}

	case KindInteger:
		v, ok := value.(float64)
		if !ok || math.Trunc(v) != v {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
		}

	case KindBoolean:
		if _, ok := value.(bool); !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
		}

	case KindTimestamp:
		s, ok := value.(string)
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		if _, err := parseTimestamp(s); err != nil {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
		}

	case KindObject:
		m, ok := value.(map[string]interface{})
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		if field.Object != nil {
			errs.Append(field.Object.Check(m, path))
		}

	case KindArray:
		items, ok := value.([]interface{})
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			m, ok := item.(map[string]interface{})
			if !ok {
				errs.Add(ocpiErrors.InvalidFieldType(elemPath, "object"))
				continue
			}
			if field.Object != nil {
				errs.Append(field.Object.Check(m, elemPath))
			}
		}

	case KindStringArray:
		items, ok := value.([]interface{})
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				errs.Add(ocpiErrors.InvalidFieldType(fmt.Sprintf("%s[%d]", path, i), "string"))
			}
		}

	case KindIntArray:
		items, ok := value.([]interface{})
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		for i, item := range items {
			v, ok := item.(float64)
			if !ok || math.Trunc(v) != v {
				errs.Add(ocpiErrors.InvalidFieldType(fmt.Sprintf("%s[%d]", path, i), "integer"))
			}
		}

	case KindDisplayText:
		checkDisplayText(value, path, errs)

	case KindDisplayTextArray:
		items, ok := value.([]interface{})
		if !ok {
			errs.Add(ocpiErrors.InvalidFieldType(path, field.Kind.expected()))
			return
		}
		for i, item := range items {
			checkDisplayText(item, fmt.Sprintf("%s[%d]", path, i), errs)
		}
	}
}

// checkDisplayText probes the union shape: a bare string is valid, an
// object must carry string "language" and "text" keys.
func checkDisplayText(value interface{}, path string, errs *ocpiErrors.ErrorList) {
	if _, ok := value.(string); ok {
		return
	}

	m, ok := value.(map[string]interface{})
	if !ok {
		errs.Add(ocpiErrors.InvalidFieldType(path, KindDisplayText.expected()))
		return
	}

	for _, key := range []string{"language", "text"} {
		v, present := m[key]
		if !present || v == nil {
			errs.Add(ocpiErrors.MissingRequiredField(joinPath(path, key)))
			continue
		}
		if _, ok := v.(string); !ok {
			errs.Add(ocpiErrors.InvalidFieldType(joinPath(path, key), "string"))
		}
	}
}

// joinPath joins a parent path and a key with a dot, handling the empty
// root prefix.
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// parseTimestamp parses an ISO 8601 / RFC 3339 date-time in UTC or with
// an explicit offset, with or without fractional seconds.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
