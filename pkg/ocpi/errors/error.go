package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes a validation error. The set is closed: every failure
// the engine can report maps onto exactly one of these kinds.
type Kind string

const (
	// KindInvalidJSON means the payload was not parseable as JSON, or was
	// fundamentally the wrong shape at the top level.
	KindInvalidJSON Kind = "invalid_json"
	// KindMissingRequiredField means a field mandated by the object type's
	// schema is absent at the reported path.
	KindMissingRequiredField Kind = "missing_required_field"
	// KindInvalidFieldType means a present field's value does not match the
	// required shape (string where number expected, unparsable date, etc.).
	KindInvalidFieldType Kind = "invalid_field_type"
	// KindInvalidValue means a present, correctly-typed field violates a
	// range, format, or consistency rule.
	KindInvalidValue Kind = "invalid_value"
	// KindNotImplemented is reserved for object types without a completed
	// validator.
	KindNotImplemented Kind = "not_implemented"
)

// Error is a single validation error. Field is a dotted path with
// bracketed array indices (e.g. "evses[0].connectors[1].max_voltage").
// Expected is only set for KindInvalidFieldType, Reason only for
// KindInvalidValue.
type Error struct {
	Kind     Kind   `json:"kind"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Error implements the error interface using a fixed per-kind template.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidJSON:
		return "Invalid JSON format"
	case KindMissingRequiredField:
		return fmt.Sprintf("Missing required field: %s", e.Field)
	case KindInvalidFieldType:
		return fmt.Sprintf("Invalid type for field %s: expected %s", e.Field, e.Expected)
	case KindInvalidValue:
		return fmt.Sprintf("Invalid value for field %s: %s", e.Field, e.Reason)
	case KindNotImplemented:
		return "This validation is not implemented yet"
	default:
		return fmt.Sprintf("Unknown validation error for field %s", e.Field)
	}
}

// InvalidJSON reports an unparsable payload.
func InvalidJSON() *Error {
	return &Error{Kind: KindInvalidJSON}
}

// MissingRequiredField reports an absent required field at path.
func MissingRequiredField(path string) *Error {
	return &Error{Kind: KindMissingRequiredField, Field: path}
}

// InvalidFieldType reports a present field whose value has the wrong shape.
func InvalidFieldType(path, expected string) *Error {
	return &Error{Kind: KindInvalidFieldType, Field: path, Expected: expected}
}

// InvalidValue reports a well-typed field that violates a semantic rule.
func InvalidValue(path, reason string) *Error {
	return &Error{Kind: KindInvalidValue, Field: path, Reason: reason}
}

// NotImplemented reports an object type without a completed validator.
func NotImplemented() *Error {
	return &Error{Kind: KindNotImplemented}
}

// ErrorList accumulates validation errors instead of failing on the first
// one. Errors appear in the order they were added.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// Append appends all errors from another list.
func (el *ErrorList) Append(other *ErrorList) {
	el.Errors = append(el.Errors, other.Errors...)
}

// HasErrors returns true if the list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// ByKind returns all errors of the given kind.
func (el *ErrorList) ByKind(kind Kind) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one error of the
// given kind.
func (el *ErrorList) HasKind(kind Kind) bool {
	for _, err := range el.Errors {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Error implements the error interface, rendering all errors.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n", el.Count()))
	for _, err := range el.Errors {
		sb.WriteString("- ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
