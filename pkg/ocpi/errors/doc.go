// Package errors provides the closed error taxonomy for OCPI validation.
//
// Every failure the validation engine can report is one of five kinds:
//
// KindInvalidJSON: payload not parseable as JSON
//
// KindMissingRequiredField: required field absent at a path
//
// KindInvalidFieldType: present field has the wrong shape
//
// KindInvalidValue: well-typed field violates a range/format/consistency rule
//
// KindNotImplemented: object type without a completed validator
//
// # Basic Usage
//
// Accumulate errors instead of failing fast:
//
//	errList := errors.NewErrorList()
//	errList.Add(errors.MissingRequiredField("id"))
//	errList.Add(errors.InvalidValue("coordinates.latitude", "Must be between -90 and 90"))
//
//	if errList.HasErrors() {
//	    return errList.ToError()
//	}
//
// Field paths join container keys with "." and index array elements with
// "[i]", e.g. "evses[0].connectors[1].max_voltage".
package errors
