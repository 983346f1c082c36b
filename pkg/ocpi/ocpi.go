package ocpi

import (
	"fmt"
	"strings"

	"chargekit/ocpicheck/pkg/ocpi/decode"
	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/validate"
)

// ObjectType names one of the validatable OCPI object kinds.
type ObjectType string

const (
	TypeLocation ObjectType = "location"
	TypeToken    ObjectType = "token"
	TypeSession  ObjectType = "session"
	TypeCDR      ObjectType = "cdr"
	TypeTariff   ObjectType = "tariff"
)

// ObjectTypes lists all supported object types in a stable order.
var ObjectTypes = []ObjectType{TypeLocation, TypeToken, TypeSession, TypeCDR, TypeTariff}

// ParseObjectType maps a user-supplied name to an ObjectType,
// case-insensitively.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeLocation:
		return TypeLocation, nil
	case TypeToken:
		return TypeToken, nil
	case TypeSession:
		return TypeSession, nil
	case TypeCDR:
		return TypeCDR, nil
	case TypeTariff:
		return TypeTariff, nil
	default:
		return "", fmt.Errorf("unknown object type %q (expected one of: location, token, session, cdr, tariff)", s)
	}
}

// ValidationResult is the outcome of validating one payload. Errors is
// empty exactly when IsValid is true.
type ValidationResult struct {
	ObjectType ObjectType          `json:"object_type"`
	IsValid    bool                `json:"is_valid"`
	Errors     []*ocpiErrors.Error `json:"errors"`
}

// resultFrom folds an error list into a ValidationResult.
func resultFrom(objectType ObjectType, errs *ocpiErrors.ErrorList) ValidationResult {
	return ValidationResult{
		ObjectType: objectType,
		IsValid:    !errs.HasErrors(),
		Errors:     errs.Errors,
	}
}

// Validator validates raw OCPI payloads. The zero-configuration
// validator uses the default required-field profile for every object
// type; deployment profiles can relax or extend the top-level sets.
type Validator struct {
	schemas map[ObjectType]*decode.Schema
}

// Option configures a Validator.
type Option func(*Validator)

// WithRequiredFields overrides the top-level required-field set for one
// object type. Nested requirements are unaffected.
func WithRequiredFields(objectType ObjectType, fields []string) Option {
	return func(v *Validator) {
		if base, ok := v.schemas[objectType]; ok {
			v.schemas[objectType] = base.WithRequired(fields)
		}
	}
}

// NewValidator creates a Validator with the default profiles, then
// applies any options.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		schemas: map[ObjectType]*decode.Schema{
			TypeLocation: decode.LocationSchema,
			TypeToken:    decode.TokenSchema,
			TypeSession:  decode.SessionSchema,
			TypeCDR:      decode.CDRSchema,
			TypeTariff:   decode.TariffSchema,
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the full pipeline on raw bytes: JSON parse, structural
// pass, typed decode, semantic pass. Structural errors suppress the
// semantic pass; a payload is never rejected twice for the same field.
// The call is pure: equal inputs always produce equal results.
func (v *Validator) Validate(objectType ObjectType, data []byte) ValidationResult {
	doc, parseErr := decode.Parse(data)
	if parseErr != nil {
		errs := ocpiErrors.NewErrorList()
		errs.Add(parseErr)
		return resultFrom(objectType, errs)
	}

	schema, ok := v.schemas[objectType]
	if !ok {
		errs := ocpiErrors.NewErrorList()
		errs.Add(ocpiErrors.NotImplemented())
		return resultFrom(objectType, errs)
	}

	structural := schema.Check(doc, "")
	if structural.HasErrors() {
		return resultFrom(objectType, structural)
	}

	var semantic *ocpiErrors.ErrorList
	switch objectType {
	case TypeLocation:
		semantic = validate.Location(decode.BuildLocation(doc))
	case TypeToken:
		semantic = validate.Token(decode.BuildToken(doc))
	case TypeSession:
		semantic = validate.Session(decode.BuildSession(doc))
	case TypeCDR:
		semantic = validate.CDR(decode.BuildCDR(doc))
	case TypeTariff:
		semantic = validate.Tariff(decode.BuildTariff(doc))
	default:
		semantic = ocpiErrors.NewErrorList()
		semantic.Add(ocpiErrors.NotImplemented())
	}

	return resultFrom(objectType, semantic)
}

// defaultValidator backs the package-level Validate.
var defaultValidator = NewValidator()

// Validate validates data as objectType using the default profiles.
func Validate(objectType ObjectType, data []byte) ValidationResult {
	return defaultValidator.Validate(objectType, data)
}
