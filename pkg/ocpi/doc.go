// Package ocpi validates OCPI JSON payloads.
//
// The package-level Validate function checks a raw payload as one of the
// five supported object kinds (Location, Token, Session, CDR, Tariff)
// and returns a ValidationResult listing every violation found. A
// Validator with custom required-field profiles can be built with
// NewValidator for deployments that relax or extend the defaults.
package ocpi
