// Package decode turns raw OCPI JSON payloads into typed model values.
//
// Decoding is two-phased. Parse unmarshals bytes into a generic document;
// the entity schemas then walk it, reporting missing required fields and
// wrongly shaped values with full field paths. Only documents that pass
// the structural walk are handed to the Build functions, which assemble
// the typed model without further error reporting.
package decode
