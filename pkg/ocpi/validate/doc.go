// Package validate holds the semantic rules for the five OCPI object
// kinds. Each validator takes a typed value the decoder produced from a
// structurally sound document and accumulates every rule violation with
// its full field path, never stopping at the first.
package validate
