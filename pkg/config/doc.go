// Package config loads and validates ocpicheck configuration.
//
// Configuration is read from a YAML file, filled with defaults, and then
// overridden by OCPICHECK_* environment variables. The validation
// profiles section lets a deployment tighten or relax the top-level
// required-field set per OCPI object type without rebuilding.
package config
