// Ocpicheck validates OCPI JSON payloads (Locations, Tokens, Sessions,
// CDRs and Tariffs) against structural and semantic rules.
//
// Usage:
//
//	# Validate a single file
//	ocpicheck validate --type token --file token.json
//
//	# Validate a directory of payloads
//	ocpicheck validate --type cdr --dir payloads/ --format json
//
//	# Revalidate files as they change
//	ocpicheck watch --type session --dir payloads/
//
//	# Start the validation HTTP API
//	ocpicheck serve --config config.yaml
//
//	# Print a bundled sample payload
//	ocpicheck samples token
package main

func main() {
	Execute()
}
