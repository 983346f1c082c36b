package decode

import (
	"encoding/json"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
)

// Parse unmarshals raw bytes into a generic JSON document. Anything that
// is not a well-formed JSON object yields the single InvalidJSON error.
func Parse(data []byte) (map[string]interface{}, *ocpiErrors.Error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ocpiErrors.InvalidJSON()
	}

	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ocpiErrors.InvalidJSON()
	}
	return doc, nil
}
