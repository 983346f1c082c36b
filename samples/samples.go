// Package samples bundles one known-good payload per OCPI object type.
// The files double as seed data for the validate and watch commands.
package samples

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"chargekit/ocpicheck/pkg/ocpi"
)

//go:embed *.json
var files embed.FS

// Names returns the available sample names, one per object type,
// in sorted order.
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Read returns the sample payload for the given object type.
func Read(objectType ocpi.ObjectType) ([]byte, error) {
	data, err := files.ReadFile(string(objectType) + ".json")
	if err != nil {
		return nil, fmt.Errorf("no sample for object type %q", objectType)
	}
	return data, nil
}
