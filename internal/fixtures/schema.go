package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// compiledSchemas holds one compiled schema per collection. Compilation runs
// once per process.
var compiledSchemas = sync.OnceValues(func() (map[string]*gojsonschema.Schema, error) {
	out := make(map[string]*gojsonschema.Schema, len(types.CollectionNames))
	for _, name := range types.CollectionNames {
		raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("reading schema for %s: %w", name, err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", name, err)
		}
		out[name] = schema
	}
	return out, nil
})

// validateRecords checks every record of a collection against its schema.
// The first violation is reported with its record position.
func validateRecords(collection string, records []json.RawMessage) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return err
	}
	schema, ok := schemas[collection]
	if !ok {
		return fmt.Errorf("%s: %w", collection, types.ErrUnknownCollection)
	}
	for i, raw := range records {
		result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return fmt.Errorf("%s record %d: %w: %v", collection, i+1, types.ErrInvalidRecord, err)
		}
		if result.Valid() {
			continue
		}
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%s record %d: %w: %s", collection, i+1, types.ErrInvalidRecord, strings.Join(msgs, "; "))
	}
	return nil
}
