package worldfile

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed world.schema.json
var worldSchema []byte

// worldIDFormatChecker implements gojsonschema.FormatChecker for world_id.
type worldIDFormatChecker struct{}

// IsFormat validates that the input is a UUID.
func (worldIDFormatChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

var (
	schemaOnce   sync.Once
	schemaLoaded *gojsonschema.Schema
	schemaErr    error
)

// compiledSchema registers the custom formats and compiles the world
// schema on first use.
func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		gojsonschema.FormatCheckers.Add("world_id", worldIDFormatChecker{})
		schemaLoaded, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(worldSchema))
	})
	return schemaLoaded, schemaErr
}

// validate checks a decoded document against the world schema.
func validate(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("worldfile: load schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("worldfile: validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(errs, "; "))
	}
	return nil
}
