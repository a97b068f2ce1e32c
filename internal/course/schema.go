package course

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://course.json"

//go:embed course.schema.json
var schemaSource []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaSource, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// SchemaError reports a course document that does not match the schema.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("course schema validation failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// validateSchema checks a decoded YAML value against the course schema.
func validateSchema(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile course schema: %w", err)
	}

	// The validator expects JSON-shaped values, so round-trip through JSON
	// to normalise whatever the YAML decoder produced.
	b, err := json.Marshal(raw)
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("course is not JSON-compatible: %w", err)}
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return &SchemaError{Err: err}
	}

	if err := schema.Validate(parsed); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}
