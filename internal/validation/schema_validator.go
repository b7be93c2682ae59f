package validation

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema file
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates JSON data bytes against a schema file
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema file, caching the result per path
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

// formatValidationError flattens nested schema errors into one message
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var msgs []string
	collectErrors(validationErr, &msgs)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(msgs, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}
	*msgs = append(*msgs, fmt.Sprintf("  - at %s: validation failed", location))

	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}
