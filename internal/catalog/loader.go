package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sablemoor/RitualBot_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")
	ErrInvalidConfig         = errors.New("invalid configuration")
)

// ItemsSchemaPath is the default schema used to validate catalog files.
const ItemsSchemaPath = "configs/schemas/items.schema.json"

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Catalog, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating against the default schema
func NewLoader() Loader {
	return NewLoaderWithSchema(ItemsSchemaPath)
}

// NewLoaderWithSchema creates a Loader validating against the given schema
func NewLoaderWithSchema(schemaPath string) Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
	}
}

// Load reads, schema-validates and indexes a catalog JSON file
func (l *catalogLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return New(cfg.Items), nil
}

// validateConfig enforces invariants the schema cannot express
func validateConfig(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Items))
	for _, e := range cfg.Items {
		if e.InternalName == "" {
			return fmt.Errorf("%w: entry %q has no internal name", ErrInvalidConfig, e.DisplayName)
		}
		if e.BaseValue < 0 {
			return fmt.Errorf("%w: entry %q has a negative base value", ErrInvalidConfig, e.InternalName)
		}
		if seen[e.InternalName] {
			return fmt.Errorf("%w: %s", ErrDuplicateInternalName, e.InternalName)
		}
		seen[e.InternalName] = true
	}
	return nil
}
