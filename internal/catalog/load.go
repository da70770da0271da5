package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/statpick/internal/locale"
)

//go:embed data/*.yaml data/schema.json
var dataFS embed.FS

const schemaURL = "schema://catalog.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// file is the on-disk layout of a catalog data file.
type file struct {
	Families map[Family]FamilyInfo `yaml:"families"`
	Tests    []TestRecord          `yaml:"tests"`
}

// Load reads the embedded catalog for l, validates it and indexes it.
func Load(l locale.Locale) (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/" + string(l) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read catalog for locale %q: %w", l, err)
	}
	c, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", l, err)
	}
	c.locale = l
	return c, nil
}

// parse validates raw YAML against the catalog schema and the closed ID set.
func parse(raw []byte) (*Catalog, error) {
	// The jsonschema library validates generic values, so decode once
	// untyped for the schema and once into the typed layout.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateRecords(f.Tests); err != nil {
		return nil, err
	}
	return newCatalog(f.Tests, f.Families), nil
}

// getSchema compiles the embedded JSON schema once.
func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("read schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateRecords checks what the schema cannot express: every ID appears
// exactly once.
func validateRecords(records []TestRecord) error {
	var errs []string

	seen := make(map[ID]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate test ID: %q", r.ID))
		}
		seen[r.ID] = true
	}
	for _, id := range IDs() {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("missing test ID: %q", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
