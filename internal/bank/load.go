package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(seedJSON)
}

// LoadFile loads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load parses and validates a catalog from raw JSON.
func Load(data []byte) (*Catalog, error) {
	schema, err := catalogJSONSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var exams []Exam
	if err := json.Unmarshal(data, &exams); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := verifyCatalog(exams); err != nil {
		return nil, err
	}
	return NewCatalog(exams), nil
}

// verifyCatalog enforces the cross-field constraints the schema can't:
// unique ids and answer indices inside the option range.
func verifyCatalog(exams []Exam) error {
	examIDs := make(map[string]bool, len(exams))
	for _, e := range exams {
		if examIDs[e.ID] {
			return fmt.Errorf("duplicate exam id %q", e.ID)
		}
		examIDs[e.ID] = true

		questionIDs := make(map[string]bool, len(e.Questions))
		for _, q := range e.Questions {
			if questionIDs[q.ID] {
				return fmt.Errorf("exam %q: duplicate question id %q", e.ID, q.ID)
			}
			questionIDs[q.ID] = true

			if err := verifyAnswer(q); err != nil {
				return fmt.Errorf("exam %q, question %q: %w", e.ID, q.ID, err)
			}
		}
	}
	return nil
}

func verifyAnswer(q Question) error {
	if q.Answer.IsMulti() {
		indices := q.Answer.Indices()
		if len(indices) > len(q.Options) {
			return fmt.Errorf("correctAnswer has %d indices for %d options", len(indices), len(q.Options))
		}
		for _, i := range indices {
			if i < 0 || i >= len(q.Options) {
				return fmt.Errorf("correctAnswer index %d out of range (%d options)", i, len(q.Options))
			}
		}
		return nil
	}
	if i := q.Answer.Index(); i < 0 || i >= len(q.Options) {
		return fmt.Errorf("correctAnswer index %d out of range (%d options)", i, len(q.Options))
	}
	return nil
}

func catalogJSONSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// map definition through encoding/json.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://exam-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
