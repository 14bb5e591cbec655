// Package contracts validates queue payloads against the embedded JSON
// Schemas before they reach any adapter logic.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/events/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first so $ref between schemas
	// resolves, then compile.
	err := fs.WalkDir(schemasFS, "schemas/events", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		file, err := schemasFS.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(p, file)
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	err = fs.WalkDir(schemasFS, "schemas/events", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		schema, err := compiler.Compile(p)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", p, err)
		}
		compiledSchemas[keyFromPath(p)] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("error compiling schemas: %v", err)
	}
}

// keyFromPath turns "schemas/events/record_changed.json" into
// "record_changed".
func keyFromPath(p string) string {
	return strings.TrimSuffix(path.Base(p), ".json")
}

// ValidateEvent checks raw JSON against the named schema.
func ValidateEvent(event string, data []byte) error {
	schema, ok := compiledSchemas[event]
	if !ok {
		return fmt.Errorf("no schema registered for event %q", event)
	}

	var payload interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("event %q is not valid JSON: %w", event, err)
	}

	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("event %q failed schema validation: %w", event, err)
	}
	return nil
}
