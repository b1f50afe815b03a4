// Package schema provides JSON schema validation for package.json
// manifests.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/dennyabrain/npm-run-all/schema"
)

var (
	packageSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("package.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read package schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal package schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("package.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add package schema resource: %w", err)
			return
		}

		packageSchema, compileErr = compiler.Compile("package.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile package schema: %w", compileErr)
		}
	})

	return compileErr
}

// ValidatePackage validates raw package.json bytes against the schema.
func ValidatePackage(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := packageSchema.Validate(v); err != nil {
		return fmt.Errorf("package.json validation failed: %w", err)
	}

	return nil
}
