// Package schema provides JSON schema validation for fmtgate configuration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/smartpr/fmtgate/schema"
)

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchema compiles the embedded config schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile("fmtgate.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		if err := compiler.AddResource("fmtgate.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, err = compiler.Compile("fmtgate.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates JSON data against the config schema.
func ValidateConfig(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
