// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// metamodelSchemaJSON is the JSON Schema for combined schema documents.
//
//go:embed metamodel.schema.json
var metamodelSchemaJSON string

// loadMetamodel compiles the embedded metamodel schema once per process.
var loadMetamodel = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("metamodel.schema.json", strings.NewReader(metamodelSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add metamodel resource: %w", err)
	}

	compiled, err := compiler.Compile("metamodel.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile metamodel schema: %w", err)
	}

	return compiled, nil
})

// Validate checks one combined schema YAML document against the embedded
// metamodel. The document is converted to its JSON value form first, since
// the metamodel is a JSON Schema.
func Validate(schemaBytes []byte) error {
	var document any
	if err := yaml.Unmarshal(schemaBytes, &document); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	jsonBytes, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeSchemaJSON, err)
	}

	var jsonValue any
	if err := json.Unmarshal(jsonBytes, &jsonValue); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeSchemaJSON, err)
	}

	metamodel, err := loadMetamodel()
	if err != nil {
		return err
	}

	if err := metamodel.Validate(jsonValue); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaInvalid, err)
	}

	return nil
}

// ValidateFile checks one combined schema file against the embedded metamodel.
func ValidateFile(path string) error {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return Validate(schemaBytes)
}
