// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Schema is the combined schema document element model.
//
// The model is read-only after decoding. Unknown YAML keys (prefixes,
// imports, subset declarations and other schema-level metadata) are
// ignored; only the fields the documentation pipeline queries are kept.
type Schema struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	Types   map[string]*TypeDefinition  `yaml:"types"`
	Enums   map[string]*EnumDefinition  `yaml:"enums"`
	Classes map[string]*ClassDefinition `yaml:"classes"`
	Slots   map[string]*SlotDefinition  `yaml:"slots"`
}

// SlotDefinition describes one named, typed field usable by classes.
type SlotDefinition struct {
	Description  string         `yaml:"description"`
	Comments     stringList     `yaml:"comments"`
	Range        string         `yaml:"range"`
	Required     bool           `yaml:"required"`
	Multivalued  bool           `yaml:"multivalued"`
	Pattern      string         `yaml:"pattern"`
	MinimumValue *float64       `yaml:"minimum_value"`
	MaximumValue *float64       `yaml:"maximum_value"`
	Unit         *UnitOfMeasure `yaml:"unit"`
	InSubset     stringList     `yaml:"in_subset"`
	Annotations  AnnotationMap  `yaml:"annotations"`
	Examples     []Example      `yaml:"examples"`
	IsA          string         `yaml:"is_a"`
	Mixins       stringList     `yaml:"mixins"`
	FromSchema   string         `yaml:"from_schema"`
}

// ClassDefinition describes one named grouping of slots.
type ClassDefinition struct {
	Description string     `yaml:"description"`
	IsA         string     `yaml:"is_a"`
	Mixins      stringList `yaml:"mixins"`
	Slots       stringList `yaml:"slots"`
	FromSchema  string     `yaml:"from_schema"`
}

// EnumDefinition describes one closed set of permitted values.
type EnumDefinition struct {
	Description       string                       `yaml:"description"`
	PermissibleValues map[string]*PermissibleValue `yaml:"permissible_values"`
	FromSchema        string                       `yaml:"from_schema"`
}

// PermissibleValue is one permitted enumeration value with optional description.
type PermissibleValue struct {
	Description string `yaml:"description"`
}

// TypeDefinition describes one primitive value type with optional identifier.
type TypeDefinition struct {
	URI        string `yaml:"uri"`
	FromSchema string `yaml:"from_schema"`
}

// UnitOfMeasure is a slot unit declared either as a bare scalar or as a
// structured symbol with UCUM code.
type UnitOfMeasure struct {
	Symbol   string
	UcumCode string
	Raw      string
}

// UnmarshalYAML accepts scalar unit values and symbol/ucum_code mappings.
func (unit *UnitOfMeasure) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		unit.Raw = node.Value
		return nil
	}

	var structured struct {
		Symbol   string `yaml:"symbol"`
		UcumCode string `yaml:"ucum_code"`
	}
	if err := node.Decode(&structured); err != nil {
		return fmt.Errorf("unit value: %w", err)
	}

	unit.Symbol = structured.Symbol
	unit.UcumCode = structured.UcumCode
	return nil
}

// Annotation is one key-value annotation whose value is declared either as a
// bare scalar or as a value-bearing mapping.
type Annotation struct {
	Value string
}

// UnmarshalYAML accepts scalar annotation values and {value: ...} mappings.
func (annotation *Annotation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		annotation.Value = node.Value
		return nil
	}

	var structured struct {
		Value scalarText `yaml:"value"`
	}
	if err := node.Decode(&structured); err != nil {
		return fmt.Errorf("annotation value: %w", err)
	}

	annotation.Value = string(structured.Value)
	return nil
}

// AnnotationMap maps annotation tags to annotation values.
type AnnotationMap map[string]Annotation

// Example is one example value declared either as a bare scalar or as a
// {value: ...} mapping.
type Example struct {
	Value string
}

// UnmarshalYAML accepts scalar example values and {value: ...} mappings.
func (example *Example) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		example.Value = node.Value
		return nil
	}

	var structured struct {
		Value scalarText `yaml:"value"`
	}
	if err := node.Decode(&structured); err != nil {
		return fmt.Errorf("example value: %w", err)
	}

	example.Value = string(structured.Value)
	return nil
}

// stringList accepts either one scalar or a sequence of scalars.
type stringList []string

// UnmarshalYAML decodes scalar-or-sequence YAML values into a string slice.
func (list *stringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*list = stringList{node.Value}
		return nil
	}

	var values []string
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("string list: %w", err)
	}

	*list = values
	return nil
}

// scalarText decodes any YAML scalar into its literal textual form.
type scalarText string

// UnmarshalYAML keeps the scalar text instead of the typed YAML value.
func (text *scalarText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("scalar value expected, got %v", node.Kind)
	}

	*text = scalarText(node.Value)
	return nil
}

// ParseSchema decodes one combined schema document from YAML bytes.
func ParseSchema(schemaBytes []byte) (*Schema, error) {
	schema := &Schema{}
	if err := yaml.Unmarshal(schemaBytes, schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return schema, nil
}

// LoadSchema reads and decodes one combined schema document from file.
func LoadSchema(path string) (*Schema, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return ParseSchema(schemaBytes)
}

// formatBound renders numeric slot bounds without trailing float noise.
func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
