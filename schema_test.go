// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchemaYAML = `id: https://example.org/specimen
name: specimen-schema
title: Specimen Data Dictionary
description: Field definitions for specimen records.

types:
  string:
    uri: xsd:string
    from_schema: https://w3id.org/linkml/types
  integer:
    uri: xsd:integer
    from_schema: https://w3id.org/linkml/types

enums:
  HabitatEnum:
    description: Habitat classification.
    permissible_values:
      marine:
        description: Salt water habitat.
      freshwater:
      Terrestrial:
        description: |-
          Land habitat
          including soil.

classes:
  NamedThing:
    description: Base class for named records.
    slots:
      - scientific_name
  Specimen:
    description: One collected specimen.
    is_a: NamedThing
    slots:
      - collection_age
      - habitat
  ImportedClass:
    from_schema: https://other.org/upstream
    slots:
      - imported_field

slots:
  scientific_name:
    description: Latin binomial name.
    range: string
    required: true
    pattern: "^[A-Z][a-z]+ [a-z]+$"
    comments: Use the accepted name only.
    in_subset:
      - core
    annotations:
      source_column: sci_name
      mapping:
        value: dwc:scientificName
    examples:
      - value: Homo sapiens
      - Gadus morhua
  collection_age:
    description: Age of the specimen at collection time.
    range: integer
    minimum_value: 0
    maximum_value: 150
    unit:
      symbol: a
      ucum_code: a
  habitat:
    range: HabitatEnum
    multivalued: true
    is_a: scientific_name
    mixins:
      - core_field
  imported_field:
    from_schema: https://other.org/upstream
`

func testSchema(t *testing.T) *Schema {
	t.Helper()

	schema, err := ParseSchema([]byte(testSchemaYAML))
	require.NoError(t, err)
	return schema
}

func TestParseSchemaMetadata(t *testing.T) {
	t.Parallel()

	schema := testSchema(t)
	assert.Equal(t, "https://example.org/specimen", schema.ID)
	assert.Equal(t, "specimen-schema", schema.Name)
	assert.Equal(t, "Specimen Data Dictionary", schema.Title)
	assert.Len(t, schema.Slots, 4)
	assert.Len(t, schema.Classes, 3)
	assert.Len(t, schema.Enums, 1)
	assert.Len(t, schema.Types, 2)
}

func TestParseSchemaSlotFlexibleFields(t *testing.T) {
	t.Parallel()

	schema := testSchema(t)
	slot := schema.Slots["scientific_name"]
	require.NotNil(t, slot)

	assert.Equal(t, []string{"Use the accepted name only."}, []string(slot.Comments))
	assert.Equal(t, "sci_name", slot.Annotations["source_column"].Value)
	assert.Equal(t, "dwc:scientificName", slot.Annotations["mapping"].Value)

	require.Len(t, slot.Examples, 2)
	assert.Equal(t, "Homo sapiens", slot.Examples[0].Value)
	assert.Equal(t, "Gadus morhua", slot.Examples[1].Value)
}

func TestParseSchemaSlotBoundsAndUnit(t *testing.T) {
	t.Parallel()

	schema := testSchema(t)
	slot := schema.Slots["collection_age"]
	require.NotNil(t, slot)

	require.NotNil(t, slot.MinimumValue)
	require.NotNil(t, slot.MaximumValue)
	assert.Equal(t, float64(0), *slot.MinimumValue)
	assert.Equal(t, float64(150), *slot.MaximumValue)

	require.NotNil(t, slot.Unit)
	assert.Equal(t, "a", slot.Unit.Symbol)
	assert.Equal(t, "a", slot.Unit.UcumCode)
}

func TestParseSchemaScalarUnit(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte("id: urn:x\nname: x\nslots:\n  depth:\n    unit: meters\n"))
	require.NoError(t, err)

	slot := schema.Slots["depth"]
	require.NotNil(t, slot)
	require.NotNil(t, slot.Unit)
	assert.Equal(t, "meters", slot.Unit.Raw)
	assert.Empty(t, slot.Unit.Symbol)
}

func TestParseSchemaBarePermissibleValue(t *testing.T) {
	t.Parallel()

	schema := testSchema(t)
	enum := schema.Enums["HabitatEnum"]
	require.NotNil(t, enum)
	require.Len(t, enum.PermissibleValues, 3)

	assert.Nil(t, enum.PermissibleValues["freshwater"])
	require.NotNil(t, enum.PermissibleValues["marine"])
	assert.Equal(t, "Salt water habitat.", enum.PermissibleValues["marine"].Description)
}

func TestParseSchemaInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseSchema([]byte("slots: [broken"))
	require.ErrorIs(t, err, ErrDecodeSchema)
}

func TestLocalElementFiltering(t *testing.T) {
	t.Parallel()

	view := NewSchemaView(testSchema(t))

	slots := view.LocalSlots()
	assert.Contains(t, slots, "scientific_name")
	assert.Contains(t, slots, "collection_age")
	assert.Contains(t, slots, "habitat")
	assert.NotContains(t, slots, "imported_field")

	classes := view.LocalClasses()
	assert.Contains(t, classes, "Specimen")
	assert.NotContains(t, classes, "ImportedClass")

	assert.Contains(t, view.LocalEnums(), "HabitatEnum")
}

func TestClassSlotsResolvesInheritance(t *testing.T) {
	t.Parallel()

	view := NewSchemaView(testSchema(t))
	assert.Equal(t, []string{"scientific_name", "collection_age", "habitat"}, view.ClassSlots("Specimen"))
	assert.True(t, view.ClassUsesSlot("Specimen", "scientific_name"))
	assert.False(t, view.ClassUsesSlot("NamedThing", "habitat"))
}

func TestClassSlotsMixinAndDedupe(t *testing.T) {
	t.Parallel()

	view := NewSchemaView(&Schema{
		Classes: map[string]*ClassDefinition{
			"HasName": {Slots: stringList{"name"}},
			"Person":  {Mixins: stringList{"HasName"}, Slots: stringList{"name", "age"}},
		},
	})

	assert.Equal(t, []string{"name", "age"}, view.ClassSlots("Person"))
}

func TestClassSlotsCycleGuard(t *testing.T) {
	t.Parallel()

	view := NewSchemaView(&Schema{
		Classes: map[string]*ClassDefinition{
			"A": {IsA: "B", Slots: stringList{"a"}},
			"B": {IsA: "A", Slots: stringList{"b"}},
		},
	})

	assert.Equal(t, []string{"b", "a"}, view.ClassSlots("A"))
}

func TestClassInducedSlotsSkipsUnknownNames(t *testing.T) {
	t.Parallel()

	view := NewSchemaView(&Schema{
		Classes: map[string]*ClassDefinition{
			"Record": {Slots: stringList{"known", "missing"}},
		},
		Slots: map[string]*SlotDefinition{
			"known": {Range: "string"},
		},
	})

	induced := view.ClassInducedSlots("Record")
	require.Len(t, induced, 1)
	assert.Equal(t, "known", induced[0].Name)
}
