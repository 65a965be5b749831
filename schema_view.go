// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import "slices"

// SchemaView provides read-only queries over one loaded schema document.
type SchemaView struct {
	schema *Schema
}

// NewSchemaView wraps one decoded schema document.
func NewSchemaView(schema *Schema) *SchemaView {
	if schema == nil {
		schema = &Schema{}
	}

	return &SchemaView{schema: schema}
}

// LoadSchemaView reads one combined schema file into a queryable view.
func LoadSchemaView(path string) (*SchemaView, error) {
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}

	return NewSchemaView(schema), nil
}

// Schema returns the underlying schema document.
func (view *SchemaView) Schema() *Schema {
	return view.schema
}

// AllSlots returns every declared slot definition by name.
func (view *SchemaView) AllSlots() map[string]*SlotDefinition {
	return view.schema.Slots
}

// AllClasses returns every declared class definition by name.
func (view *SchemaView) AllClasses() map[string]*ClassDefinition {
	return view.schema.Classes
}

// AllEnums returns every declared enumeration definition by name.
func (view *SchemaView) AllEnums() map[string]*EnumDefinition {
	return view.schema.Enums
}

// AllTypes returns every declared type definition by name.
func (view *SchemaView) AllTypes() map[string]*TypeDefinition {
	return view.schema.Types
}

// GetType returns one type definition or nil when not declared.
func (view *SchemaView) GetType(name string) *TypeDefinition {
	return view.schema.Types[name]
}

// IsLocal reports whether an element origin belongs to the root schema.
// Elements without a recorded origin default to local.
func (view *SchemaView) IsLocal(fromSchema string) bool {
	return fromSchema == "" || fromSchema == view.schema.ID
}

// LocalSlots returns slots originating from the root schema.
func (view *SchemaView) LocalSlots() map[string]*SlotDefinition {
	out := make(map[string]*SlotDefinition, len(view.schema.Slots))
	for name, slot := range view.schema.Slots {
		if slot == nil || !view.IsLocal(slot.FromSchema) {
			continue
		}

		out[name] = slot
	}

	return out
}

// LocalClasses returns classes originating from the root schema.
func (view *SchemaView) LocalClasses() map[string]*ClassDefinition {
	out := make(map[string]*ClassDefinition, len(view.schema.Classes))
	for name, class := range view.schema.Classes {
		if class == nil || !view.IsLocal(class.FromSchema) {
			continue
		}

		out[name] = class
	}

	return out
}

// LocalEnums returns enumerations originating from the root schema.
func (view *SchemaView) LocalEnums() map[string]*EnumDefinition {
	out := make(map[string]*EnumDefinition, len(view.schema.Enums))
	for name, enum := range view.schema.Enums {
		if enum == nil || !view.IsLocal(enum.FromSchema) {
			continue
		}

		out[name] = enum
	}

	return out
}

// ClassSlots returns slot names applicable to one class after resolving
// single-parent inheritance and mixins. Inherited slots come first, each
// name appears once, and unknown class references are skipped.
func (view *SchemaView) ClassSlots(className string) []string {
	out := make([]string, 0, 8)
	seen := make(map[string]struct{})
	visited := make(map[string]struct{})
	view.collectClassSlots(className, &out, seen, visited)
	return out
}

// collectClassSlots walks the class ancestry with a cycle guard.
func (view *SchemaView) collectClassSlots(className string, out *[]string, seen, visited map[string]struct{}) {
	if _, ok := visited[className]; ok {
		return
	}

	visited[className] = struct{}{}

	class := view.schema.Classes[className]
	if class == nil {
		return
	}

	if class.IsA != "" {
		view.collectClassSlots(class.IsA, out, seen, visited)
	}

	for _, mixin := range class.Mixins {
		view.collectClassSlots(mixin, out, seen, visited)
	}

	for _, slotName := range class.Slots {
		if _, ok := seen[slotName]; ok {
			continue
		}

		seen[slotName] = struct{}{}
		*out = append(*out, slotName)
	}
}

// ClassUsesSlot reports whether a class's induced slot set contains the slot.
func (view *SchemaView) ClassUsesSlot(className, slotName string) bool {
	return slices.Contains(view.ClassSlots(className), slotName)
}

// ClassInducedSlots returns resolved slot definitions for one class in
// induced order. Slot names without a matching definition are skipped.
func (view *SchemaView) ClassInducedSlots(className string) []NamedSlot {
	names := view.ClassSlots(className)
	out := make([]NamedSlot, 0, len(names))
	for _, name := range names {
		slot := view.schema.Slots[name]
		if slot == nil {
			continue
		}

		out = append(out, NamedSlot{Name: name, Slot: slot})
	}

	return out
}

// NamedSlot pairs one slot definition with its declaration name.
type NamedSlot struct {
	Name string
	Slot *SlotDefinition
}
