// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen_test

import (
	"fmt"

	"github.com/datamob/dictgen"
)

func ExampleRenderEnumPage() {
	enum := &dictgen.EnumDefinition{
		Description: "Habitat classification.",
		PermissibleValues: map[string]*dictgen.PermissibleValue{
			"marine": {Description: "Salt water habitat."},
		},
	}

	page, err := dictgen.RenderEnumPage(nil, "HabitatEnum", enum)
	if err != nil {
		panic(err)
	}

	fmt.Print(page)
	// Output:
	// # HabitatEnum
	//
	// Habitat classification.
	//
	// ## Permitted Values
	//
	// | Value | Description |
	// |-------|-------------|
	// | `marine` | Salt water habitat. |
}

func ExampleRenderSlotPage() {
	view := dictgen.NewSchemaView(&dictgen.Schema{})
	slot := &dictgen.SlotDefinition{
		Description: "Depth below surface.",
		Range:       "integer",
		Required:    true,
	}

	page, err := dictgen.RenderSlotPage(view, "depth", slot)
	if err != nil {
		panic(err)
	}

	fmt.Print(page)
	// Output:
	// # depth
	//
	// Depth below surface.
	//
	// ## Details
	//
	// | Property | Value |
	// |----------|-------|
	// | **Range** | `integer` |
	// | **Required** | Yes |
	// | **Multivalued** | No |
}
