// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

/*
Package dictgen assembles modular schema fragments into one combined schema
document and renders that schema into a static data-dictionary site.

The package has two independent pipelines. The assembler concatenates
metadata, enumeration, class and field fragments into a single YAML schema
file. The generator loads a combined schema, filters it to locally defined
elements and writes one markdown page per field, class and enumeration,
plus an index page and an mkdocs navigation config.

Assemble fragments into one schema file:

	err := dictgen.Assemble(dictgen.AssembleOptions{
		OutputPath: "entire_schema.yml",
	})
	if err != nil {
		return err
	}

Generate documentation from a combined schema:

	stats, err := dictgen.GenerateFile("entire_schema.yml", dictgen.Options{
		OutputDir: "docs",
	})
	if err != nil {
		return err
	}

	fmt.Printf("slots=%d classes=%d enums=%d\n", stats.Slots, stats.Classes, stats.Enums)

Query a loaded schema directly:

	view, err := dictgen.LoadSchemaView("entire_schema.yml")
	if err != nil {
		return err
	}

	for name := range view.LocalSlots() {
		fmt.Println(name)
	}

Validate a combined schema against the embedded metamodel:

	schemaBytes, err := os.ReadFile("entire_schema.yml")
	if err != nil {
		return err
	}

	if err := dictgen.Validate(schemaBytes); err != nil {
		return err
	}
*/
package dictgen
