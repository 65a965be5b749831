// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWritesDocumentationTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")
	view := renderTestView(t)

	stats, err := Generate(view, Options{OutputDir: docsDir})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if stats.Slots != 3 || stats.Classes != 2 || stats.Enums != 1 {
		t.Fatalf("stats = %+v, want 3 slots, 2 classes, 1 enum", stats)
	}

	expected := []string{
		filepath.Join(docsDir, "index.md"),
		filepath.Join(docsDir, "slots", "scientific_name.md"),
		filepath.Join(docsDir, "slots", "collection_age.md"),
		filepath.Join(docsDir, "slots", "habitat.md"),
		filepath.Join(docsDir, "classes", "Specimen.md"),
		filepath.Join(docsDir, "classes", "NamedThing.md"),
		filepath.Join(docsDir, "enums", "HabitatEnum.md"),
		filepath.Join(docsDir, "css", "custom.css"),
		filepath.Join(root, "mkdocs.yml"),
	}
	for _, path := range expected {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected output file %s: %v", path, err)
		}
	}
}

func TestGenerateSkipsImportedElements(t *testing.T) {
	t.Parallel()

	docsDir := filepath.Join(t.TempDir(), "docs")
	view := renderTestView(t)

	if _, err := Generate(view, Options{OutputDir: docsDir}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(docsDir, "slots", "imported_field.md")); !os.IsNotExist(err) {
		t.Fatalf("imported slot should not get a page, stat err = %v", err)
	}

	if _, err := os.Stat(filepath.Join(docsDir, "classes", "ImportedClass.md")); !os.IsNotExist(err) {
		t.Fatalf("imported class should not get a page, stat err = %v", err)
	}
}

func TestGenerateSlotsOnlySuppressesClassPages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")
	view := renderTestView(t)

	if _, err := Generate(view, Options{OutputDir: docsDir, SlotsOnly: true}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := os.Stat(filepath.Join(docsDir, "classes")); !os.IsNotExist(err) {
		t.Fatalf("classes directory should not exist, stat err = %v", err)
	}

	if _, err := os.Stat(filepath.Join(docsDir, "slots", "habitat.md")); err != nil {
		t.Fatalf("slot pages must still be generated: %v", err)
	}

	nav, err := os.ReadFile(filepath.Join(root, "mkdocs.yml"))
	if err != nil {
		t.Fatalf("read nav config: %v", err)
	}

	assertNotContains(t, string(nav), "- Classes:")
	assertContains(t, string(nav), "- Data Dictionary:")
}

func TestGenerateStylesheetContent(t *testing.T) {
	t.Parallel()

	docsDir := filepath.Join(t.TempDir(), "docs")
	if _, err := Generate(renderTestView(t), Options{OutputDir: docsDir}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(docsDir, "css", "custom.css"))
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}

	assertContains(t, string(css), ".wy-side-scroll")
	assertContains(t, string(css), ".wy-menu-vertical")
}

func TestGenerateFileLoadsSchema(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	schemaPath := filepath.Join(root, "entire_schema.yml")
	if err := os.WriteFile(schemaPath, []byte(testSchemaYAML), 0o600); err != nil {
		t.Fatalf("write schema fixture: %v", err)
	}

	stats, err := GenerateFile(schemaPath, Options{OutputDir: filepath.Join(root, "docs")})
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}

	if stats.Slots != 3 {
		t.Fatalf("stats.Slots = %d, want 3", stats.Slots)
	}

	index, err := os.ReadFile(filepath.Join(root, "docs", "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	assertContains(t, string(index), "# Specimen Data Dictionary")
}

func TestGenerateFileMissingSchema(t *testing.T) {
	t.Parallel()

	_, err := GenerateFile(filepath.Join(t.TempDir(), "missing.yml"), Options{})
	if err == nil {
		t.Fatal("expected error for missing schema file")
	}

	if !strings.Contains(err.Error(), "read schema file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateEmptySchemaStillWritesIndex(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")

	stats, err := Generate(NewSchemaView(&Schema{Name: "empty"}), Options{OutputDir: docsDir})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if stats.Slots != 0 || stats.Classes != 0 || stats.Enums != 0 {
		t.Fatalf("stats = %+v, want zeros", stats)
	}

	if _, err := os.Stat(filepath.Join(docsDir, "enums")); !os.IsNotExist(err) {
		t.Fatalf("empty enums directory should not exist, stat err = %v", err)
	}

	index, err := os.ReadFile(filepath.Join(docsDir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	assertContains(t, string(index), "# empty")
}
