// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDocsDir is the default documentation output directory.
	DefaultDocsDir = "docs"
	// navConfigFileName is the navigation config written beside the docs dir.
	navConfigFileName = "mkdocs.yml"
)

// customCSS fixes sidebar scrolling for the readthedocs theme: the search
// bar stays fixed at the top while only the navigation tree scrolls.
const customCSS = `/* Fix the search bar at top, make only nav scroll */
.wy-side-scroll {
  height: 100%;
  overflow: hidden;
  display: flex;
  flex-direction: column;
}

.wy-side-nav-search {
  flex-shrink: 0;
  position: sticky;
  top: 0;
  z-index: 10;
}

.wy-menu-vertical {
  overflow-y: auto;
  flex-grow: 1;
}
`

// Options configures one documentation generation run.
type Options struct {
	// OutputDir is the documentation tree root. Defaults to DefaultDocsDir.
	OutputDir string
	// ConfigPath is the navigation config file path. Defaults to
	// mkdocs.yml in the parent directory of OutputDir.
	ConfigPath string
	// SlotsOnly suppresses class pages and the Classes navigation group.
	// Field pages are always generated.
	SlotsOnly bool
}

// normalize fills unset option fields with fixed defaults.
func (opt Options) normalize() Options {
	if strings.TrimSpace(opt.OutputDir) == "" {
		opt.OutputDir = DefaultDocsDir
	}

	if strings.TrimSpace(opt.ConfigPath) == "" {
		opt.ConfigPath = filepath.Join(filepath.Dir(filepath.Clean(opt.OutputDir)), navConfigFileName)
	}

	return opt
}

// Stats reports local element counts from one generation run.
type Stats struct {
	Slots   int
	Classes int
	Enums   int
}

// GenerateFile loads one combined schema file and generates its
// documentation tree.
func GenerateFile(schemaPath string, opt Options) (Stats, error) {
	view, err := LoadSchemaView(schemaPath)
	if err != nil {
		return Stats{}, err
	}

	return Generate(view, opt)
}

// Generate writes the documentation tree for one loaded schema: one page
// per local element, the index page, the navigation config and the
// stylesheet. Page writes are independent; a failed run may leave a
// partially populated tree.
func Generate(view *SchemaView, opt Options) (Stats, error) {
	opt = opt.normalize()

	slots := view.LocalSlots()
	classes := view.LocalClasses()
	enums := view.LocalEnums()
	stats := Stats{Slots: len(slots), Classes: len(classes), Enums: len(enums)}

	if err := os.MkdirAll(opt.OutputDir, 0o750); err != nil {
		return stats, fmt.Errorf("%w %q: %w", ErrWriteOutput, opt.OutputDir, err)
	}

	if err := generateSlotPages(view, opt.OutputDir, slots); err != nil {
		return stats, err
	}

	if !opt.SlotsOnly && len(classes) > 0 {
		if err := generateClassPages(view, opt.OutputDir, classes); err != nil {
			return stats, err
		}
	}

	if len(enums) > 0 {
		if err := generateEnumPages(view, opt.OutputDir, enums); err != nil {
			return stats, err
		}
	}

	index, err := RenderIndexPage(view, slots, classes, enums, opt.SlotsOnly)
	if err != nil {
		return stats, err
	}

	if err := writeTextFile(filepath.Join(opt.OutputDir, "index.md"), index); err != nil {
		return stats, err
	}

	nav, err := RenderNavConfig(view, slots, classes, enums, opt.SlotsOnly)
	if err != nil {
		return stats, err
	}

	if err := writeTextFile(opt.ConfigPath, nav); err != nil {
		return stats, err
	}

	cssDir := filepath.Join(opt.OutputDir, "css")
	if err := os.MkdirAll(cssDir, 0o750); err != nil {
		return stats, fmt.Errorf("%w %q: %w", ErrWriteOutput, cssDir, err)
	}

	if err := writeTextFile(filepath.Join(cssDir, "custom.css"), customCSS); err != nil {
		return stats, err
	}

	return stats, nil
}

// generateSlotPages writes one page per local field into slots/.
func generateSlotPages(view *SchemaView, outputDir string, slots map[string]*SlotDefinition) error {
	dir := filepath.Join(outputDir, "slots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, dir, err)
	}

	for name, slot := range slots {
		page, err := RenderSlotPage(view, name, slot)
		if err != nil {
			return err
		}

		if err := writeTextFile(filepath.Join(dir, name+".md"), page); err != nil {
			return err
		}
	}

	return nil
}

// generateClassPages writes one page per local class into classes/.
func generateClassPages(view *SchemaView, outputDir string, classes map[string]*ClassDefinition) error {
	dir := filepath.Join(outputDir, "classes")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, dir, err)
	}

	for name, class := range classes {
		page, err := RenderClassPage(view, name, class)
		if err != nil {
			return err
		}

		if err := writeTextFile(filepath.Join(dir, name+".md"), page); err != nil {
			return err
		}
	}

	return nil
}

// generateEnumPages writes one page per local enumeration into enums/.
func generateEnumPages(view *SchemaView, outputDir string, enums map[string]*EnumDefinition) error {
	dir := filepath.Join(outputDir, "enums")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, dir, err)
	}

	for name, enum := range enums {
		page, err := RenderEnumPage(view, name, enum)
		if err != nil {
			return err
		}

		if err := writeTextFile(filepath.Join(dir, name+".md"), page); err != nil {
			return err
		}
	}

	return nil
}

// writeTextFile writes one rendered output file with overwrite semantics.
func writeTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	return nil
}
