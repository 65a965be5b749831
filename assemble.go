// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DefaultCombinedSchemaPath is the default assembler output file name.
	DefaultCombinedSchemaPath = "entire_schema.yml"
	// defaultMetadataPath holds schema-level metadata.
	defaultMetadataPath = "other_elements/schema_metadata.yml"
	// defaultEnumsPath holds enumeration definitions.
	defaultEnumsPath = "other_elements/enums.yml"
	// defaultClassesPath holds class definitions.
	defaultClassesPath = "other_elements/classes.yml"
	// defaultSlotsDir holds one field definition fragment per file.
	defaultSlotsDir = "slots"
	// slotIndent is the indentation unit applied to field fragment lines.
	slotIndent = "  "
)

// slotSectionBanner announces the field definitions section in the combined file.
const slotSectionBanner = `################################################################################
# SLOTS - FIELD DEFINITIONS
################################################################################
`

// AssembleOptions configures fragment locations for one assembler run.
// Zero-value fields fall back to the fixed default layout.
type AssembleOptions struct {
	// MetadataPath is the schema metadata fragment file.
	MetadataPath string
	// EnumsPath is the enumerations fragment file.
	EnumsPath string
	// ClassesPath is the classes fragment file.
	ClassesPath string
	// SlotsDir is the directory of per-field fragment files.
	SlotsDir string
	// OutputPath is the combined schema file to write.
	OutputPath string
}

// normalize fills unset option fields with the default fragment layout.
func (opt AssembleOptions) normalize() AssembleOptions {
	if strings.TrimSpace(opt.MetadataPath) == "" {
		opt.MetadataPath = defaultMetadataPath
	}

	if strings.TrimSpace(opt.EnumsPath) == "" {
		opt.EnumsPath = defaultEnumsPath
	}

	if strings.TrimSpace(opt.ClassesPath) == "" {
		opt.ClassesPath = defaultClassesPath
	}

	if strings.TrimSpace(opt.SlotsDir) == "" {
		opt.SlotsDir = defaultSlotsDir
	}

	if strings.TrimSpace(opt.OutputPath) == "" {
		opt.OutputPath = DefaultCombinedSchemaPath
	}

	return opt
}

// Assemble concatenates schema fragments into one combined schema file.
// The output file is overwritten; a missing fragment is fatal.
func Assemble(opt AssembleOptions) error {
	opt = opt.normalize()

	var out strings.Builder
	if err := assembleTo(&out, opt); err != nil {
		return err
	}

	if err := os.WriteFile(opt.OutputPath, []byte(out.String()), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, opt.OutputPath, err)
	}

	return nil
}

// assembleTo writes the combined schema document to one writer.
func assembleTo(out io.Writer, opt AssembleOptions) error {
	for _, path := range []string{opt.MetadataPath, opt.EnumsPath, opt.ClassesPath} {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrReadFragment, path, err)
		}

		if _, err := out.Write(content); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	if _, err := io.WriteString(out, slotSectionBanner+"\nslots:\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	fragments, err := slotFragmentPaths(opt.SlotsDir)
	if err != nil {
		return err
	}

	for _, path := range fragments {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrReadFragment, path, err)
		}

		if _, err := io.WriteString(out, indentFragment(string(content))); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	return nil
}

// slotFragmentPaths lists field fragment files in lexicographic name order.
func slotFragmentPaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadFragment, dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// indentFragment indents every non-blank fragment line by one indent unit.
// Blank lines stay bare so the combined file gains no trailing whitespace,
// and one blank line separates consecutive fragments.
func indentFragment(content string) string {
	var out strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			out.WriteString("\n")
			continue
		}

		out.WriteString(slotIndent + line + "\n")
	}

	out.WriteString("\n")
	return out.String()
}
