// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import "fmt"

// RenderSlotPage renders the markdown page for one field definition.
func RenderSlotPage(view *SchemaView, name string, slot *SlotDefinition) (string, error) {
	if slot == nil {
		return "", fmt.Errorf("%w: slot %q", ErrUnknownElement, name)
	}

	rendered, err := executePageTemplate(templateSlotPage, buildSlotPageView(view, name, slot))
	if err != nil {
		return "", err
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(rendered)), nil
}

// RenderClassPage renders the markdown page for one class definition.
func RenderClassPage(view *SchemaView, name string, class *ClassDefinition) (string, error) {
	if class == nil {
		return "", fmt.Errorf("%w: class %q", ErrUnknownElement, name)
	}

	rendered, err := executePageTemplate(templateClassPage, buildClassPageView(view, name, class))
	if err != nil {
		return "", err
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(rendered)), nil
}

// RenderEnumPage renders the markdown page for one enumeration definition.
// The view argument keeps the renderer signatures uniform; enumeration pages
// need no cross-element lookups.
func RenderEnumPage(_ *SchemaView, name string, enum *EnumDefinition) (string, error) {
	if enum == nil {
		return "", fmt.Errorf("%w: enum %q", ErrUnknownElement, name)
	}

	rendered, err := executePageTemplate(templateEnumPage, buildEnumPageView(name, enum))
	if err != nil {
		return "", err
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(rendered)), nil
}

// RenderIndexPage renders the index page over the local element sets.
func RenderIndexPage(view *SchemaView, slots map[string]*SlotDefinition, classes map[string]*ClassDefinition, enums map[string]*EnumDefinition, slotsOnly bool) (string, error) {
	rendered, err := executePageTemplate(templateIndexPage, buildIndexPageView(view, slots, classes, enums, slotsOnly))
	if err != nil {
		return "", err
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(rendered)), nil
}

// RenderNavConfig renders the mkdocs navigation config over the local
// element sets. The output is YAML, not markdown, so only the trailing
// newline is normalized.
func RenderNavConfig(view *SchemaView, slots map[string]*SlotDefinition, classes map[string]*ClassDefinition, enums map[string]*EnumDefinition, slotsOnly bool) (string, error) {
	rendered, err := executePageTemplate(templateNavConfig, buildNavConfigView(view, slots, classes, enums, slotsOnly))
	if err != nil {
		return "", err
	}

	return ensureTrailingNewline(rendered), nil
}
