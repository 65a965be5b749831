// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"fmt"
	"strings"
)

// detailView is a single rendered name/value row in a page table.
type detailView struct {
	Name  string
	Value string
}

// linkView is one markdown cross-reference to another element page.
type linkView struct {
	Label  string
	Target string
}

// slotPageView is the template model for one field page.
type slotPageView struct {
	Name        string
	Description string
	Comments    []string
	Details     []detailView
	Annotations []detailView
	Examples    []string
	UsedIn      []linkView
	Parent      string
	Mixins      []string
}

// attributeRowView is one row of a class attributes table.
type attributeRowView struct {
	Name        string
	Range       string
	Description string
	Required    string
}

// classPageView is the template model for one class page.
type classPageView struct {
	Name        string
	Description string
	Attributes  []attributeRowView
	Parent      string
}

// permittedValueView is one row of an enumeration values table.
type permittedValueView struct {
	Name        string
	Description string
}

// enumPageView is the template model for one enumeration page.
type enumPageView struct {
	Name        string
	Description string
	Values      []permittedValueView
}

// indexRowView is one data dictionary row on the index page.
type indexRowView struct {
	Name        string
	Range       string
	Description string
}

// indexPageView is the template model for the index page.
type indexPageView struct {
	Title       string
	Description string
	Slots       []indexRowView
	Classes     []string
	Enums       []string
}

// navConfigView is the template model for the site navigation config.
type navConfigView struct {
	SiteName string
	Slots    []string
	Classes  []string
	Enums    []string
}

// buildSlotPageView prepares one field page model from a slot definition.
func buildSlotPageView(view *SchemaView, name string, slot *SlotDefinition) slotPageView {
	page := slotPageView{
		Name:        name,
		Description: slot.Description,
		Comments:    slot.Comments,
		Details:     slotDetailRows(view, slot),
		Annotations: annotationRows(slot.Annotations),
		Parent:      slot.IsA,
		Mixins:      slot.Mixins,
	}

	for _, example := range slot.Examples {
		page.Examples = append(page.Examples, escapeInline(example.Value))
	}

	for _, className := range classesUsingSlot(view, name) {
		page.UsedIn = append(page.UsedIn, linkView{
			Label:  className,
			Target: "../classes/" + className + ".md",
		})
	}

	return page
}

// slotDetailRows builds the details table rows for one slot.
func slotDetailRows(view *SchemaView, slot *SlotDefinition) []detailView {
	out := make([]detailView, 0, 8)
	out = append(out,
		detailView{Name: "Range", Value: rangeDisplay(view, slot.Range)},
		detailView{Name: "Required", Value: yesNo(slot.Required)},
		detailView{Name: "Multivalued", Value: yesNo(slot.Multivalued)},
	)

	if slot.Pattern != "" {
		out = append(out, detailView{Name: "Pattern", Value: "`" + escapeInline(slot.Pattern) + "`"})
	}

	if slot.MinimumValue != nil {
		out = append(out, detailView{Name: "Minimum", Value: formatBound(*slot.MinimumValue)})
	}

	if slot.MaximumValue != nil {
		out = append(out, detailView{Name: "Maximum", Value: formatBound(*slot.MaximumValue)})
	}

	if slot.Unit != nil {
		out = append(out, detailView{Name: "Unit", Value: unitDisplay(slot.Unit)})
	}

	if len(slot.InSubset) > 0 {
		out = append(out, detailView{Name: "Subsets", Value: strings.Join(slot.InSubset, ", ")})
	}

	return out
}

// rangeDisplay cross-links element ranges and code-formats primitive ranges.
// The range defaults to string when the slot declares none.
func rangeDisplay(view *SchemaView, rangeName string) string {
	if rangeName == "" {
		rangeName = "string"
	}

	if _, ok := view.AllEnums()[rangeName]; ok {
		return fmt.Sprintf("[%s](../enums/%s.md)", rangeName, rangeName)
	}

	if _, ok := view.AllClasses()[rangeName]; ok {
		return fmt.Sprintf("[%s](../classes/%s.md)", rangeName, rangeName)
	}

	if typeDef := view.GetType(rangeName); typeDef != nil {
		if typeDef.URI != "" {
			return fmt.Sprintf("`%s` (%s)", escapeInline(rangeName), typeDef.URI)
		}

		return "`" + escapeInline(rangeName) + "`"
	}

	return "`" + escapeInline(rangeName) + "`"
}

// unitDisplay renders structured units as symbol plus UCUM code, raw otherwise.
func unitDisplay(unit *UnitOfMeasure) string {
	if unit.Symbol != "" || unit.UcumCode != "" {
		return fmt.Sprintf("%s (%s)", unit.Symbol, unit.UcumCode)
	}

	return unit.Raw
}

// annotationRows converts annotation tags into deterministic table rows.
func annotationRows(annotations AnnotationMap) []detailView {
	if len(annotations) == 0 {
		return nil
	}

	out := make([]detailView, 0, len(annotations))
	for _, tag := range sortedNamesFold(annotations) {
		out = append(out, detailView{Name: escapeInline(tag), Value: annotations[tag].Value})
	}

	return out
}

// classesUsingSlot lists every class whose induced slot set contains the
// slot, sorted case-insensitively.
func classesUsingSlot(view *SchemaView, slotName string) []string {
	out := make([]string, 0, 4)
	for className := range view.AllClasses() {
		if view.ClassUsesSlot(className, slotName) {
			out = append(out, className)
		}
	}

	sortNamesFold(out)
	return out
}

// buildClassPageView prepares one class page model from a class definition.
func buildClassPageView(view *SchemaView, name string, class *ClassDefinition) classPageView {
	page := classPageView{
		Name:        name,
		Description: class.Description,
		Parent:      class.IsA,
	}

	induced := view.ClassInducedSlots(name)
	names := make([]string, 0, len(induced))
	byName := make(map[string]*SlotDefinition, len(induced))
	for _, named := range induced {
		names = append(names, named.Name)
		byName[named.Name] = named.Slot
	}

	sortNamesFold(names)
	for _, slotName := range names {
		slot := byName[slotName]
		rangeName := slot.Range
		if rangeName == "" {
			rangeName = "string"
		}

		page.Attributes = append(page.Attributes, attributeRowView{
			Name:        slotName,
			Range:       escapeInline(rangeName),
			Description: cellText(slot.Description, 100),
			Required:    yesNo(slot.Required),
		})
	}

	return page
}

// buildEnumPageView prepares one enumeration page model.
func buildEnumPageView(name string, enum *EnumDefinition) enumPageView {
	page := enumPageView{
		Name:        name,
		Description: enum.Description,
	}

	for _, valueName := range sortedNamesFold(enum.PermissibleValues) {
		description := ""
		if value := enum.PermissibleValues[valueName]; value != nil {
			description = collapseNewlines(value.Description)
		}

		page.Values = append(page.Values, permittedValueView{
			Name:        escapeInline(valueName),
			Description: description,
		})
	}

	return page
}

// schemaDisplayName selects the site and index display name.
func schemaDisplayName(schema *Schema) string {
	if schema.Title != "" {
		return schema.Title
	}

	if schema.Name != "" {
		return schema.Name
	}

	return "Schema"
}

// buildIndexPageView prepares the index page model over local elements.
func buildIndexPageView(view *SchemaView, slots map[string]*SlotDefinition, classes map[string]*ClassDefinition, enums map[string]*EnumDefinition, slotsOnly bool) indexPageView {
	page := indexPageView{
		Title:       schemaDisplayName(view.Schema()),
		Description: view.Schema().Description,
		Enums:       sortedNamesFold(enums),
	}

	for _, slotName := range sortedNamesFold(slots) {
		slot := slots[slotName]
		rangeName := slot.Range
		if rangeName == "" {
			rangeName = "string"
		}

		page.Slots = append(page.Slots, indexRowView{
			Name:        slotName,
			Range:       escapeInline(rangeName),
			Description: cellText(slot.Description, 80),
		})
	}

	if !slotsOnly {
		page.Classes = sortedNamesFold(classes)
	}

	return page
}

// buildNavConfigView prepares the navigation config model over local elements.
func buildNavConfigView(view *SchemaView, slots map[string]*SlotDefinition, classes map[string]*ClassDefinition, enums map[string]*EnumDefinition, slotsOnly bool) navConfigView {
	nav := navConfigView{
		SiteName: schemaDisplayName(view.Schema()),
		Slots:    sortedNamesFold(slots),
		Enums:    sortedNamesFold(enums),
	}

	if !slotsOnly {
		nav.Classes = sortedNamesFold(classes)
	}

	return nav
}
