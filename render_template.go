// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// templateFS stores built-in page templates embedded into the package.
//
//go:embed templates/*.gotmpl
var templateFS embed.FS

const (
	templateSlotPage  = "slot.md.gotmpl"
	templateClassPage = "class.md.gotmpl"
	templateEnumPage  = "enum.md.gotmpl"
	templateIndexPage = "index.md.gotmpl"
	templateNavConfig = "mkdocs.yml.gotmpl"
)

// loadPageTemplates parses all embedded templates once per process.
var loadPageTemplates = sync.OnceValues(func() (*template.Template, error) {
	parsed, err := template.New("pages").ParseFS(templateFS, "templates/*.gotmpl")
	if err != nil {
		return nil, fmt.Errorf("parse built-in templates: %w", err)
	}

	return parsed, nil
})

// executePageTemplate renders one named embedded template with a view model.
func executePageTemplate(name string, view any) (string, error) {
	pages, err := loadPageTemplates()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := pages.ExecuteTemplate(&out, name, view); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	return out.String(), nil
}
