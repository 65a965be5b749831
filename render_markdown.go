// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"sort"
	"strings"
)

// sortedNamesFold returns map keys in deterministic case-insensitive order.
// Names differing only by case keep plain lexicographic order between them.
func sortedNamesFold[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for name := range values {
		out = append(out, name)
	}

	sortNamesFold(out)
	return out
}

// sortNamesFold sorts names case-insensitively in place. The sort is stable
// so equal-fold names keep their incoming relative order.
func sortNamesFold(names []string) {
	sort.SliceStable(names, func(left, right int) bool {
		return strings.ToLower(names[left]) < strings.ToLower(names[right])
	})
}

// collapseNewlines folds embedded newlines into single spaces for table cells.
func collapseNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// truncateRunes cuts text to at most limit runes.
func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}

// cellText prepares one description for a single-line markdown table cell.
func cellText(text string, limit int) string {
	return truncateRunes(collapseNewlines(text), limit)
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// yesNo renders bool as "Yes" or "No".
func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

// normalizeMarkdownOutput trims trailing line whitespace and collapses
// every run of blank lines to one. This covers gaps left by skipped
// template sections and also applies inside multi-paragraph descriptions:
// authored text never renders with more than one consecutive blank line.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if strings.TrimSpace(line) == "" {
			if blankCount == 0 && len(out) > 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
