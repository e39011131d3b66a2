// Package filter derives filtered views of a question bank.
package filter

import (
	"strconv"
	"strings"

	"quizview/internal/question"
)

// AllTypes is the type selector value meaning no type restriction.
const AllTypes = "all"

// Criteria holds the current search text and type selection.
type Criteria struct {
	Search string
	Type   string
}

// Unrestricted reports whether the criteria keep every record.
func (c Criteria) Unrestricted() bool {
	return c.Search == "" && matchesAnyType(c.Type)
}

// Apply returns the records matching the criteria in their original order.
// Search is a case-insensitive substring of the question text or a
// substring of the record number; it is never treated as a pattern.
func Apply(all []question.Record, criteria Criteria) []question.Record {
	filtered := make([]question.Record, 0, len(all))
	if criteria.Unrestricted() {
		return append(filtered, all...)
	}
	search := strings.ToLower(criteria.Search)
	for _, record := range all {
		if !matchesType(record, criteria.Type) {
			continue
		}
		if !matchesText(record, search) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// Types returns the distinct type tags in first-appearance order.
func Types(all []question.Record) []string {
	seen := make(map[string]struct{}, 4)
	types := make([]string, 0, 4)
	for _, record := range all {
		if _, ok := seen[record.Type]; ok {
			continue
		}
		seen[record.Type] = struct{}{}
		types = append(types, record.Type)
	}
	return types
}

func matchesAnyType(selected string) bool {
	return selected == "" || selected == AllTypes
}

func matchesType(record question.Record, selected string) bool {
	return matchesAnyType(selected) || record.Type == selected
}

func matchesText(record question.Record, lowerSearch string) bool {
	if strings.Contains(strings.ToLower(record.Text), lowerSearch) {
		return true
	}
	return strings.Contains(strconv.Itoa(record.Number), lowerSearch)
}
