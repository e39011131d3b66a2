package question

import (
	"fmt"
	"strings"
)

// Issue captures a problem found in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that numbers are positive and unique and that every
// record carries a type and a question body. Loading never calls it; the
// viewer renders whatever the bank holds.
func Validate(records []Record) error {
	collector := &issueCollector{}
	seen := map[int]int{}
	for i, record := range records {
		prefix := fmt.Sprintf("questions[%d]", i)
		if record.Number <= 0 {
			collector.add(prefix+".number", fmt.Sprintf("must be positive, got %d", record.Number))
		} else if first, exists := seen[record.Number]; exists {
			collector.add(prefix+".number", fmt.Sprintf("duplicate number %d (first at questions[%d])", record.Number, first))
		} else {
			seen[record.Number] = i
		}
		if strings.TrimSpace(record.Type) == "" {
			collector.add(prefix+".type", "is required")
		}
		if strings.TrimSpace(record.Text) == "" {
			collector.add(prefix+".text", "is required")
		}
	}
	return collector.result()
}
