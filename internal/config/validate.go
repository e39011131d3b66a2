package config

import (
	"fmt"
	"strings"
)

// Issue captures a configuration problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more configuration issues.
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
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

// Validate checks a normalized configuration.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}
	if cfg.Data.Source == "" {
		add("data.source", "is required")
	}
	if cfg.Data.Timeout <= 0 {
		add("data.timeout", "must be positive")
	}
	if cfg.Server.Addr == "" {
		add("server.addr", "is required")
	}
	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
