package config

import "strings"

// Normalize trims string fields and lowercases enumerations.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.Data.Source = strings.TrimSpace(cfg.Data.Source)
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	cfg.Server.Title = strings.TrimSpace(cfg.Server.Title)
	cfg.Server.AssetsBaseURL = strings.TrimRight(strings.TrimSpace(cfg.Server.AssetsBaseURL), "/")
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	types := make([]string, 0, len(cfg.Quiz.ChoiceTypes))
	for _, choiceType := range cfg.Quiz.ChoiceTypes {
		if trimmed := strings.TrimSpace(choiceType); trimmed != "" {
			types = append(types, trimmed)
		}
	}
	cfg.Quiz.ChoiceTypes = types
}
