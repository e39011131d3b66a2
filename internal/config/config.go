// Package config loads quizview settings from an optional YAML file and
// QUIZVIEW_* environment variables.
package config

import "time"

// Config holds application configuration.
type Config struct {
	Env    string `mapstructure:"env"`    // application environment (local, production)
	Data   Data   `mapstructure:"data"`   // question bank source
	Server Server `mapstructure:"server"` // web surface settings
	UI     UI     `mapstructure:"ui"`     // terminal viewer settings
	Quiz   Quiz   `mapstructure:"quiz"`   // question formatting policy
}

// Data locates the question bank.
type Data struct {
	Source  string        `mapstructure:"source"`  // file path or http(s) URL
	Timeout time.Duration `mapstructure:"timeout"` // fetch timeout for remote banks
}

// Server configures `quizview serve`.
type Server struct {
	Addr          string `mapstructure:"addr"`            // listen address
	Title         string `mapstructure:"title"`           // page title
	AssetsBaseURL string `mapstructure:"assets_base_url"` // external host for viewer.js/viewer.css
}

// UI configures `quizview view`.
type UI struct {
	Mode    string `mapstructure:"mode"`     // auto, live or plain
	NoColor bool   `mapstructure:"no_color"` // disable lipgloss styling
}

// Quiz configures how question text is formatted.
type Quiz struct {
	ChoiceTypes []string `mapstructure:"choice_types"` // type tags reflowed as multiple choice
}

// Defaults used when neither the file nor the environment sets a key.
const (
	DefaultEnv          = "local"
	DefaultSource       = "data.json"
	DefaultTimeout      = 10 * time.Second
	DefaultAddr         = "127.0.0.1:5000"
	DefaultTitle        = "Question Bank"
	DefaultUIMode       = "auto"
	ProductionEnv       = "production"
	EnvPrefix           = "QUIZVIEW"
	DefaultChoiceTypeEN = "choice"
	DefaultChoiceTypeZH = "选择"
)
