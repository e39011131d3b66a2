package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `# quizview configuration. Every key can be overridden with a
# QUIZVIEW_* environment variable, e.g. QUIZVIEW_DATA_SOURCE.
env: local

data:
  source: "data.json"
  timeout: 10s

server:
  addr: "127.0.0.1:5000"
  title: "Question Bank"
  assets_base_url: ""

ui:
  mode: auto
  no_color: false

quiz:
  choice_types:
    - "choice"
    - "选择"
`

// Scaffold writes the default config file into dir. It refuses to
// overwrite an existing file unless force is set.
func Scaffold(dir string, force bool) (string, error) {
	path := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists", path)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
