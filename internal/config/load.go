package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from path (or .quizview.yml found upward from
// the working directory when path is empty), overlays QUIZVIEW_* variables,
// then normalizes and validates the result. A missing default file is not
// an error; a missing explicit path is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if found, err := FindConfigPath(""); err == nil {
		v.SetConfigFile(found)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	cfg := Config{
		Env:    DefaultEnv,
		Data:   Data{Source: DefaultSource, Timeout: DefaultTimeout},
		Server: Server{Addr: DefaultAddr, Title: DefaultTitle},
		UI:     UI{Mode: DefaultUIMode},
		Quiz:   Quiz{ChoiceTypes: []string{DefaultChoiceTypeEN, DefaultChoiceTypeZH}},
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("env", def.Env)
	v.SetDefault("data.source", def.Data.Source)
	v.SetDefault("data.timeout", def.Data.Timeout.String())
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.title", def.Server.Title)
	v.SetDefault("server.assets_base_url", def.Server.AssetsBaseURL)
	v.SetDefault("ui.mode", def.UI.Mode)
	v.SetDefault("ui.no_color", def.UI.NoColor)
	v.SetDefault("quiz.choice_types", def.Quiz.ChoiceTypes)
}
