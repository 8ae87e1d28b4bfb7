// Package config holds the tool-level settings of scan2pdf: which scanner
// backend to use and how to log. Settings are resolved from struct-tag
// defaults overridden by SCAN2PDF_* environment variables; everything
// device-related lives in the scanner configuration file instead.
package config

import (
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Settings configure the tool itself, not the scanner.
//
//	┌────────────┬───────────┬───────────────────────────────────────┐
//	│ Field      │ Default   │ Environment                           │
//	├────────────┼───────────┼───────────────────────────────────────┤
//	│ Backend    │ "fake"    │ SCAN2PDF_BACKEND                      │
//	│ LogLevel   │ "info"    │ SCAN2PDF_LOG_LEVEL                    │
//	│ LogFormat  │ "console" │ SCAN2PDF_LOG_FORMAT (console or json) │
//	└────────────┴───────────┴───────────────────────────────────────┘
type Settings struct {
	Backend   string `mapstructure:"backend" default:"fake"`
	LogLevel  string `mapstructure:"log_level" default:"info"`
	LogFormat string `mapstructure:"log_format" default:"console"`
}

// Load resolves settings from defaults and environment.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := defaults.Set(s); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("scan2pdf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// registering defaults makes the keys visible to AutomaticEnv
	v.SetDefault("backend", s.Backend)
	v.SetDefault("log_level", s.LogLevel)
	v.SetDefault("log_format", s.LogFormat)

	if err := v.Unmarshal(s); err != nil {
		return nil, err
	}
	return s, nil
}
