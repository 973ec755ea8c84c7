// Package store loads crono's optional configuration file. There is no
// runtime persistence: the schedule is static input and view state
// lives only for the session.
package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/crono/pkg/schedule"
)

// ExportConfig carries the PNG export defaults.
type ExportConfig struct {
	Output     string
	Width      int
	Scale      float64
	Background string
}

// Config is the resolved application configuration.
type Config struct {
	// SchedulePath points at a schedule YAML file; empty means the
	// embedded conference schedule.
	SchedulePath string
	Export       ExportConfig
	Links        map[schedule.Audience]string
}

// LoadConfig reads .crono.yaml from $CRONO_CONFIG_PATH or the current
// directory. A missing file yields the defaults; a malformed file is an
// error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("schedule", "")
	v.SetDefault("export.output", "")
	v.SetDefault("export.width", 0)
	v.SetDefault("export.scale", 2.0)
	v.SetDefault("export.background", "#ffffff")
	v.SetConfigName(".crono") // .yaml is implicit
	v.SetEnvPrefix("CRONO")
	v.AutomaticEnv()

	if override := os.Getenv("CRONO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	schedulePath := v.GetString("schedule")
	if schedulePath != "" {
		expanded, err := homedir.Expand(schedulePath)
		if err != nil {
			return nil, fmt.Errorf("expand schedule path: %w", err)
		}
		schedulePath = expanded
	}

	return &Config{
		SchedulePath: schedulePath,
		Export: ExportConfig{
			Output:     v.GetString("export.output"),
			Width:      v.GetInt("export.width"),
			Scale:      v.GetFloat64("export.scale"),
			Background: v.GetString("export.background"),
		},
		Links: map[schedule.Audience]string{
			schedule.Youth:    v.GetString("links.youth"),
			schedule.Teens:    v.GetString("links.teens"),
			schedule.Everyone: v.GetString("links.everyone"),
		},
	}, nil
}

// LoadSchedule resolves the schedule per config: an explicit file when
// set, the embedded data otherwise.
func (c *Config) LoadSchedule() (*schedule.Schedule, error) {
	if c.SchedulePath != "" {
		return schedule.Load(c.SchedulePath)
	}
	return schedule.Default()
}
