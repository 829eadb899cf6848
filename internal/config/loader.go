package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/pintui/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".pintui.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/pintui"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes every pintui environment variable (PINTUI_COLOR, PINTUI_INTERVAL, ...).
	EnvPrefix = "PINTUI"
)

// FromEnv builds settings from defaults and the environment only.
func FromEnv() (*Settings, error) {
	return parseSettings(newViper(), "environment")
}

// Load reads settings from the YAML file at path. Environment variables
// override values from the file.
func Load(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Create "+ConfigFileName+" or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseSettings(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .pintui.yaml in current directory
// 3. ~/.config/pintui/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads a config file, falling back to the
// environment when none exists. The result is validated.
func LoadOrDefault(explicit string) (*Settings, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	var s *Settings
	if path == "" {
		s, err = FromEnv()
	} else {
		s, err = Load(path)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional color switches shared with other command line tools.
	_ = v.BindEnv("no_color", "NO_COLOR")
	_ = v.BindEnv("clicolor", "CLICOLOR")
	_ = v.BindEnv("clicolor_force", "CLICOLOR_FORCE")

	setDefaults(v)
	return v
}

// setDefaults registers every key so AutomaticEnv applies during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("color", d.Color)
	v.SetDefault("spinner_style", d.SpinnerStyle)
	v.SetDefault("interval", d.Interval.String())
	v.SetDefault("bar_width", d.BarWidth)
	v.SetDefault("divider_width", d.DividerWidth)
}

// parseSettings converts viper state to Settings with defaults merged in.
func parseSettings(v *viper.Viper, source string) (*Settings, error) {
	s := DefaultSettings()

	if err := v.Unmarshal(s); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	s.Color = strings.ToLower(strings.TrimSpace(s.Color))
	s.SpinnerStyle = strings.ToLower(strings.TrimSpace(s.SpinnerStyle))
	s.Color = resolveColor(s.Color, v)

	return s, nil
}

// resolveColor applies CLICOLOR_FORCE, NO_COLOR and CLICOLOR when the mode
// is auto. An explicit always/never wins over the conventional variables.
func resolveColor(mode string, v *viper.Viper) string {
	if mode != ColorAuto {
		return mode
	}
	if force := v.GetString("clicolor_force"); force != "" && force != "0" {
		return ColorAlways
	}
	if v.GetString("no_color") != "" {
		return ColorNever
	}
	if v.GetString("clicolor") == "0" {
		return ColorNever
	}
	return ColorAuto
}
