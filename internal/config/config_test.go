package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/pintui/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearColorEnv isolates tests from the developer's shell.
func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE",
		"PINTUI_COLOR", "PINTUI_SPINNER_STYLE", "PINTUI_INTERVAL",
		"PINTUI_BAR_WIDTH", "PINTUI_DIVIDER_WIDTH",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, ColorAuto, s.Color)
	assert.Equal(t, "braille", s.SpinnerStyle)
	assert.Equal(t, 80*time.Millisecond, s.Interval)
	assert.Equal(t, 40, s.BarWidth)
	assert.Equal(t, 40, s.DividerWidth)
	assert.NoError(t, s.Validate())
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, s *Settings)
	}{
		{
			name: "defaults with empty environment",
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, DefaultSettings(), s)
			},
		},
		{
			name: "pintui variables override defaults",
			env: map[string]string{
				"PINTUI_COLOR":         "Always",
				"PINTUI_SPINNER_STYLE": "line",
				"PINTUI_INTERVAL":      "120ms",
				"PINTUI_BAR_WIDTH":     "25",
			},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorAlways, s.Color)
				assert.Equal(t, "line", s.SpinnerStyle)
				assert.Equal(t, 120*time.Millisecond, s.Interval)
				assert.Equal(t, 25, s.BarWidth)
			},
		},
		{
			name: "NO_COLOR disables color",
			env:  map[string]string{"NO_COLOR": "1"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorNever, s.Color)
			},
		},
		{
			name: "CLICOLOR=0 disables color",
			env:  map[string]string{"CLICOLOR": "0"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorNever, s.Color)
			},
		},
		{
			name: "CLICOLOR=1 leaves auto",
			env:  map[string]string{"CLICOLOR": "1"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorAuto, s.Color)
			},
		},
		{
			name: "CLICOLOR_FORCE wins over NO_COLOR",
			env:  map[string]string{"CLICOLOR_FORCE": "1", "NO_COLOR": "1"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorAlways, s.Color)
			},
		},
		{
			name: "CLICOLOR_FORCE=0 is ignored",
			env:  map[string]string{"CLICOLOR_FORCE": "0"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorAuto, s.Color)
			},
		},
		{
			name: "explicit never beats CLICOLOR_FORCE",
			env:  map[string]string{"CLICOLOR_FORCE": "1", "PINTUI_COLOR": "never"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, ColorNever, s.Color)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			s, err := FromEnv()
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoad(t *testing.T) {
	clearColorEnv(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
color: never
spinner_style: moon
interval: 100ms
bar_width: 30
divider_width: 60
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	s, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, s.Color)
	assert.Equal(t, "moon", s.SpinnerStyle)
	assert.Equal(t, 100*time.Millisecond, s.Interval)
	assert.Equal(t, 30, s.BarWidth)
	assert.Equal(t, 60, s.DividerWidth)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("PINTUI_BAR_WIDTH", "12")

	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("bar_width: 30\n"), 0644))

	s, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 12, s.BarWidth)
	assert.Equal(t, "braille", s.SpinnerStyle)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.pintui.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config file not found")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("color: [unclosed"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantErr  bool
		wantPath bool
	}{
		{
			name: "explicit path exists",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "custom.yaml")
				require.NoError(t, os.WriteFile(path, []byte("color: auto"), 0644))
				return path
			},
			wantPath: true,
		},
		{
			name: "explicit path not found",
			setup: func(t *testing.T) string {
				return "/nonexistent/config.yaml"
			},
			wantErr: true,
		},
		{
			name: "current directory has config",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: auto"), 0644))
				t.Chdir(dir)
				return ""
			},
			wantPath: true,
		},
		{
			name: "global config in home",
			setup: func(t *testing.T) string {
				home := t.TempDir()
				t.Setenv("HOME", home)
				globalDir := filepath.Join(home, GlobalConfigDir)
				require.NoError(t, os.MkdirAll(globalDir, 0755))
				require.NoError(t, os.WriteFile(filepath.Join(globalDir, GlobalConfigFile), []byte("color: auto"), 0644))
				t.Chdir(t.TempDir())
				return ""
			},
			wantPath: true,
		},
		{
			name: "nothing found",
			setup: func(t *testing.T) string {
				t.Setenv("HOME", t.TempDir())
				t.Chdir(t.TempDir())
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explicit := tt.setup(t)

			path, err := Find(explicit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantPath {
				assert.NotEmpty(t, path)
				if explicit != "" {
					assert.Equal(t, explicit, path)
				}
			} else {
				assert.Empty(t, path)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	s, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	clearColorEnv(t)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("spinner_style: hourglass\n"), 0644))

	_, err := LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown spinner style")
}
