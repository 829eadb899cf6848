package config

import (
	"testing"

	"github.com/rileyhilliard/pintui/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(s *Settings) {},
		},
		{
			name:    "unknown color mode",
			modify:  func(s *Settings) { s.Color = "sometimes" },
			wantErr: "Unknown color mode",
		},
		{
			name:    "unknown spinner style",
			modify:  func(s *Settings) { s.SpinnerStyle = "hourglass" },
			wantErr: "Unknown spinner style",
		},
		{
			name:    "zero interval",
			modify:  func(s *Settings) { s.Interval = 0 },
			wantErr: "interval must be positive",
		},
		{
			name:    "negative bar width",
			modify:  func(s *Settings) { s.BarWidth = -1 },
			wantErr: "bar_width must be positive",
		},
		{
			name:    "zero divider width",
			modify:  func(s *Settings) { s.DividerWidth = 0 },
			wantErr: "divider_width must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)

			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestIsSpinnerStyle(t *testing.T) {
	for _, name := range SpinnerStyles {
		assert.True(t, IsSpinnerStyle(name), name)
	}
	assert.False(t, IsSpinnerStyle(""))
	assert.False(t, IsSpinnerStyle("Braille"))
}
