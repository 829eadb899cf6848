package cli

import (
	"encoding/json"
	"testing"

	"github.com/rileyhilliard/pintui/internal/config"
	"github.com/rileyhilliard/pintui/pkg/pintui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCollectTokens(t *testing.T) {
	tokens := collectTokens()

	assert.Equal(t, pintui.IconTokens(), tokens.Icons)
	assert.Equal(t, pintui.ColorTokens(), tokens.Colors)
	assert.Equal(t, pintui.Rule, tokens.Rule)
	assert.Len(t, tokens.Spinners, len(config.SpinnerStyles))
	assert.Equal(t, "⠋", tokens.Spinners["braille"][0])
}

func TestTokensCommandYAML(t *testing.T) {
	stdout, _, err := executeCLI(t, "tokens")
	require.NoError(t, err)

	var got designTokens
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, collectTokens(), got)
	assert.Contains(t, stdout, "icons:\n  - name: ok\n")
}

func TestTokensCommandJSON(t *testing.T) {
	stdout, _, err := executeCLI(t, "tokens", "--format", "json")
	require.NoError(t, err)

	var got designTokens
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, collectTokens(), got)
}

func TestTokensCommandEnvelope(t *testing.T) {
	stdout, _, err := executeCLI(t, "--json", "tokens")
	require.NoError(t, err)

	var env struct {
		Success bool         `json:"success"`
		Data    designTokens `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	assert.True(t, env.Success)
	assert.Len(t, env.Data.Icons, len(pintui.IconTokens()))
}

func TestTokensCommandUnknownFormat(t *testing.T) {
	_, stderr, err := executeCLI(t, "tokens", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, stderr, `Unknown token format: "toml"`)
}
