package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrFormat,
		ErrConfig,
		ErrPrompt,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "format error",
			code:       ErrFormat,
			message:    "Invalid size format: 12XB",
			suggestion: "Use a number followed by B, KB, MB, GB or TB",
		},
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Unknown color mode: sometimes",
			suggestion: "Use auto, always or never",
		},
		{
			name:       "prompt error",
			code:       ErrPrompt,
			message:    "Failed to read answer",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check .pintui.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check .pintui.yaml syntax"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(errors.New("strconv failure"), ErrFormat, "Bad size", ""),
			expectedParts: []string{"Bad size", "strconv failure"},
		},
		{
			name:          "without suggestion",
			err:           New(ErrPrompt, "Prompt failed", ""),
			expectedParts: []string{"Prompt failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := Wrap(cause, "Failed to read config")

	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	err := New(ErrFormat, "bad", "")

	assert.True(t, IsCode(err, ErrFormat))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrFormat))
	assert.False(t, IsCode(errors.New("plain"), ErrFormat))

	outer := fmt.Errorf("parsing flag: %w", err)
	assert.True(t, IsCode(outer, ErrFormat))
}

func TestSentinelMatchesByCode(t *testing.T) {
	sentinel := Sentinel(ErrFormat, "invalid format")
	err := WrapWithCode(errors.New("no match"), ErrFormat, "Invalid size format: abc", "")

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(fmt.Errorf("outer: %w", err), sentinel))
	assert.False(t, errors.Is(New(ErrConfig, "x", ""), sentinel))
	assert.False(t, errors.Is(err, errors.New("invalid format")))
}
