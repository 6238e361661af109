package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/fasim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf), "a buffer is never a terminal")
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "chatty"
	_, err = NewLogger(cfg)
	assert.Error(t, err)
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Unix line", input: "fa.txt\nrest", want: "fa.txt"},
		{name: "Windows line", input: "fa.txt\r\n", want: "fa.txt"},
		{name: "No trailing newline", input: "fa.txt", want: "fa.txt"},
		{name: "Closed input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := prompt(&out, bufio.NewReader(strings.NewReader(tt.input)), "Question? ")
			assert.Equal(t, "Question? ", out.String())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
