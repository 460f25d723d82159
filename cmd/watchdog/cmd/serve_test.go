package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"8080", 8080, false},
		{"1", 1, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"-1", 0, true},
		{"http", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseServerConfigDefaults(t *testing.T) {
	cfg := parseServerConfig(serveCmd)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.PathPrefix)
	assert.False(t, cfg.CORSEnabled)
}

func TestParseServerConfigCORSOriginsImplyCORS(t *testing.T) {
	require.NoError(t, serveCmd.Flags().Set("cors-origins", "https://example.com"))
	defer func() {
		_ = serveCmd.Flags().Set("cors-origins", "")
	}()

	cfg := parseServerConfig(serveCmd)
	assert.True(t, cfg.CORSEnabled)
	assert.Contains(t, cfg.CORSOrigins, "https://example.com")
}
