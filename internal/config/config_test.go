package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		want    func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "empty file keeps defaults",
			yaml: "",
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial file merges over defaults",
			yaml: `listen_address: "0.0.0.0:8080"`,
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddress)
				assert.Equal(t, "INFO", cfg.LogLevel)
				assert.Equal(t, "public/index.html", cfg.IndexFile)
			},
		},
		{
			name: "dev mode and log level",
			yaml: "log_level: DEBUG\ndev_mode: true\n",
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, "DEBUG", cfg.LogLevel)
				assert.True(t, cfg.DevMode)
			},
		},
		{
			name:    "empty listen_address fails validation",
			yaml:    `listen_address: ""`,
			wantErr: "config validation failed",
		},
		{
			name:    "unknown log level fails validation",
			yaml:    `log_level: LOUD`,
			wantErr: "config validation failed",
		},
		{
			name:    "invalid yaml syntax",
			yaml:    `invalid: [yaml: content`,
			wantErr: "failed to unmarshal config file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.yaml)
			cfg, err := Load(path)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			test.want(t, cfg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}
