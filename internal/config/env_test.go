package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG",
	"STORAGE_DIR", "STORAGE_DB_DSN", "STORAGE_DB_DRIVER",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"CRYPTO_ARGON_TIME", "CRYPTO_ARGON_MEMORY", "CRYPTO_ARGON_THREADS",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
}

// setEnvVars unsets every variable the config reads, then sets vars. The
// previous environment is restored when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want StructuredConfig
	}{
		{
			name: "empty environment",
			want: StructuredConfig{},
		},
		{
			name: "server only",
			vars: map[string]string{"SERVER_ADDRESS": "localhost:8080"},
			want: StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
		},
		{
			name: "every variable",
			vars: map[string]string{
				"CONFIG":                  "/etc/qass.json",
				"STORAGE_DIR":             "/var/qass",
				"STORAGE_DB_DSN":          "postgres://vault@localhost/vault",
				"STORAGE_DB_DRIVER":       "pgx",
				"SERVER_ADDRESS":          "127.0.0.1:8080",
				"SERVER_REQUEST_TIMEOUT":  "30s",
				"CRYPTO_ARGON_TIME":       "3",
				"CRYPTO_ARGON_MEMORY":     "65536",
				"CRYPTO_ARGON_THREADS":    "4",
				"ADAPTER_ADDRESS":         "127.0.0.1:9090",
				"ADAPTER_REQUEST_TIMEOUT": "5s",
			},
			want: StructuredConfig{
				Storage: Storage{
					Dir: "/var/qass",
					DB:  DB{DSN: "postgres://vault@localhost/vault", Driver: "pgx"},
				},
				Server:       Server{HTTPAddress: "127.0.0.1:8080", RequestTimeout: 30 * time.Second},
				Crypto:       Crypto{ArgonTime: 3, ArgonMemory: 65536, ArgonThreads: 4},
				Adapter:      Adapter{HTTPAddress: "127.0.0.1:9090", RequestTimeout: 5 * time.Second},
				JSONFilePath: "/etc/qass.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			cfg, err := parseEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseEnv_InvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"SERVER_REQUEST_TIMEOUT": "soon",
		"CRYPTO_ARGON_THREADS":   "300",
	} {
		t.Run(key, func(t *testing.T) {
			setEnvVars(t, map[string]string{key: value})

			cfg, err := parseEnv()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
