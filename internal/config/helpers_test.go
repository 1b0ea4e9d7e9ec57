package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// configEnvVars lists every variable read by parseEnv.
var configEnvVars = []string{
	"MONGODB_DOCKER_ENV",
	"OHP_RESOLVER_TIMEOUT",
	"OHP_RESOLVER_HOST_ADDRESS",
	"OHP_LOG_LEVEL",
	"OHP_LOG_FILE",
	"OHP_FORMAT",
	"OHP_CONFIG",
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		key := key // per-iteration copy for the Cleanup closure (go1.21 loop semantics)
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
