package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validYAML = `
server:
  port: 9090
  mode: debug
inference:
  endpoint: https://api-inference.huggingface.co/models/dslim/bert-base-NER
  token: hf_test_token
  timeout: 5s
  label_scheme: bio
log:
  level: debug
  format: console
`

func TestLoad_ValidFile(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "hf_test_token", cfg.Inference.Token)
	assert.Equal(t, 5*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Defaults fill unset fields.
	assert.Equal(t, DefaultServerHost, cfg.Server.Host)
	assert.Equal(t, DefaultInferenceModel, cfg.Inference.Model)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingTokenIsFatal(t *testing.T) {
	yaml := `
inference:
  endpoint: https://example.com/models/ner
`
	_, err := Load(writeConfigFile(t, yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inference.token")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPOTLIGHT_INFERENCE_ENDPOINT", "https://example.com/models/ner")
	t.Setenv("SPOTLIGHT_INFERENCE_TOKEN", "hf_env_token")
	t.Setenv("SPOTLIGHT_SERVER_PORT", "8123")
	t.Setenv("SPOTLIGHT_LOG_LEVEL", "warn")
	t.Setenv("SPOTLIGHT_INFERENCE_LABEL_SCHEME", "aggregated")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/models/ner", cfg.Inference.Endpoint)
	assert.Equal(t, "hf_env_token", cfg.Inference.Token)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "aggregated", cfg.Inference.LabelScheme)
}

func TestLoadFromEnv_MissingCredential(t *testing.T) {
	t.Setenv("SPOTLIGHT_INFERENCE_ENDPOINT", "https://example.com/models/ner")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("SPOTLIGHT_INFERENCE_TOKEN", "hf_override")

	cfg, err := Load(writeConfigFile(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "hf_override", cfg.Inference.Token)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
