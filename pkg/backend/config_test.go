package backend

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromReader(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(`
base_url: http://engine:8000/
http_timeout: 30s
`))
	require.NoError(t, err)
	assert.Equal(t, "http://engine:8000/", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigFromReader_EnvExpansion(t *testing.T) {
	t.Setenv("ENGINE_URL", "https://engine.example.com")

	cfg, err := LoadConfigFromReader(strings.NewReader("base_url: ${ENGINE_URL}\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://engine.example.com", cfg.BaseURL)
	assert.Zero(t, cfg.HTTPTimeout)
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"missing base_url", "http_timeout: 5s\n", "base_url is required"},
		{"non-http scheme", "base_url: ftp://engine\n", "must be http(s)"},
		{"bad timeout", "base_url: http://engine\nhttp_timeout: soon\n", "invalid http_timeout"},
		{"negative timeout", "base_url: http://engine\nhttp_timeout: -3s\n", "must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestConfigBuildClient(t *testing.T) {
	cfg := &Config{BaseURL: "http://engine:8000/", HTTPTimeout: 5 * time.Second}
	client := cfg.BuildClient()
	require.NotNil(t, client)
	assert.Equal(t, "http://engine:8000", client.baseURL, "trailing slash trimmed")
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}
