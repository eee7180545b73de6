package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_AllFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"tender": "tender.json",
		"products": "products.json",
		"pricing": "pricing.json",
		"top_n": 5,
		"verbose": true,
		"database_url": "postgres://localhost/rfp",
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "tender.json", cfg.Tender)
	assert.Equal(t, "products.json", cfg.Products)
	assert.Equal(t, "pricing.json", cfg.Pricing)
	assert.Equal(t, 5, cfg.TopN)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "postgres://localhost/rfp", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeTopN(t *testing.T) {
	cfg := &Config{TopN: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}
