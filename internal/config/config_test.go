package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `api:
  environment: test
  base_url: localhost:8080
  public_base_url: http://localhost:4000
  port: "8080"
  jwt_signing_key: secret
  hub_login_url: https://hub.example.test/login
  allowed_cors_domains: "http://localhost:4000"
gin:
  mode: test
postgres:
  host: localhost
  port: "5432"
  user: viatgers
  password: viatgers
  db: viatgers
mossos:
  codi_establiment: "0000000123"
  nom_establiment: Cal Martí
  municipi: Figueres
  export_dir: ./exports
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "http://localhost:4000", conf.API.PublicBaseURL)
	assert.Equal(t, "https://hub.example.test/login", conf.API.HubLoginURL)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "viatgers", conf.Postgres.DB)
	assert.Equal(t, "0000000123", conf.Mossos.CodiEstabliment)
	assert.Equal(t, "./exports", conf.Mossos.ExportDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
