package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	assert.Equal(t, "buenSabor", cfg.Backend.UploadPreset)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080/imagenes/files", cfg.Storage.PublicBaseURL)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://api.interna:9000")
	t.Setenv("UPLOAD_PRESET", "pruebas")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.interna:9000", cfg.Backend.BaseURL)
	assert.Equal(t, "pruebas", cfg.Backend.UploadPreset)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", 70000)
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "empresas", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/empresas?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
