package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Int64("id", 7).Msg("guardando empresa")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "guardando empresa", line["message"])
	assert.EqualValues(t, 7, line["id"])
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("no se escribe")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí se escribe")
	assert.Contains(t, buf.String(), "sí se escribe")
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruido", Output: &buf})

	l.Debug().Msg("no")
	assert.Zero(t, buf.Len())
	l.Info().Msg("sí")
	assert.NotZero(t, buf.Len())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	zl := l.Component("tui")
	zl.Debug().Msg("navegando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "tui", line["component"])
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.log")
	l, closer, err := logger.NewFile(logger.Config{Env: "production", Level: "info"}, path)
	require.NoError(t, err)

	l.Info().Msg("cliente configurado")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cliente configurado")
}

func TestNewFile_SinRutaDescarta(t *testing.T) {
	l, closer, err := logger.NewFile(logger.Config{Env: "development"}, "")
	require.NoError(t, err)
	l.Info().Msg("nada")
	assert.NoError(t, closer.Close())
}
