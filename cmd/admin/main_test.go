package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-admin/pkg/jwt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	e := &env{}
	t.Cleanup(e.close)
	cmd := newRootCmd(e)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("JWT_ISSUER", "test")

	out, err := execute(t, "token", "--subject", "ana", "--role", "operador")
	require.NoError(t, err)

	sub, role, err := jwt.Parse("secreto", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ana", sub)
	assert.Equal(t, "operador", role)
}

func TestTokenCmd_SinSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := execute(t, "token")
	assert.Error(t, err)
}

func TestReporteCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/empresas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Acme","razonSocial":"Acme SA","cuil":123}]`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "empresas.pdf")
	out, err := execute(t, "reporte", "--backend", srv.URL, "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 empresas")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestImagenDeleteCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "publicId=buenSabor/abc.png&id=9", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	defer srv.Close()

	out, err := execute(t, "imagen", "delete", "buenSabor/abc.png", "9", "--backend", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"result":"ok"`)
}

func TestImagenUploadCmd_ArchivoInexistente(t *testing.T) {
	_, err := execute(t, "imagen", "upload", filepath.Join(t.TempDir(), "no-existe.png"))
	assert.Error(t, err)
}

func TestLogFileSeCierraAunqueElComandoFalle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("JWT_SECRET", "")

	e := &env{}
	cmd := newRootCmd(e)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	require.Error(t, cmd.Execute())
	require.NotNil(t, e.logCloser)

	e.close()
	assert.Nil(t, e.logCloser)
	e.close()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cliente configurado")
}
