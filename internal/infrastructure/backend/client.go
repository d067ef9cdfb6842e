// Package backend implementa los puertos EmpresaGateway, SucursalGateway e ImagenGateway
// contra el API HTTP del backend. Usa net/http de la stdlib como los demás adaptadores salientes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/empresas-admin/internal/domain"
)

// DefaultBaseURL backend local por defecto.
const DefaultBaseURL = "http://localhost:8080"

// Límite de lectura de respuestas del backend.
const maxResponseBytes = 4 << 20

// HTTPError respuesta no exitosa (no 2xx) del backend.
type HTTPError struct {
	Op         string // operación que falló, p. ej. "upload"
	StatusCode int
	Status     string // status text de la respuesta
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend: %s: %d %s", e.Op, e.StatusCode, e.Status)
}

// Unwrap permite errors.Is(err, domain.ErrHTTP).
func (e *HTTPError) Unwrap() error { return domain.ErrHTTP }

// Client cliente del backend. Sin reintentos y sin timeout propio: cada llamada es un único
// request/response y se corta solo por el contexto.
type Client struct {
	baseURL    string
	token      string
	preset     string
	httpClient *http.Client
}

// Option configura el Client.
type Option func(*Client)

// WithToken envía "Authorization: Bearer <token>" en cada request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithUploadPreset define el valor del campo upload_presets.
func WithUploadPreset(preset string) Option {
	return func(c *Client) { c.preset = preset }
}

// WithHTTPClient reemplaza el *http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient construye el cliente. baseURL vacío usa DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		preset:     DefaultUploadPreset,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do ejecuta el request y decodifica el cuerpo JSON en out (si no es nil).
// Una respuesta no 2xx devuelve *HTTPError sin interpretar el cuerpo.
func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return fmt.Errorf("backend: %s: cancelado: %w", op, ctxErr)
		}
		return fmt.Errorf("backend: %s: llamada HTTP fallida: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &HTTPError{Op: op, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("backend: %s: leer respuesta: %w", op, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: %s: deserializar respuesta: %w", op, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path, op string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: %s: serializar request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, op, out)
}
