// ============================================================================
// HCE API Client
// ============================================================================
// Cliente HTTP autorizado del backend HCE. Toda petición lleva el token de la
// sesión como Bearer; las respuestas se clasifican en éxito, sesión expirada
// (401 → logout) o error de la solicitud.
// ============================================================================

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourorg/hceweb/internal/debug"
	"github.com/yourorg/hceweb/internal/session"
)

// Client es el cliente autorizado del backend HCE
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	tokenPath  string
	mePath     string
}

// Option configura un Client
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client interno
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout fija un timeout total por petición (incluye leer el cuerpo).
// Cero, el valor por defecto, significa sin timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithAuthPaths cambia las rutas de login (/auth/token) y perfil (/auth/me)
func WithAuthPaths(tokenPath, mePath string) Option {
	return func(c *Client) {
		if tokenPath != "" {
			c.tokenPath = tokenPath
		}
		if mePath != "" {
			c.mePath = mePath
		}
	}
}

// NewClient crea un cliente para baseURL que lee el token de sess
func NewClient(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
		tokenPath:  "/auth/token",
		mePath:     "/auth/me",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session retorna la sesión asociada al cliente
func (c *Client) Session() *session.Session {
	return c.session
}

// RequestOptions son las opciones que el llamador pasa a Request. Method
// vacío equivale a GET.
type RequestOptions struct {
	Method  string
	Headers http.Header
	Body    io.Reader
}

// ResolveURL convierte una ruta relativa en URL absoluta sobre baseURL
func (c *Client) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// authHeaders arma los headers finales. Contrato: los headers del llamador se
// aplican primero y Authorization/Content-Type forzados SIEMPRE los pisan.
func authHeaders(caller http.Header, token string, contentType bool) http.Header {
	headers := make(http.Header)
	for key, values := range caller {
		headers[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	headers.Set("Authorization", "Bearer "+token)
	if contentType {
		headers.Set("Content-Type", "application/json")
	}
	if headers.Get("X-Request-ID") == "" {
		headers.Set("X-Request-ID", uuid.NewString())
	}
	return headers
}

func (c *Client) do(ctx context.Context, method, url string, headers http.Header, body io.Reader) (*http.Response, error) {
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, c.ResolveURL(url), body)
	if err != nil {
		return nil, fmt.Errorf("creando request %s %s: %w", method, url, err)
	}
	req.Header = headers

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		debug.LogRequest(method, req.URL.String(), 0, elapsed, headers.Get("X-Request-ID"))
		return nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	debug.LogRequest(method, req.URL.String(), resp.StatusCode, elapsed, headers.Get("X-Request-ID"))
	return resp, nil
}

// Send hace una petición con el Bearer de la sesión SIN clasificar la
// respuesta: un 401 no cierra sesión. El llamador debe cerrar el cuerpo.
func (c *Client) Send(ctx context.Context, method, url string, headers http.Header) (*http.Response, error) {
	token, _ := c.session.Token()
	return c.do(ctx, method, url, authHeaders(headers, token, false), nil)
}

// Request hace una petición autorizada y clasifica la respuesta:
//   - 401: cierra la sesión (borra slots y navega a login) y retorna *SessionExpiredError
//   - otro no-ok: retorna *RequestFailedError con el detail del cuerpo
//   - ok: retorna la respuesta sin leer; el llamador debe cerrar el cuerpo
func (c *Client) Request(ctx context.Context, url string, opts *RequestOptions) (*http.Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	token, _ := c.session.Token()

	resp, err := c.do(ctx, opts.Method, url, authHeaders(opts.Headers, token, true), opts.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		log.Printf("🔒 [API] 401 en %s, cerrando sesión", url)
		c.session.Logout()
		return nil, &SessionExpiredError{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, readErr := io.ReadAll(resp.Body)
		message := UnknownErrorMessage
		if readErr == nil {
			message = detailMessage(body)
		}
		return nil, &RequestFailedError{Status: resp.StatusCode, Message: message}
	}

	return resp, nil
}

// GetJSON hace GET url por Request y decodifica la respuesta en out
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.Request(ctx, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificando respuesta de %s: %w", url, err)
	}
	return nil
}

// PostJSON envía in como JSON por Request y, si out no es nil, decodifica la respuesta
func (c *Client) PostJSON(ctx context.Context, url string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("serializando cuerpo para %s: %w", url, err)
	}

	resp, err := c.Request(ctx, url, &RequestOptions{Method: http.MethodPost, Body: bytes.NewReader(payload)})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificando respuesta de %s: %w", url, err)
	}
	return nil
}
