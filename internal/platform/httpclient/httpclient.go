package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBody limita lo que leemos de upstream (errores y payloads).
	maxBody = 1 << 20
	// maxErrorSnippet es lo que guardamos del body en HTTPError para logs.
	maxErrorSnippet = 300
)

var (
	ErrNilClient = errors.New("httpclient: nil client")
	// ErrDecode indica que upstream respondió 2xx pero con un JSON inválido.
	ErrDecode = errors.New("httpclient: invalid json response")
)

// Client envuelve *http.Client con BaseURL y headers comunes para los adapters.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Headers map[string]string
}

// New crea un Client. timeout <= 0 deja el límite al context del request.
func New(timeout time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		Headers: map[string]string{},
	}
}

// NewWithBaseURL crea un Client con BaseURL validada.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// WithBearer fija el header Authorization para todos los requests.
func (c *Client) WithBearer(token string) *Client {
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	c.Headers["Authorization"] = "Bearer " + strings.TrimSpace(token)
	return c
}

// HTTPError representa una respuesta no-2xx. Body va truncado.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// PostJSON es un atajo de DoJSON con método POST.
func (c *Client) PostJSON(ctx context.Context, pathOrURL string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, pathOrURL, nil, in, out)
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL
// - in: body (nil => sin body)
// - out: destino del decode (nil => se ignora el body)
// Devuelve *HTTPError si el status no es 2xx y ErrDecode si el JSON no parsea.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return ErrNilClient
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, hs := range []map[string]string{c.Headers, headers} {
		for k, v := range hs {
			if strings.TrimSpace(k) == "" {
				continue
			}
			req.Header.Set(k, v)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       snippet(raw),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v (body=%s)", ErrDecode, err, snippet(raw))
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if c.BaseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) <= maxErrorSnippet {
		return s
	}
	// cortar en borde de rune para no dejar UTF-8 inválido en los logs
	cut := maxErrorSnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
