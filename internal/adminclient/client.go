// Package adminclient implementa el cliente Go del panel administrativo:
// acceso al API REST, sesión persistente y los controladores de estado que
// usan las pantallas de categorías, productos y usuarios.
package adminclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bm16036/TestQRMenuDigital/pkg/config"
)

// APIError error devuelto por el API, con el código HTTP y el cuerpo decodificado.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound indica si err es un 404 del API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation indica si err es un 400 del API.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

// IsUnauthorized indica si err es un 401 del API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client cliente HTTP del API. El token de sesión se inyecta como Bearer en
// cada petición; SetToken("") lo quita.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient construye el cliente. baseURL vacío resuelve la base por la
// precedencia estándar (override > env API_BASE_URL > default).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: config.ResolveAPIBaseURL(baseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken fija el token de sesión para las siguientes peticiones.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token devuelve el token de sesión actual.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL devuelve la base resuelta del API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do ejecuta una petición JSON. body nil omite el cuerpo; out nil descarta la
// respuesta. Un status fuera de 2xx se devuelve como *APIError.
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return nil
}

// UnmarshalJSON decodifica el cuerpo de error del API ({code, message}).
func (e *APIError) UnmarshalJSON(data []byte) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Mensaje string `json:"mensaje"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	e.Code = body.Code
	e.Message = body.Message
	if e.Message == "" {
		e.Message = body.Mensaje
	}
	return nil
}
