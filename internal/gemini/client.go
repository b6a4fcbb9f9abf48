package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Фиксированная политика генерации
const (
	// Temperature для всех запросов
	Temperature = 0.7
	// MaxOutputTokens лимит длины ответа модели
	MaxOutputTokens = 512
	// DefaultTimeout таймаут исходящего запроса
	DefaultTimeout = 30 * time.Second
	// DefaultBaseURL адрес generateContent API
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1"
	// DefaultModel модель по умолчанию
	DefaultModel = "gemini-2.5-flash"
)

// Client представляет HTTP клиент для generateContent API
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// Option настраивает Client
type Option func(*Client)

// WithBaseURL переопределяет адрес API (используется в тестах)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithModel переопределяет имя модели
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTimeout переопределяет таймаут исходящего запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient создает новый API клиент.
// apiKey обязателен и передается провайдеру как query-параметр key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GenerateContent выполняет один single-turn запрос к модели и возвращает
// декодированный ответ без нормализации. Запрос не повторяется: одна
// атомарная попытка на вызов.
//
// Ошибки типизированы:
//   - *TransportError - сетевой сбой или таймаут
//   - *ProviderError  - non-2xx статус с телом ответа
//   - *InternalError  - сбой сериализации или разбора
func (c *Client) GenerateContent(ctx context.Context, prompt string) (*GenerateResponse, error) {
	payload := GenerateRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: prompt}},
			},
		},
		GenerationConfig: GenerationConfig{
			Temperature:     Temperature,
			MaxOutputTokens: MaxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("failed to marshal request body: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result GenerateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &InternalError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &result, nil
}
