// Package client реализует клиентскую сторону запроса на генерацию предложения.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout ограничивает ожидание ответа сервера.
const DefaultTimeout = 120 * time.Second

const errorPrefix = "Failed to generate proposal: "

// ErrNoResult возвращается, если в ответе нет ни result, ни его устаревших псевдонимов.
var ErrNoResult = errors.New("response has no result field")

// GenerateError ошибка генерации в том виде, в котором её видит пользователь.
type GenerateError struct {
	// Reason текст сервера или причина сбоя без префикса.
	Reason string
	Cause  error
}

func (e *GenerateError) Error() string {
	return errorPrefix + e.Reason
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// Client ходит в POST /api/generate.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиент. timeout <= 0 заменяется на DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// generateResponse принимает result и устаревшие поля raw и resultText.
type generateResponse struct {
	Result     json.RawMessage `json:"result"`
	Raw        json.RawMessage `json:"raw"`
	ResultText json.RawMessage `json:"resultText"`
	Error      string          `json:"error"`
}

// Generate отправляет промпт на сервер и возвращает текст предложения.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fail("", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fail("", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fail("", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fail("", err)
	}

	var decoded generateResponse
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode >= 400 {
		statusErr := fmt.Errorf("request failed with status code %d", resp.StatusCode)
		if decodeErr == nil {
			return "", fail(decoded.Error, statusErr)
		}
		return "", fail("", statusErr)
	}
	if decodeErr != nil {
		return "", fail("", fmt.Errorf("decode response: %w", decodeErr))
	}

	text, ok := decoded.text()
	if !ok {
		return "", fail("", ErrNoResult)
	}
	return text, nil
}

func (r generateResponse) text() (string, bool) {
	for _, field := range []json.RawMessage{r.Result, r.Raw, r.ResultText} {
		if text, ok := rawText(field); ok {
			return text, true
		}
	}
	return "", false
}

// rawText отдаёт строку как есть, прочие JSON значения в их текстовом виде.
// Отсутствующее поле и null считаются пустыми.
func rawText(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed), true
	}
	return compact.String(), true
}

func fail(serverMessage string, cause error) *GenerateError {
	reason := serverMessage
	if reason == "" && cause != nil {
		reason = cause.Error()
	}
	if reason == "" {
		reason = "Unknown error"
	}
	return &GenerateError{Reason: reason, Cause: cause}
}
