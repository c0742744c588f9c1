package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL адрес текстового API Pollinations.
const DefaultBaseURL = "https://text.pollinations.ai"

// maxErrorBody сколько байт тела ошибки апстрима попадает в текст ошибки.
const maxErrorBody = 512

// Client ходит в Pollinations: промпт целиком уходит в путь GET запроса, ответ читается как текст.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт экземпляр клиента.
// Таймаут у http.Client не задаётся: запрос живёт столько, сколько контекст вызывающего.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// WithHTTPClient подменяет http клиент (тесты, прокси).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Generate отправляет промпт и возвращает сырой текст ответа.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := c.baseURL + "/" + encodeURIComponent(prompt)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("ai: не удалось собрать запрос: %w", err)
	}
	req.Header.Set("Accept", "text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: запрос к провайдеру не выполнен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("ai: код ответа %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai: не удалось прочитать ответ: %w", err)
	}

	return string(body), nil
}

// encodeURIComponent экранирует всё, кроме A-Z a-z 0-9 и - _ . ! ~ * ' ( ).
// В пути не должно остаться сырых ":&=$+": "+" часть серверов читает как пробел.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
