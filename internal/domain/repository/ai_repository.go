package repository

import "context"

// TextGenerator превращает промпт в сырой текст ответа модели.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
