package valueobject

import (
	"strings"

	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
)

// Tone задаёт стиль текста предложения.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneConcise      Tone = "concise"
	TonePersuasive   Tone = "persuasive"
)

// DefaultTone подставляется, когда тон не указан.
const DefaultTone = ToneProfessional

func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneConcise, TonePersuasive:
		return true
	}
	return false
}

func (t Tone) String() string {
	return string(t)
}

// ParseTone принимает значение без учёта регистра, пустая строка даёт тон по умолчанию.
func ParseTone(raw string) (Tone, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultTone, nil
	}
	t := Tone(raw)
	if !t.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "tone must be one of: professional, concise, persuasive")
	}
	return t, nil
}
