package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
)

// Лимиты полей запроса. Промпт уходит в путь URL, поэтому слишком длинный текст провайдер не примет.
const (
	MaxClientNameLength  = 200
	MaxProjectTypeLength = 200
	MaxBudgetLength      = 100
	MaxTimelineLength    = 100
	MaxGoalsLength       = 4000
)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateProposalRequest проверяет длины полей и тон. Пустые поля допустимы.
func ValidateProposalRequest(req entity.ProposalRequest) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"client name", req.ClientName, MaxClientNameLength},
		{"project type", req.ProjectType, MaxProjectTypeLength},
		{"budget", req.Budget, MaxBudgetLength},
		{"timeline", req.Timeline, MaxTimelineLength},
		{"goals", req.Goals, MaxGoalsLength},
	}
	for _, f := range fields {
		if err := ValidateLength(f.name, f.value, 0, f.max); err != nil {
			return apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}
	return req.Validate()
}
