package entity

import (
	"strings"
	"time"

	"github.com/ignatzorin/proposal-backend/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
)

// Значения по умолчанию для незаполненных полей формы.
const (
	DefaultClientName  = "Client"
	DefaultProjectType = "Project"
	NotSpecified       = "Not specified"
)

// ProposalRequest описывает параметры одной генерации. Все поля необязательны.
type ProposalRequest struct {
	ClientName  string           `yaml:"client_name" json:"clientName"`
	ProjectType string           `yaml:"project_type" json:"projectType"`
	Budget      string           `yaml:"budget" json:"budget"`
	Timeline    string           `yaml:"timeline" json:"timeline"`
	Goals       string           `yaml:"goals" json:"goals"`
	Tone        valueobject.Tone `yaml:"tone" json:"tone"`
}

// WithDefaults возвращает копию запроса, где пустые поля заменены значениями по умолчанию.
func (r ProposalRequest) WithDefaults() ProposalRequest {
	tone := valueobject.DefaultTone
	if t := strings.TrimSpace(string(r.Tone)); t != "" {
		tone = valueobject.Tone(t)
	}
	return ProposalRequest{
		ClientName:  orDefault(r.ClientName, DefaultClientName),
		ProjectType: orDefault(r.ProjectType, DefaultProjectType),
		Budget:      orDefault(r.Budget, NotSpecified),
		Timeline:    orDefault(r.Timeline, NotSpecified),
		Goals:       orDefault(r.Goals, NotSpecified),
		Tone:        tone,
	}
}

// Validate проверяет только тон: остальные поля свободный текст.
func (r ProposalRequest) Validate() error {
	if strings.TrimSpace(string(r.Tone)) == "" {
		return nil
	}
	_, err := valueobject.ParseTone(string(r.Tone))
	return err
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// SavedProposal хранится только на стороне клиента. JSON-поля совпадают с форматом браузерной версии.
type SavedProposal struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clientName"`
	ProjectType string    `json:"projectType"`
	CreatedAt   time.Time `json:"createdAt"`
	Content     string    `json:"content"`
}

// NewSavedProposal создаёт запись с id на основе времени. Пустой текст сохранять нельзя.
func NewSavedProposal(req ProposalRequest, content string, now time.Time) (*SavedProposal, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ErrEmptyContent
	}
	now = now.UTC()
	return &SavedProposal{
		ID:          now.UnixMilli(),
		ClientName:  req.ClientName,
		ProjectType: req.ProjectType,
		CreatedAt:   now,
		Content:     content,
	}, nil
}
