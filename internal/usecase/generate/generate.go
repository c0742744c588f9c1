package generate

import (
	"context"

	"github.com/ignatzorin/proposal-backend/internal/domain/repository"
	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
)

// GenerateProposalUseCase пересылает готовый промпт провайдеру и возвращает сырой текст.
type GenerateProposalUseCase struct {
	generator repository.TextGenerator
}

// NewGenerateProposalUseCase принимает nil, если провайдер не включён в конфигурации.
func NewGenerateProposalUseCase(generator repository.TextGenerator) *GenerateProposalUseCase {
	return &GenerateProposalUseCase{generator: generator}
}

// Enabled сообщает, настроен ли провайдер.
func (uc *GenerateProposalUseCase) Enabled() bool {
	return uc.generator != nil
}

func (uc *GenerateProposalUseCase) Execute(ctx context.Context, prompt string) (string, error) {
	if uc.generator == nil {
		return "", apperror.ErrNoProvider
	}

	result, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeUpstreamFailed, apperror.MsgGenerateFailed)
	}
	return result, nil
}
