package saved

import (
	"context"
	"time"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/domain/repository"
	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
)

type SaveProposalUseCase struct {
	repo repository.SavedProposalRepository
	now  func() time.Time
}

func NewSaveProposalUseCase(repo repository.SavedProposalRepository) *SaveProposalUseCase {
	return &SaveProposalUseCase{repo: repo, now: time.Now}
}

// WithClock подменяет источник времени.
func (uc *SaveProposalUseCase) WithClock(now func() time.Time) *SaveProposalUseCase {
	uc.now = now
	return uc
}

// Execute сохраняет текст и возвращает запись вместе с новым размером списка.
func (uc *SaveProposalUseCase) Execute(ctx context.Context, req entity.ProposalRequest, content string) (*entity.SavedProposal, int, error) {
	p, err := entity.NewSavedProposal(req, content, uc.now())
	if err != nil {
		return nil, 0, err
	}

	count, err := uc.repo.Save(ctx, p)
	if err != nil {
		return nil, 0, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось сохранить предложение")
	}
	return p, count, nil
}

type ListSavedProposalsUseCase struct {
	repo repository.SavedProposalRepository
}

func NewListSavedProposalsUseCase(repo repository.SavedProposalRepository) *ListSavedProposalsUseCase {
	return &ListSavedProposalsUseCase{repo: repo}
}

func (uc *ListSavedProposalsUseCase) Execute(ctx context.Context) ([]entity.SavedProposal, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось прочитать сохранённые предложения")
	}
	return list, nil
}
