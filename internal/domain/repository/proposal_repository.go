package repository

import (
	"context"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
)

// SavedProposalRepository список сохранённых предложений, новые первыми.
type SavedProposalRepository interface {
	Save(ctx context.Context, p *entity.SavedProposal) (int, error)
	List(ctx context.Context) ([]entity.SavedProposal, error)
	Count(ctx context.Context) (int, error)
}
