package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/storage"
)

// SavedProposalsKey ключ, под которым лежит JSON массив сохранённых предложений.
const SavedProposalsKey = "savedProposals"

// SavedProposalRepository хранит список предложений в KV хранилище.
// Каждая запись это read-modify-write всего массива.
type SavedProposalRepository struct {
	mu sync.Mutex
	kv storage.KV
}

func NewSavedProposalRepository(kv storage.KV) *SavedProposalRepository {
	return &SavedProposalRepository{kv: kv}
}

// Save добавляет запись в начало списка и возвращает новый размер списка.
func (r *SavedProposalRepository) Save(ctx context.Context, p *entity.SavedProposal) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	list = append([]entity.SavedProposal{*p}, list...)

	raw, err := json.Marshal(list)
	if err != nil {
		return 0, fmt.Errorf("saved proposals: не удалось сериализовать список: %w", err)
	}
	if err := r.kv.Set(ctx, SavedProposalsKey, string(raw)); err != nil {
		return 0, err
	}
	return len(list), nil
}

// List возвращает все записи, новые первыми.
func (r *SavedProposalRepository) List(ctx context.Context) ([]entity.SavedProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Count количество сохранённых записей.
func (r *SavedProposalRepository) Count(ctx context.Context) (int, error) {
	list, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (r *SavedProposalRepository) load(ctx context.Context) ([]entity.SavedProposal, error) {
	raw, ok, err := r.kv.Get(ctx, SavedProposalsKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []entity.SavedProposal{}, nil
	}

	var list []entity.SavedProposal
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("saved proposals: повреждённые данные под ключом %s: %w", SavedProposalsKey, err)
	}
	if list == nil {
		list = []entity.SavedProposal{}
	}
	return list, nil
}
