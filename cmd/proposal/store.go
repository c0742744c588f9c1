package main

import (
	"context"
	"fmt"

	"github.com/ignatzorin/proposal-backend/internal/config"
	"github.com/ignatzorin/proposal-backend/internal/repository"
	"github.com/ignatzorin/proposal-backend/internal/storage"
)

// openRepository выбирает Redis, если задан REDIS_ADDR, иначе локальный файл.
func openRepository(ctx context.Context, cfg *config.ClientConfig) (*repository.SavedProposalRepository, func(), error) {
	if cfg.RedisAddr != "" {
		kv, err := storage.NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis storage: %w", err)
		}
		return repository.NewSavedProposalRepository(kv), func() { _ = kv.Close() }, nil
	}

	kv, err := storage.NewFileKV(cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open file storage: %w", err)
	}
	return repository.NewSavedProposalRepository(kv), func() {}, nil
}
