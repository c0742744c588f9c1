package ai

import (
	"context"
	"time"

	"github.com/ignatzorin/proposal-backend/internal/domain/repository"
)

// Observer получает длительность и результат каждого вызова провайдера.
type Observer interface {
	ObserveUpstream(d time.Duration, err error)
}

// InstrumentedGenerator оборачивает TextGenerator замером времени вызова.
type InstrumentedGenerator struct {
	next     repository.TextGenerator
	observer Observer
	now      func() time.Time
}

// NewInstrumentedGenerator возвращает nil, если оборачивать нечего.
func NewInstrumentedGenerator(next repository.TextGenerator, observer Observer) *InstrumentedGenerator {
	if next == nil {
		return nil
	}
	return &InstrumentedGenerator{next: next, observer: observer, now: time.Now}
}

func (g *InstrumentedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := g.now()
	out, err := g.next.Generate(ctx, prompt)
	if g.observer != nil {
		g.observer.ObserveUpstream(g.now().Sub(start), err)
	}
	return out, err
}
