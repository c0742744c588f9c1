package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	out string
	err error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.out, s.err
}

type recordingObserver struct {
	durations []time.Duration
	errs      []error
}

func (r *recordingObserver) ObserveUpstream(d time.Duration, err error) {
	r.durations = append(r.durations, d)
	r.errs = append(r.errs, err)
}

func TestInstrumentedGenerator_Observes(t *testing.T) {
	obs := &recordingObserver{}
	g := NewInstrumentedGenerator(stubGenerator{out: "text"}, obs)

	ticks := []time.Time{time.Unix(100, 0), time.Unix(103, 0)}
	g.now = func() time.Time {
		t := ticks[0]
		ticks = ticks[1:]
		return t
	}

	out, err := g.Generate(context.Background(), "p")

	assert.NoError(t, err)
	assert.Equal(t, "text", out)
	assert.Equal(t, []time.Duration{3 * time.Second}, obs.durations)
	assert.Nil(t, obs.errs[0])
}

func TestInstrumentedGenerator_PassesError(t *testing.T) {
	obs := &recordingObserver{}
	boom := errors.New("boom")
	g := NewInstrumentedGenerator(stubGenerator{err: boom}, obs)

	_, err := g.Generate(context.Background(), "p")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, boom, obs.errs[0])
}

func TestNewInstrumentedGenerator_Nil(t *testing.T) {
	assert.Nil(t, NewInstrumentedGenerator(nil, nil))
}
