package goroutine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *capturingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutine did not finish")
	}
}

func TestGoWithContext_RecoversPanic(t *testing.T) {
	l := &capturingLogger{}

	wait(t, NewRecoveryHandler(l).GoWithContext(context.Background(), func(context.Context) {
		panic("boom")
	}))

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.lines, 1)
	assert.Contains(t, l.lines[0], "goroutine: panic: boom")
}

func TestGoWithContext_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got error
	wait(t, GoWithContext(ctx, func(ctx context.Context) {
		<-ctx.Done()
		got = ctx.Err()
	}))

	assert.ErrorIs(t, got, context.Canceled)
}
