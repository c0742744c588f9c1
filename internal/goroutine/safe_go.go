package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/proposal-backend/internal/logger"
)

// Logger интерфейс для логирования ошибок
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler обрабатывает panic в горутинах
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler создает новый обработчик. nil означает общий logrus логгер.
func NewRecoveryHandler(l Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: l}
}

func (rh *RecoveryHandler) log() Logger {
	if rh.logger != nil {
		return rh.logger
	}
	return logger.Get()
}

// GoWithContext запускает fn в горутине. Panic логируется, процесс продолжает работу.
// Возвращённый канал закрывается, когда fn завершилась.
func (rh *RecoveryHandler) GoWithContext(ctx context.Context, fn func(context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				rh.log().Errorf("goroutine: panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn(ctx)
	}()
	return done
}

// GoWithContext запускает безопасную горутину с общим логгером.
func GoWithContext(ctx context.Context, fn func(context.Context)) <-chan struct{} {
	return NewRecoveryHandler(nil).GoWithContext(ctx, fn)
}
