package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	Log         *logrus.Logger
	defaultOnce sync.Once
)

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// Get возвращает логгер, инициализируя его по умолчанию, если Init ещё не вызывали.
// Нужен пакетам, которые могут работать и без main (тесты, CLI).
func Get() *logrus.Logger {
	defaultOnce.Do(func() {
		if Log == nil {
			Init("info")
		}
	})
	return Log
}
