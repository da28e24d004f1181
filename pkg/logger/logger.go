package logger

import (
	"go.uber.org/zap"
)

// Global sugared logger, initialized once in main.
var L *zap.SugaredLogger

func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		// Fall back to a no-op logger rather than crashing the process.
		l = zap.NewNop()
	}
	L = l.Sugar()
}

func init() {
	// Packages may log before main calls Init (tests, early failures).
	if L == nil {
		L = zap.NewNop().Sugar()
	}
}
