// Package logx owns the optimizer's diagnostic log: a human-readable
// trace of every algorithmic step, appended to a file alongside the
// process. The format is not a stable interface; failures to open or
// write the file are never fatal — logging degrades to a no-op.
package logx

import (
	"io"
	"os"
	"sync"

	"golang.org/x/exp/slog"
)

// Path is the fixed location the diagnostic log is appended to.
const Path = "ternopt.log"

var (
	once   sync.Once
	logger *slog.Logger
)

// L returns the process-wide diagnostic logger. The first call opens
// Path in append mode; if that fails the returned logger discards
// everything.
func L() *slog.Logger {
	once.Do(func() {
		var w io.Writer = io.Discard
		if f, err := os.OpenFile(Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
		logger = slog.New(slog.NewTextHandler(w, nil))
	})

	return logger
}
