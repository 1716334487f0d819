package renderer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tracelane/pathtracer/pkg/core"
)

// slogLogger adapts a *slog.Logger to core.Logger, giving the renderer's
// progress lines structured key/value fields instead of raw Printf soup.
type slogLogger struct {
	l *slog.Logger
}

// NewDefaultLogger returns a core.Logger backed by a new *slog.Logger with
// a text handler writing to stderr.
func NewDefaultLogger() core.Logger {
	return &slogLogger{l: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}

// Printf implements core.Logger by formatting into a single "msg" field.
// The renderer only ever calls this with human-readable progress
// summaries, so one field is enough; callers wanting structured fields
// can type-assert the core.Logger to an interface with Underlying() and
// use the *slog.Logger it returns.
func (s *slogLogger) Printf(format string, args ...any) {
	s.l.Info("render", "msg", fmt.Sprintf(format, args...))
}

// Underlying returns the wrapped *slog.Logger for callers that want to
// attach structured fields directly instead of going through Printf.
func (s *slogLogger) Underlying() *slog.Logger {
	return s.l
}
