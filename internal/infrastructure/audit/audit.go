// Package audit writes the append-only operation trail. Every operation the
// bank core exposes is recorded as one JSON line on an explicit writer
// handle; recording is pure observation and never influences the operation's
// outcome.
package audit

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/iho/minibank/internal/usecase"
)

// Logger is an AuditSink writing JSON lines to a caller-owned writer.
type Logger struct {
	log zerolog.Logger
}

// New builds a sink on top of w. The caller opens and closes w.
func New(w io.Writer) *Logger {
	return &Logger{
		log: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Nop returns a sink that discards every entry.
func Nop() *Logger {
	return &Logger{log: zerolog.Nop()}
}

// Record writes one audit entry. Write failures are swallowed: the sink must
// not alter the outcome of the operation it observes.
func (l *Logger) Record(entry usecase.AuditEntry) {
	l.log.Log().
		Str("audit_id", entry.ID).
		Time("at", entry.Timestamp).
		Str("operation", entry.Operation).
		Interface("args", entry.Args).
		Str("result", entry.Result).
		Msg("operation")
}

// OpenFile opens the audit log file at path for appending, creating it when
// missing.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
