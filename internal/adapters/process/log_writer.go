package process

import (
	"bytes"
	"strings"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
)

// logWriter forwards complete lines written to it to the logger as warnings.
// It is handed to exec as the child's stderr, so writes arrive from the exec
// copy goroutine only.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func newLogWriter(logger ports.Logger, prefix string) *logWriter {
	return &logWriter{logger: logger, prefix: prefix}
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing unterminated line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Warn(w.prefix + strings.ToValidUTF8(msg, "�"))
}
