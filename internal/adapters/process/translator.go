package process

import (
	"errors"
	"io"
	"strings"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
)

// Translator maps raw output lines to progress events.
type Translator struct {
	marker string
}

// NewTranslator creates a translator that treats any line containing marker
// as the completion signal. An empty marker selects domain.DefaultCompletionMarker.
func NewTranslator(marker string) Translator {
	if marker == "" {
		marker = domain.DefaultCompletionMarker
	}
	return Translator{marker: marker}
}

// Marker returns the completion marker.
func (t Translator) Marker() string {
	return t.marker
}

// Translate converts the result of one LineSource.Next call into events.
// The last returned event is terminal when the consumption loop must stop.
// A completion line is still surfaced as a running event before Done.
func (t Translator) Translate(line string, err error) []domain.ProgressEvent {
	switch {
	case errors.Is(err, io.EOF):
		return []domain.ProgressEvent{domain.Failed(domain.ErrUnexpectedEndOfStream.Error())}
	case err != nil:
		return []domain.ProgressEvent{domain.Failed(domain.ErrReadFailed.Error())}
	case strings.Contains(line, t.marker):
		return []domain.ProgressEvent{domain.Running(line), domain.Done()}
	default:
		return []domain.ProgressEvent{domain.Running(line)}
	}
}
