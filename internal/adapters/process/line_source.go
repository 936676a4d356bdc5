package process

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
)

// LineSource yields the lines of a child process output stream.
// It is bound to one stream and cannot be restarted.
type LineSource struct {
	r   *bufio.Reader
	err error
}

// NewLineSource wraps r with buffered line splitting.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReader(r)}
}

// Next blocks until a complete line is available and returns it without its
// line terminator. A final line that is not newline terminated is still
// returned. Once the stream is exhausted Next returns io.EOF; any other read
// error is returned as is. A line that is not valid UTF-8 is not returned and
// fails with domain.ErrInvalidUTF8. After the first error every call returns
// it again.
func (s *LineSource) Next() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		s.err = err
		if line == "" {
			return "", err
		}
	}

	line = normalizeLine(line)
	if !utf8.ValidString(line) {
		s.err = domain.ErrInvalidUTF8
		return "", s.err
	}
	return line, nil
}

func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
