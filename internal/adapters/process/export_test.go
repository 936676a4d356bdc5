package process

import (
	"io"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
)

var ResolveExecutable = resolveExecutable

func NewLogWriter(logger ports.Logger, prefix string) io.WriteCloser {
	return newLogWriter(logger, prefix)
}
