package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger at the named level ("debug", "info", "warn",
// "error"). If file is empty it writes to stderr, otherwise it appends to
// file, creating its directory if needed. The returned closer must be
// closed when done.
func New(level, file string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level '%s'", level)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create log directory")
		}
		fd, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file '%s'", file)
		}
		w = fd
		closer = fd
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "palette",
		ReportTimestamp: file != "",
	})
	return logger, closer, nil
}
