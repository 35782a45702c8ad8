package shared

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger builds a stderr logger at the named level
func SetupLogger(level string) (*log.Logger, error) {
	return NewLogger(os.Stderr, level)
}

// NewLogger builds a logger writing to w at the named level. An empty level
// means info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return nil, err
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}
