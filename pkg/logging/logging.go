package logging

import (
	"log/slog"
	"os"
	"time"
)

// Init installs the process-wide text logger on stderr.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key != slog.TimeKey {
				return attr
			}
			attr.Value = slog.StringValue(attr.Value.Time().Format(time.DateTime))
			return attr
		},
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}
