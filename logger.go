package vaporgrid

import "log/slog"

var logger = slog.Default().With("pkg", "vaporgrid")

// SetLogger replaces the logger vaporgrid reports to. Passing nil restores slog's default logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l.With("pkg", "vaporgrid")
}
