package cmdutil

import (
	"fmt"
	"log/slog"
)

// Warnf logs a formatted warning.
func Warnf(log *slog.Logger, format string, a ...any) {
	log.Warn(fmt.Sprintf(format, a...))
}
