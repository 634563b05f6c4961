package sqlformat

import (
	"fmt"
	"log/slog"
	"os"
)

// WarningReporter receives non-fatal diagnostics produced while formatting
// (currently just an out-of-range LineWidth getting reset). Format never
// fails because of one of these; callers that care can supply their own
// WarningReporter via Config.Reporter. A missing placeholder parameter is
// not one of these cases: it fails Format outright with
// MissingParameterError rather than going through the reporter.
type WarningReporter interface {
	Warnf(format string, args ...any)
}

// slogReporter is the default WarningReporter: every warning is logged to
// stderr at warn level.
type slogReporter struct {
	logger *slog.Logger
}

func (r *slogReporter) Warnf(format string, args ...any) {
	r.logger.Warn(fmt.Sprintf(format, args...))
}

func defaultReporter() WarningReporter {
	return &slogReporter{
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// discardReporter silently drops every warning. Used by DefaultConfig's
// zero value is never discardReporter — it is always defaultReporter — but
// tests that want quiet output can set Config.Reporter to it explicitly.
type discardReporter struct{}

func (discardReporter) Warnf(string, ...any) {}
