package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"WigglyBoard/internal/config"
)

// newLogger builds the logger shared by every command. Output goes to w,
// normally the command's stderr, so PNG frames or other stdout output stay
// clean. Entries below level are dropped; --verbose lowers it to debug so
// engine events (captures, echoes, erases) become visible.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports how long a batch step took. The replay command uses it
// to time frame rendering; it is meant for one goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts timing now.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the formatted message at info level followed by the elapsed
// time in milliseconds, e.g. "Wrote 90 frames to out (412ms)".
func (p *progress) done(format string, args ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(fmt.Sprintf(format, args...), "elapsed", elapsed)
}

// ctxKey keys the values the root command stores on the context.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withLogger attaches l for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set up by the root command, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withConfig attaches the loaded, sanitized settings for configFromContext.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the settings loaded by the root command, or
// the defaults when there are none.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
