package rcf

import (
	"io"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the JSON structured logger every Manager writes diagnostics
// through: construction of transcendentals/infinitesimals, refinement
// stalls, and cancellations.
type Logger = logiface.Logger[*stumpy.Event]

// logBuilder is the per-line builder type returned by Logger.Debug,
// Logger.Warning, etc.
type logBuilder = logiface.Builder[*stumpy.Event]

func newDiscardLogger() *Logger {
	return stumpy.L.New(stumpy.L.WithStumpy(stumpy.WithWriter(io.Discard)))
}

func newWriterLogger(w io.Writer) *Logger {
	return stumpy.L.New(stumpy.L.WithStumpy(stumpy.WithWriter(w)))
}

// refinementLogLimiter rate-limits the warnings that Numeral.Sign and
// Numeral.Root emit once per failed call (categories "sign-stalled" and
// "root-unsupported"), which a caller retrying in a loop would otherwise
// repeat. The vendored logiface here only wires a catrate
// limiter into its own modifier chain from within its own test suite, with
// no exported option, so a Manager drives a catrate.Limiter directly:
// consulting it before emitting a warning-level log line from a hot path.
type refinementLogLimiter struct {
	limiter *catrate.Limiter
}

func newRefinementLogLimiter() *refinementLogLimiter {
	return &refinementLogLimiter{
		limiter: catrate.NewLimiter(map[time.Duration]int{
			time.Second:      1,
			10 * time.Minute: 20,
		}),
	}
}

func (r *refinementLogLimiter) allow(category string) bool {
	_, ok := r.limiter.Allow(category)
	return ok
}

// WithLogWriter returns an Option directing a Manager's diagnostic log
// output to w, as newline-delimited JSON.
func WithLogWriter(w io.Writer) Option {
	return func(c *managerConfig) { c.logger = newWriterLogger(w) }
}

// WithLogger overrides a Manager's logger outright, e.g. to attach extra
// fields via (*Logger).Clone before passing it in.
func WithLogger(l *Logger) Option {
	return func(c *managerConfig) { c.logger = l }
}
