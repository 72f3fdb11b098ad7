// Package reporting forwards unexpected failures to Sentry and dumps panic
// stack traces for the operator.
package reporting

import (
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// Init configures the Sentry client. An empty DSN disables reporting.
func Init(dsn, release string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          release,
		AttachStacktrace: true,
	})
}

// ReportError sends err to Sentry.
func ReportError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}

// SetContext attaches structured context to subsequent reports.
func SetContext(name string, value map[string]any) {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetContext(name, value)
	})
}

// HandlePanic writes the panic value and stack trace to w, reports it to
// Sentry, and converts it to an error. Call it with the result of recover().
func HandlePanic(w io.Writer, recovered any) error {
	if recovered == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n\n%s", recovered, debug.Stack())
	sentry.CurrentHub().Recover(recovered)

	return fmt.Errorf("recovered from panic: %v", recovered)
}

// Flush waits for queued reports to be delivered.
func Flush() {
	sentry.Flush(flushTimeout)
}
