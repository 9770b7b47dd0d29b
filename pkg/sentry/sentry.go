package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime is how long main waits for buffered events on shutdown.
const FlushTime = 2 * time.Second

// Sentry is a small builder around sentry-go capture calls, so handlers can
// attach the request hub, extras and severity fluently.
type Sentry struct {
	context echo.Context
	error   error
	message string
	level   sentrygo.Level
	extras  map[string]interface{}
}

// WithContext starts a capture builder bound to the request.
func WithContext(c echo.Context) *Sentry {
	return &Sentry{context: c}
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithError(err error) *Sentry {
	s.error = err
	return s
}

func (s *Sentry) WithMessage(msg string) *Sentry {
	s.message = msg
	return s
}

func (s *Sentry) WithLevel(level sentrygo.Level) *Sentry {
	s.level = level
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

// Capture sends the built event through the request-scoped hub when one is
// available, falling back to the global hub.
func (s *Sentry) Capture() {
	hub := sentrygo.CurrentHub()
	if s.context != nil {
		if h := sentryecho.GetHubFromContext(s.context); h != nil {
			hub = h
		}
	}

	hub.WithScope(func(scope *sentrygo.Scope) {
		if s.level != "" {
			scope.SetLevel(s.level)
		}
		for k, v := range s.extras {
			scope.SetExtra(k, v)
		}
		if s.error != nil {
			hub.CaptureException(s.error)
			return
		}
		if s.message != "" {
			hub.CaptureMessage(s.message)
		}
	})
}
