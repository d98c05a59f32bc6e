// Package guard gates actions behind the presence of an authenticated session.
package guard

import (
	"context"
	"time"

	"github.com/tair/inventory-service/pkg/logger"
	"github.com/tair/inventory-service/pkg/response"
)

// Session is the authenticated principal of a request.
type Session struct {
	UserID    uint
	Username  string
	Role      string
	ExpiresAt time.Time
}

// SessionProvider resolves the session of the current request.
// A nil session with a nil error means the caller is anonymous.
type SessionProvider interface {
	Session(ctx context.Context) (*Session, error)
}

// SessionProviderFunc adapts a function to SessionProvider.
type SessionProviderFunc func(ctx context.Context) (*Session, error)

func (f SessionProviderFunc) Session(ctx context.Context) (*Session, error) {
	return f(ctx)
}

// Guard runs actions after checking the caller's session.
type Guard struct {
	sessions SessionProvider
}

// New creates a guard backed by sessions.
func New(sessions SessionProvider) *Guard {
	return &Guard{sessions: sessions}
}

type options struct {
	requireAuth bool
}

// Option tunes a single Run call.
type Option func(*options)

// Public lets anonymous callers through. The action then receives a nil
// session unless one is present.
func Public() Option {
	return func(o *options) { o.requireAuth = false }
}

// Action is the guarded unit of work.
type Action[T any] func(ctx context.Context, session *Session) response.Result[T]

// Run resolves the session and invokes action. When auth is required and no
// valid session exists, action is not called and an Unauthorized envelope is
// returned. Otherwise the action's result is returned unchanged.
func Run[T any](ctx context.Context, g *Guard, action Action[T], opts ...Option) response.Result[T] {
	o := options{requireAuth: true}
	for _, opt := range opts {
		opt(&o)
	}

	session, err := g.sessions.Session(ctx)
	if err != nil {
		logger.Debug(ctx).Err(err).Msg("Session lookup failed")
		session = nil
	}

	if o.requireAuth && session == nil {
		logger.Warn(ctx).Msg("Unauthorized action rejected")
		return response.Unauthorized[T]()
	}

	return action(ctx, session)
}
