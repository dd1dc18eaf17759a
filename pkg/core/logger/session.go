package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session opens a log session per dispatch: every entry written through the returned
// context carries the same session_id.
type Session struct {
	log   *zap.Logger
	newID func() string
}

func NewSession(log *zap.Logger) *Session {
	return &Session{log: log, newID: uuid.NewString}
}

// Start tags the logger with a fresh session id. A logger already attached to ctx takes
// precedence over the one the session was built with. A session already open on ctx is kept.
func (s *Session) Start(ctx context.Context) context.Context {
	if _, ok := SessionID(ctx); ok {
		return ctx
	}

	base := s.log
	if l, ok := fromContext(ctx); ok || base == nil {
		base = l
	}

	id := s.newID()
	log := base.With(zap.String("session_id", id))
	log.Info("log session started")

	return context.WithValue(WithLogger(ctx, log), sessionKey, id)
}
