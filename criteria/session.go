package criteria

import (
	"github.com/NickyBoy89/sigfind/resolve"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Session is one run of the inserter over a set of files. It owns the
// resolution context cache shared by every criterion it creates.
type Session struct {
	ID      string
	Logger  *log.Entry
	Metrics *Metrics

	contexts *resolve.Cache
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithRegisterer registers the session's metrics with reg
func WithRegisterer(reg prometheus.Registerer) SessionOption {
	return func(s *Session) {
		s.Metrics = NewMetrics(reg)
	}
}

// WithLogger sets the logger session fields are attached to
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.Logger = logger.WithField("session", s.ID)
	}
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		contexts: resolve.NewCache(),
	}
	s.Logger = log.WithField("session", s.ID)
	for _, opt := range opts {
		opt(s)
	}
	if s.Metrics == nil {
		s.Metrics = NewMetrics(nil)
	}
	s.contexts.OnLookup = s.Metrics.recordLookup
	return s
}

// ContextFor returns the resolution context of the unit path is in
func (s *Session) ContextFor(path *Path) *resolve.Context {
	return s.contexts.ContextFor(path.Unit)
}

// CachedContexts is how many units have had their context built
func (s *Session) CachedContexts() int {
	return s.contexts.Len()
}
