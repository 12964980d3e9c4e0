// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"zuliam-concierge/internal/catalog"
	"zuliam-concierge/internal/common/config"
	"zuliam-concierge/internal/common/errors"
	"zuliam-concierge/internal/common/logger"
	"zuliam-concierge/internal/common/observability"
	"zuliam-concierge/internal/concierge"
	"zuliam-concierge/internal/fitting"
)

// Server glues the catalog, fitting and conversation components to the
// HTTP surface. It owns the session store; everything else it holds is
// immutable after construction.
type Server struct {
	cfg      *config.Config
	logger   logger.Logger
	catalog  *catalog.Store
	fitCfg   *fitting.Config
	scorer   *fitting.Scorer
	engine   *concierge.Engine
	sessions *sessionStore
	obs      *observability.Observability
	clock    func() time.Time
	started  time.Time
}

func New(cfg *config.Config, store *catalog.Store, log logger.Logger, obs *observability.Observability) *Server {
	fitCfg := fitting.FromAppConfig(cfg.Fitting)
	now := time.Now()

	return &Server{
		cfg:      cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "http-server"}),
		catalog:  store,
		fitCfg:   fitCfg,
		scorer:   fitting.NewScorer(fitCfg, log),
		engine:   concierge.NewEngine(store, log),
		sessions: newSessionStore(cfg.Chat.MaxSessions, time.Duration(cfg.Chat.SessionTTL)*time.Minute, log),
		obs:      obs,
		clock:    time.Now,
		started:  now,
	}
}

// SetClock overrides the server's time source. Used by the site mode
// endpoint and session expiry in tests.
func (s *Server) SetClock(clock func() time.Time) {
	s.clock = clock
}

// StartJanitor launches the session sweeper. It stops when ctx is done.
func (s *Server) StartJanitor(ctx context.Context) {
	go s.sessions.janitor(ctx, time.Duration(s.cfg.Chat.SweepInterval)*time.Minute, s.clock)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encoding response failed", nil)
	}
}

func (s *Server) writeError(w http.ResponseWriter, stdErr *errors.StandardError) {
	s.writeJSON(w, stdErr.HTTPStatus(), map[string]interface{}{
		"error": stdErr,
	})
}

// decodeJSON reads a request body into v, mapping failures onto the
// invalid-request error envelope.
func (s *Server) decodeJSON(r *http.Request, v interface{}) *errors.StandardError {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}
	return nil
}
