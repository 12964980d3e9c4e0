// internal/server/chat.go
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zuliam-concierge/internal/common/errors"
	"zuliam-concierge/internal/common/metrics"
	"zuliam-concierge/internal/concierge"
)

// chatEvent is the single envelope for every conversation operation.
// Which fields matter depends on Type; extras are rejected by the
// decoder.
type chatEvent struct {
	Type     string `json:"type"`
	Branch   string `json:"branch,omitempty"`
	Level    string `json:"level,omitempty"`
	Value    string `json:"value,omitempty"`
	Back     bool   `json:"back,omitempty"`
	Question string `json:"question,omitempty"`
	Code     string `json:"code,omitempty"`
}

const (
	eventMenu        = "menu"
	eventGuided      = "guided"
	eventFAQ         = "faq"
	eventOrderLookup = "order-lookup"
	eventRestart     = "restart"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	snapshot, stdErr := s.sessions.create(s.engine, s.clock())
	if stdErr != nil {
		s.writeError(w, stdErr)
		return
	}
	s.obs.RecordOperation(r.Context(), "chat_session_create", "success")
	s.writeJSON(w, http.StatusCreated, snapshot)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var snapshot concierge.Snapshot
	if stdErr := s.sessions.with(id, s.clock(), func(session *concierge.Session) {
		snapshot = s.engine.Snapshot(session)
	}); stdErr != nil {
		s.writeError(w, stdErr)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

// handleSessionEvent applies one conversation event to a session and
// returns the updated snapshot. The envelope itself can be malformed
// (400) or name a dead session (404); the transitions are total and
// never fail.
func (s *Server) handleSessionEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	var event chatEvent
	if stdErr := s.decodeJSON(r, &event); stdErr != nil {
		s.writeError(w, stdErr)
		return
	}

	apply, stdErr := s.eventFunc(event)
	if stdErr != nil {
		s.writeError(w, stdErr)
		return
	}

	var snapshot concierge.Snapshot
	if stdErr := s.sessions.with(id, s.clock(), func(session *concierge.Session) {
		apply(session)
		snapshot = s.engine.Snapshot(session)
	}); stdErr != nil {
		s.writeError(w, stdErr)
		return
	}

	metrics.ChatEvents.WithLabelValues(event.Type).Inc()
	s.obs.RecordOperation(r.Context(), "chat_event", event.Type)
	s.writeJSON(w, http.StatusOK, snapshot)
}

// eventFunc resolves an envelope to the engine transition it names. The
// branch value "menu" returns to the menu; the three others enter a
// branch.
func (s *Server) eventFunc(event chatEvent) (func(*concierge.Session), *errors.StandardError) {
	switch event.Type {
	case eventMenu:
		if event.Branch == string(concierge.ModeMenu) {
			return s.engine.BackToMenu, nil
		}
		branch := concierge.Mode(event.Branch)
		return func(session *concierge.Session) {
			s.engine.SelectMenuBranch(session, branch)
		}, nil

	case eventGuided:
		level := concierge.GuidedLevel(event.Level)
		return func(session *concierge.Session) {
			s.engine.SelectGuidedValue(session, level, event.Value, event.Back)
		}, nil

	case eventFAQ:
		return func(session *concierge.Session) {
			s.engine.SelectFAQ(session, event.Question)
		}, nil

	case eventOrderLookup:
		return func(session *concierge.Session) {
			s.engine.SubmitOrderLookup(session, event.Code)
		}, nil

	case eventRestart:
		return s.engine.Restart, nil

	default:
		return nil, errors.NewUnknownEventError(event.Type)
	}
}
