// internal/server/site.go
package server

import (
	"net/http"
	"time"
)

// SiteMode is what the landing site should render right now.
type SiteMode string

const (
	// SiteModeComingSoon is the weekend countdown page.
	SiteModeComingSoon SiteMode = "coming-soon"
	// SiteModeMaintenance is the weekday maintenance page.
	SiteModeMaintenance SiteMode = "maintenance"
)

// ModeForDay maps a weekday onto the site mode.
func ModeForDay(day time.Weekday) SiteMode {
	if day == time.Saturday || day == time.Sunday {
		return SiteModeComingSoon
	}
	return SiteModeMaintenance
}

func (s *Server) handleSiteMode(w http.ResponseWriter, r *http.Request) {
	now := s.clock()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode":    ModeForDay(now.Weekday()),
		"weekday": now.Weekday().String(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"app":     s.cfg.App.Name,
		"version": s.cfg.App.Version,
		"uptime":  time.Since(s.started).String(),
	})
}
