// internal/server/chat_test.go
package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotBody struct {
	SessionID string `json:"sessionId"`
	Mode      string `json:"mode"`
	Step      string `json:"step"`
	Guided    struct {
		Brand    string `json:"brand"`
		Category string `json:"category"`
		Product  string `json:"product"`
		Size     string `json:"size"`
	} `json:"guided"`
	Transcript []struct {
		ID   string `json:"id"`
		From string `json:"from"`
		Text string `json:"text"`
	} `json:"transcript"`
	Options []string `json:"options"`
}

func createSession(t *testing.T, router http.Handler) snapshotBody {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var snap snapshotBody
	decodeBody(t, rec, &snap)
	require.NotEmpty(t, snap.SessionID)
	return snap
}

func postEvent(t *testing.T, router http.Handler, sessionID string, event map[string]interface{}) (*snapshotBody, int) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/chat/sessions/%s/events", sessionID), event)
	if rec.Code != http.StatusOK {
		return nil, rec.Code
	}
	var snap snapshotBody
	decodeBody(t, rec, &snap)
	return &snap, rec.Code
}

func TestCreateSessionSeedsIntro(t *testing.T) {
	srv := newTestServer(t)
	snap := createSession(t, srv.Routes())

	assert.Equal(t, "menu", snap.Mode)
	require.Len(t, snap.Transcript, 1)
	assert.Equal(t, "intro", snap.Transcript[0].ID)
	assert.Equal(t, []string{"faq", "guided", "orders"}, snap.Options)
}

func TestGuidedFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	snap, code := postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "guided",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "guided", snap.Mode)
	assert.Equal(t, "brand-select", snap.Step)
	assert.Equal(t, []string{"Zuliäm"}, snap.Options)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "guided", "level": "brand", "value": "Zuliäm",
	})
	assert.Equal(t, "category-select", snap.Step)
	assert.Equal(t, []string{"Signature", "Peak"}, snap.Options)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "guided", "level": "category", "value": "Signature",
	})
	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "guided", "level": "product", "value": "Sign",
	})
	assert.Equal(t, "size-select", snap.Step)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "guided", "level": "size", "value": "Size 9",
	})
	assert.Equal(t, "size-result", snap.Step)
	assert.Equal(t, "Size 9", snap.Guided.Size)

	last := snap.Transcript[len(snap.Transcript)-1]
	assert.Equal(t, "Price: MYR 699.00, Stock: Low (4 available)", last.Text)

	// Back from the size result returns to size selection without
	// losing any transcript entries.
	transcriptLen := len(snap.Transcript)
	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "guided", "level": "size", "back": true,
	})
	assert.Equal(t, "size-select", snap.Step)
	assert.Empty(t, snap.Guided.Size)
	assert.Len(t, snap.Transcript, transcriptLen)
}

func TestOrderLookupOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	snap, code := postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "orders",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "orders", snap.Mode)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "order-lookup", "code": "za-458210",
	})
	last := snap.Transcript[len(snap.Transcript)-1]
	assert.Contains(t, last.Text, "Mikael Rowan")
	assert.Contains(t, last.Text, "880987654321")
}

func TestFAQOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	snap, _ := postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "faq",
	})
	require.Len(t, snap.Options, 5)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "faq", "question": snap.Options[0],
	})
	last := snap.Transcript[len(snap.Transcript)-1]
	assert.Equal(t, "bot", last.From)
	assert.NotEmpty(t, last.Text)
}

func TestBackToMenuAndRestart(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	snap, _ := postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "guided",
	})
	assert.Equal(t, "guided", snap.Mode)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "menu",
	})
	assert.Equal(t, "menu", snap.Mode)
	assert.Greater(t, len(snap.Transcript), 1)

	snap, _ = postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "restart",
	})
	assert.Equal(t, "menu", snap.Mode)
	require.Len(t, snap.Transcript, 1)
	assert.Equal(t, "intro", snap.Transcript[0].ID)
}

func TestSessionEventErrors(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	t.Run("unknown session", func(t *testing.T) {
		_, code := postEvent(t, router, "no-such-session", map[string]interface{}{
			"type": "restart",
		})
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, code := postEvent(t, router, session.SessionID, map[string]interface{}{
			"type": "teleport",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown envelope field", func(t *testing.T) {
		_, code := postEvent(t, router, session.SessionID, map[string]interface{}{
			"type": "restart", "force": true,
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestGetSessionSnapshot(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Routes()
	session := createSession(t, router)

	postEvent(t, router, session.SessionID, map[string]interface{}{
		"type": "menu", "branch": "faq",
	})

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/chat/sessions/%s", session.SessionID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap snapshotBody
	decodeBody(t, rec, &snap)
	assert.Equal(t, "faq", snap.Mode)
	assert.Len(t, snap.Transcript, 3)
}
