// internal/concierge/engine_test.go
package concierge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zuliam-concierge/internal/catalog"
	"zuliam-concierge/internal/common/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.Default(), logger.NewTestLogger(t))
}

func messageIDs(s *Session) []string {
	ids := make([]string, 0, len(s.Transcript))
	for _, m := range s.Transcript {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestNewSessionSeedsIntro(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())

	require.Len(t, session.Transcript, 1)
	assert.Equal(t, "intro", session.Transcript[0].ID)
	assert.Equal(t, FromBot, session.Transcript[0].From)
	assert.Equal(t, ModeMenu, session.Mode)
	assert.Equal(t, []string{"faq", "guided", "orders"}, engine.Options(session))
}

func TestSelectMenuBranch(t *testing.T) {
	tests := []struct {
		name       string
		branch     Mode
		wantMode   Mode
		wantUserID string
		wantBotID  string
	}{
		{
			name:       "faq branch",
			branch:     ModeFAQ,
			wantMode:   ModeFAQ,
			wantUserID: "menu-faq",
			wantBotID:  "menu-faq-bot",
		},
		{
			name:       "guided branch",
			branch:     ModeGuided,
			wantMode:   ModeGuided,
			wantUserID: "menu-guided",
			wantBotID:  "menu-guided-bot",
		},
		{
			name:       "orders branch",
			branch:     ModeOrders,
			wantMode:   ModeOrders,
			wantUserID: "menu-orders",
			wantBotID:  "menu-orders-bot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			session := engine.NewSession("sess-1", time.Now())

			engine.SelectMenuBranch(session, tt.branch)

			require.Len(t, session.Transcript, 3)
			assert.Equal(t, tt.wantMode, session.Mode)
			assert.Equal(t, tt.wantUserID, session.Transcript[1].ID)
			assert.Equal(t, FromUser, session.Transcript[1].From)
			assert.Equal(t, tt.wantBotID, session.Transcript[2].ID)
			assert.Equal(t, FromBot, session.Transcript[2].From)
		})
	}
}

func TestSelectMenuBranchIgnoresUnknown(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())

	engine.SelectMenuBranch(session, Mode("checkout"))

	assert.Equal(t, ModeMenu, session.Mode)
	assert.Len(t, session.Transcript, 1)
}

func TestGuidedForwardFlow(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)

	assert.Equal(t, StepBrand, engine.Step(session))
	assert.Equal(t, []string{"Zuliäm"}, engine.Options(session))

	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)
	assert.Equal(t, StepCategory, engine.Step(session))
	assert.Equal(t, []string{"Signature", "Peak"}, engine.Options(session))
	assert.Equal(t, "Exploring Zuliäm. Choose a product line.", session.Transcript[len(session.Transcript)-1].Text)

	engine.SelectGuidedValue(session, LevelCategory, "Signature", false)
	assert.Equal(t, StepProduct, engine.Step(session))
	assert.Equal(t, []string{"Sign", "Mature"}, engine.Options(session))

	engine.SelectGuidedValue(session, LevelProduct, "Sign", false)
	assert.Equal(t, StepSize, engine.Step(session))
	assert.Equal(t, []string{"Size 7", "Size 8", "Size 9"}, engine.Options(session))

	engine.SelectGuidedValue(session, LevelSize, "Size 9", false)
	assert.Equal(t, StepSizeResult, engine.Step(session))

	last := session.Transcript[len(session.Transcript)-1]
	assert.Equal(t, "size-response-Size 9", last.ID)
	assert.Equal(t, "Price: MYR 699.00, Stock: Low (4 available)", last.Text)

	assert.Equal(t, GuidedSelection{
		Brand:    "Zuliäm",
		Category: "Signature",
		Product:  "Sign",
		Size:     "Size 9",
	}, session.Guided)
}

func TestGuidedBackTruncatesSelection(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)
	engine.SelectGuidedValue(session, LevelCategory, "Signature", false)
	engine.SelectGuidedValue(session, LevelProduct, "Sign", false)

	before := messageIDs(session)

	engine.SelectGuidedValue(session, LevelCategory, "", true)

	assert.Equal(t, GuidedSelection{Brand: "Zuliäm"}, session.Guided)
	assert.Equal(t, StepCategory, engine.Step(session))
	assert.Equal(t, before, messageIDs(session), "back must not touch the transcript")

	// Moving forward again lands on the same step as before.
	engine.SelectGuidedValue(session, LevelCategory, "Signature", false)
	assert.Equal(t, StepProduct, engine.Step(session))
}

func TestGuidedOutOfOrderSelectionIgnored(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)

	engine.SelectGuidedValue(session, LevelSize, "Size 9", false)

	assert.Equal(t, GuidedSelection{}, session.Guided)
	assert.Equal(t, StepBrand, engine.Step(session))
	assert.Len(t, session.Transcript, 3)
}

func TestGuidedComingSoonBranch(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)
	engine.SelectGuidedValue(session, LevelCategory, "Peak", false)
	engine.SelectGuidedValue(session, LevelProduct, "Coming Soon", false)

	assert.Equal(t, StepComingSoon, engine.Step(session))
	assert.Empty(t, engine.Options(session))

	last := session.Transcript[len(session.Transcript)-1]
	assert.Equal(t, "product-comingsoon-Coming Soon", last.ID)
	assert.Equal(t, "The Peak line is coming soon. Stay tuned for updates!", last.Text)
}

func TestGuidedMissingSizeOffersStockAlert(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)
	engine.SelectGuidedValue(session, LevelCategory, "Signature", false)
	engine.SelectGuidedValue(session, LevelProduct, "Mature", false)
	engine.SelectGuidedValue(session, LevelSize, "Size 12", false)

	last := session.Transcript[len(session.Transcript)-1]
	assert.Equal(t, "size-response-missing-Size 12", last.ID)
	assert.Equal(t, "That size is inbound. Want me to set a stock alert?", last.Text)
	assert.Equal(t, StepSizeResult, engine.Step(session))
}

func TestSelectFAQ(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeFAQ)

	questions := engine.Options(session)
	require.Len(t, questions, 5)

	engine.SelectFAQ(session, "What are your store hours?")

	last := session.Transcript[len(session.Transcript)-1]
	assert.Equal(t, "faq-bot-What are your store hours?", last.ID)
	assert.Equal(t, FromBot, last.From)
	assert.NotEmpty(t, last.Text)
}

func TestSelectFAQUnknownQuestion(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeFAQ)

	engine.SelectFAQ(session, "Do you sell socks?")

	last := session.Transcript[len(session.Transcript)-1]
	assert.Equal(t, "faq-bot-missing-Do you sell socks?", last.ID)
	assert.Equal(t, faqUnknownText, last.Text)
}

func TestSubmitOrderLookup(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBotID  string
		wantInText []string
	}{
		{
			name:      "blank input gets guidance",
			input:     "",
			wantBotID: "order-missing",
			wantInText: []string{
				"ZA-123456",
				"J&T Express Malaysia",
			},
		},
		{
			name:      "known order",
			input:     "ZA-458210",
			wantBotID: "order-found-ZA-458210",
			wantInText: []string{
				"Mikael Rowan",
				"880987654321",
				"https://www.jtexpress.my/track?trackingNo=880987654321",
			},
		},
		{
			name:      "lowercase code still matches",
			input:     "za-458210",
			wantBotID: "order-found-za-458210",
			wantInText: []string{
				"Mikael Rowan",
				"880987654321",
			},
		},
		{
			name:      "unknown order",
			input:     "ZA-000000",
			wantBotID: "order-not-found-ZA-000000",
			wantInText: []string{
				"couldn’t find that order",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t)
			session := engine.NewSession("sess-1", time.Now())
			engine.SelectMenuBranch(session, ModeOrders)

			engine.SubmitOrderLookup(session, tt.input)

			last := session.Transcript[len(session.Transcript)-1]
			assert.Equal(t, tt.wantBotID, last.ID)
			assert.Equal(t, FromBot, last.From)
			for _, fragment := range tt.wantInText {
				assert.Contains(t, last.Text, fragment)
			}
			assert.Equal(t, tt.input, session.OrderNumber)
		})
	}
}

func TestBackToMenuKeepsTranscript(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)

	before := messageIDs(session)
	engine.BackToMenu(session)

	assert.Equal(t, ModeMenu, session.Mode)
	assert.Equal(t, before, messageIDs(session))
}

func TestRestartClearsEverything(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeOrders)
	engine.SubmitOrderLookup(session, "ZA-100245")
	engine.BackToMenu(session)
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)

	engine.Restart(session)

	require.Len(t, session.Transcript, 1)
	assert.Equal(t, "intro", session.Transcript[0].ID)
	assert.Equal(t, ModeMenu, session.Mode)
	assert.Equal(t, GuidedSelection{}, session.Guided)
	assert.Empty(t, session.OrderNumber)
}

func TestTranscriptIsAppendOnly(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())

	previous := []string{}
	checkpoint := func() {
		current := messageIDs(session)
		require.GreaterOrEqual(t, len(current), len(previous))
		assert.Equal(t, previous, current[:len(previous)])
		previous = current
	}

	checkpoint()
	engine.SelectMenuBranch(session, ModeFAQ)
	checkpoint()
	engine.SelectFAQ(session, "How do returns work?")
	checkpoint()
	engine.BackToMenu(session)
	checkpoint()
	engine.SelectMenuBranch(session, ModeGuided)
	checkpoint()
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)
	checkpoint()
	engine.SelectGuidedValue(session, LevelBrand, "", true)
	checkpoint()
}

func TestSnapshot(t *testing.T) {
	engine := newTestEngine(t)
	session := engine.NewSession("sess-1", time.Now())
	engine.SelectMenuBranch(session, ModeGuided)
	engine.SelectGuidedValue(session, LevelBrand, "Zuliäm", false)

	snapshot := engine.Snapshot(session)

	assert.Equal(t, "sess-1", snapshot.SessionID)
	assert.Equal(t, ModeGuided, snapshot.Mode)
	assert.Equal(t, StepCategory, snapshot.Step)
	assert.Equal(t, "Zuliäm", snapshot.Guided.Brand)
	assert.Equal(t, []string{"Signature", "Peak"}, snapshot.Options)
	assert.Len(t, snapshot.Transcript, 5)
}
