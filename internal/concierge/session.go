// internal/concierge/session.go
package concierge

import "time"

// Mode is the top-level conversation state.
type Mode string

const (
	ModeMenu   Mode = "menu"
	ModeFAQ    Mode = "faq"
	ModeGuided Mode = "guided"
	ModeOrders Mode = "orders"
)

// Sender distinguishes the two sides of the transcript.
type Sender string

const (
	FromBot  Sender = "bot"
	FromUser Sender = "user"
)

// Message is one transcript entry. IDs are deterministic per transition
// so identical flows produce identical transcripts.
type Message struct {
	ID   string `json:"id"`
	From Sender `json:"from"`
	Text string `json:"text"`
}

// GuidedLevel names one field of the guided drill-down path.
type GuidedLevel string

const (
	LevelBrand    GuidedLevel = "brand"
	LevelCategory GuidedLevel = "category"
	LevelProduct  GuidedLevel = "product"
	LevelSize     GuidedLevel = "size"
)

// GuidedSelection is the partially filled brand→category→product→size
// path. Fields are only ever set left to right and cleared right to left,
// so a set field implies all fields before it are set too.
type GuidedSelection struct {
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	Product  string `json:"product,omitempty"`
	Size     string `json:"size,omitempty"`
}

// truncate drops the selection back to the state just before the given
// level was filled. This is a fixed rule per level, not a history replay.
func (g GuidedSelection) truncate(level GuidedLevel) GuidedSelection {
	switch level {
	case LevelCategory:
		return GuidedSelection{Brand: g.Brand}
	case LevelProduct:
		return GuidedSelection{Brand: g.Brand, Category: g.Category}
	case LevelSize:
		return GuidedSelection{Brand: g.Brand, Category: g.Category, Product: g.Product}
	default:
		return GuidedSelection{}
	}
}

// nextLevel reports which field a forward selection must fill next, and
// false once the path is complete.
func (g GuidedSelection) nextLevel() (GuidedLevel, bool) {
	switch {
	case g.Brand == "":
		return LevelBrand, true
	case g.Category == "":
		return LevelCategory, true
	case g.Product == "":
		return LevelProduct, true
	case g.Size == "":
		return LevelSize, true
	default:
		return "", false
	}
}

// GuidedStep is the explicit sub-state of the guided flow, derived from
// the selection prefix and the catalog.
type GuidedStep string

const (
	StepBrand      GuidedStep = "brand-select"
	StepCategory   GuidedStep = "category-select"
	StepProduct    GuidedStep = "product-select"
	StepSize       GuidedStep = "size-select"
	StepSizeResult GuidedStep = "size-result"
	StepComingSoon GuidedStep = "coming-soon"
)

// Session is the single-owner state of one conversation: the transcript,
// the current mode and the guided path. It is only ever touched by the
// event currently being handled.
type Session struct {
	ID           string          `json:"id"`
	Mode         Mode            `json:"mode"`
	Guided       GuidedSelection `json:"guided"`
	OrderNumber  string          `json:"orderNumber"`
	Transcript   []Message       `json:"transcript"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastActivity time.Time       `json:"lastActivity"`
}

func (s *Session) append(msg Message) {
	s.Transcript = append(s.Transcript, msg)
}

// Touch updates the idle-expiry clock.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}

// Expired reports whether the session has been idle past ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivity) > ttl
}
