// internal/concierge/engine.go
package concierge

import (
	"fmt"
	"strings"
	"time"

	"zuliam-concierge/internal/catalog"
	"zuliam-concierge/internal/common/logger"
	"zuliam-concierge/internal/common/metrics"
)

// Bot copy. The texts are part of the widget contract with the
// storefront and are kept byte-for-byte stable.
const (
	introText = "Hi! I'm Zuli, your sneaker concierge. I can answer FAQs, guide you to the perfect pair (Sign, Mature, or Peak), or trace your order snapshot. What would you like today?"

	menuFAQUserText    = "FAQs"
	menuFAQBotText     = "Here are the most requested questions:"
	menuGuidedUserText = "Guided product flow"
	menuGuidedBotText  = "Let's find the perfect pair. Start with brand."
	menuOrdersUserText = "Order lookup"
	menuOrdersBotText  = "Enter your order number. I’ll surface the latest milestone from our warehouse."

	categoryConfirmText = "Got it. Pick a product."
	productConfirmText  = "Nice pick. Choose your size."
	sizeMissingText     = "That size is inbound. Want me to set a stock alert?"

	faqUnknownText = "I don't have that one on file yet. Pick one of the listed questions."

	orderGuidanceText = "No worries! You can reply here any time with your Zuliäm order number (format: ZA-123456). All parcels are shipped with J&T Express Malaysia and come with a 12-digit tracking number."
	orderNotFoundText = "I couldn’t find that order in today’s J&T Express Malaysia manifest. Please make sure your Zuliäm order number (ZA-xxxxxx) is correct, and that you also have the 12-digit J&T tracking number once dispatched."
)

// Engine drives the menu-driven conversation over the read-only catalog.
// Every transition is total: malformed or out-of-order input degrades to
// a no-op or a friendly reply, never an error.
type Engine struct {
	store  *catalog.Store
	logger logger.Logger
}

func NewEngine(store *catalog.Store, log logger.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"component": "concierge-engine"}),
	}
}

// NewSession creates a session seeded with the intro message.
func (e *Engine) NewSession(id string, now time.Time) *Session {
	s := &Session{
		ID:           id,
		CreatedAt:    now,
		LastActivity: now,
	}
	e.reset(s)
	return s
}

// Restart clears the transcript, reseeds the intro message and returns
// the session to the menu. It is the only transition that truncates
// history.
func (e *Engine) Restart(s *Session) {
	e.reset(s)
}

func (e *Engine) reset(s *Session) {
	s.Transcript = []Message{{ID: "intro", From: FromBot, Text: introText}}
	s.Mode = ModeMenu
	s.Guided = GuidedSelection{}
	s.OrderNumber = ""
}

// SelectMenuBranch switches from the menu into one of the three
// branches, appending the user's pick and the bot acknowledgment.
// Entering the guided branch always starts from an empty selection.
func (e *Engine) SelectMenuBranch(s *Session, branch Mode) {
	switch branch {
	case ModeFAQ:
		s.append(Message{ID: "menu-faq", From: FromUser, Text: menuFAQUserText})
		s.append(Message{ID: "menu-faq-bot", From: FromBot, Text: menuFAQBotText})
		s.Mode = ModeFAQ
	case ModeGuided:
		s.append(Message{ID: "menu-guided", From: FromUser, Text: menuGuidedUserText})
		s.append(Message{ID: "menu-guided-bot", From: FromBot, Text: menuGuidedBotText})
		s.Guided = GuidedSelection{}
		s.Mode = ModeGuided
	case ModeOrders:
		s.append(Message{ID: "menu-orders", From: FromUser, Text: menuOrdersUserText})
		s.append(Message{ID: "menu-orders-bot", From: FromBot, Text: menuOrdersBotText})
		s.OrderNumber = ""
		s.Mode = ModeOrders
	default:
		e.logger.Warn("ignoring unknown menu branch", map[string]interface{}{
			"sessionId": s.ID,
			"branch":    string(branch),
		})
	}
}

// BackToMenu returns to the menu without touching the transcript.
func (e *Engine) BackToMenu(s *Session) {
	s.Mode = ModeMenu
}

// SelectFAQ answers a canned question, echoing the question as the user
// message. An unknown question gets a nudge back to the listed ones.
func (e *Engine) SelectFAQ(s *Session, question string) {
	s.append(Message{ID: "faq-user-" + question, From: FromUser, Text: question})

	answer, ok := e.store.FAQAnswer(question)
	if !ok {
		s.append(Message{ID: "faq-bot-missing-" + question, From: FromBot, Text: faqUnknownText})
		return
	}
	s.append(Message{ID: "faq-bot-" + question, From: FromBot, Text: answer})
}

// SelectGuidedValue advances or rewinds the guided drill-down. A back
// selection truncates the path at the given level and appends nothing.
// A forward selection must target the first empty level; anything else
// is dropped to preserve the prefix invariant.
func (e *Engine) SelectGuidedValue(s *Session, level GuidedLevel, value string, back bool) {
	if back {
		s.Guided = s.Guided.truncate(level)
		return
	}

	expected, ok := s.Guided.nextLevel()
	if !ok || level != expected {
		e.logger.Warn("ignoring out-of-order guided selection", map[string]interface{}{
			"sessionId": s.ID,
			"level":     string(level),
			"value":     value,
		})
		return
	}

	switch level {
	case LevelBrand:
		s.append(Message{ID: "brand-" + value, From: FromUser, Text: value})
		s.append(Message{
			ID:   "brand-confirm-" + value,
			From: FromBot,
			Text: fmt.Sprintf("Exploring %s. Choose a product line.", value),
		})
		s.Guided = GuidedSelection{Brand: value}

	case LevelCategory:
		s.append(Message{ID: "category-" + value, From: FromUser, Text: value})
		s.append(Message{ID: "category-confirm-" + value, From: FromBot, Text: categoryConfirmText})
		s.Guided.Category = value

	case LevelProduct:
		s.append(Message{ID: "product-" + value, From: FromUser, Text: value})

		// A product with no sizes is a terminal branch: no size step is
		// offered, only an availability notice.
		if product, found := e.store.Product(s.Guided.Brand, s.Guided.Category, value); found && !product.Available() {
			s.append(Message{
				ID:   "product-comingsoon-" + value,
				From: FromBot,
				Text: fmt.Sprintf("The %s line is coming soon. Stay tuned for updates!", s.Guided.Category),
			})
			s.Guided.Product = value
			return
		}

		s.append(Message{ID: "product-confirm-" + value, From: FromBot, Text: productConfirmText})
		s.Guided.Product = value

	case LevelSize:
		s.append(Message{ID: "size-" + value, From: FromUser, Text: value})

		if details, found := e.store.Size(s.Guided.Brand, s.Guided.Category, s.Guided.Product, value); found {
			s.append(Message{
				ID:   "size-response-" + value,
				From: FromBot,
				Text: fmt.Sprintf("Price: MYR %.2f, Stock: %s", details.Price, details.Stock),
			})
		} else {
			s.append(Message{ID: "size-response-missing-" + value, From: FromBot, Text: sizeMissingText})
		}
		s.Guided.Size = value
	}
}

// SubmitOrderLookup resolves an order code against the snapshot table.
// Blank input gets guidance, an unknown code gets a distinct not-found
// reply; neither is an error.
func (e *Engine) SubmitOrderLookup(s *Session, raw string) {
	s.OrderNumber = raw

	queryID := raw
	if queryID == "" {
		queryID = "blank"
	}
	userText := "I do not have an order number"
	if raw != "" {
		userText = fmt.Sprintf("Checking order %s", raw)
	}
	s.append(Message{ID: "order-query-" + queryID, From: FromUser, Text: userText})

	if raw == "" {
		s.append(Message{ID: "order-missing", From: FromBot, Text: orderGuidanceText})
		metrics.OrderLookups.WithLabelValues("blank").Inc()
		return
	}

	match, found := e.store.Order(raw)
	if !found {
		s.append(Message{ID: "order-not-found-" + raw, From: FromBot, Text: orderNotFoundText})
		metrics.OrderLookups.WithLabelValues("not_found").Inc()
		return
	}

	s.append(Message{
		ID:   "order-found-" + raw,
		From: FromBot,
		Text: fmt.Sprintf(
			"Order for %s: %s Items: %s. Estimated delivery: %s. \nTracking Number: %s \n[Track on J&T Express Malaysia](https://www.jtexpress.my/track?trackingNo=%s)",
			match.Customer,
			match.Status,
			strings.Join(match.Items, ", "),
			match.ETA,
			match.TrackingNumber,
			match.TrackingNumber,
		),
	})
	metrics.OrderLookups.WithLabelValues("found").Inc()
}

// Step derives the guided sub-state from the selection prefix and the
// catalog. It is empty outside the guided branch.
func (e *Engine) Step(s *Session) GuidedStep {
	if s.Mode != ModeGuided {
		return ""
	}

	if s.Guided.Product != "" {
		if product, found := e.store.Product(s.Guided.Brand, s.Guided.Category, s.Guided.Product); found && !product.Available() {
			return StepComingSoon
		}
		if s.Guided.Size != "" {
			return StepSizeResult
		}
		return StepSize
	}

	level, _ := s.Guided.nextLevel()
	switch level {
	case LevelCategory:
		return StepCategory
	case LevelProduct:
		return StepProduct
	default:
		return StepBrand
	}
}

// Options lists the choices the presentation should offer for the
// session's current state, in catalog display order.
func (e *Engine) Options(s *Session) []string {
	switch s.Mode {
	case ModeMenu:
		return []string{string(ModeFAQ), string(ModeGuided), string(ModeOrders)}

	case ModeFAQ:
		faqs := e.store.FAQs()
		questions := make([]string, 0, len(faqs))
		for _, f := range faqs {
			questions = append(questions, f.Question)
		}
		return questions

	case ModeGuided:
		switch e.Step(s) {
		case StepBrand:
			return e.store.Brands()
		case StepCategory:
			if brand, ok := e.store.Brand(s.Guided.Brand); ok {
				names := make([]string, 0, len(brand.Categories))
				for _, c := range brand.Categories {
					names = append(names, c.Name)
				}
				return names
			}
		case StepProduct:
			if category, ok := e.store.Category(s.Guided.Brand, s.Guided.Category); ok {
				names := make([]string, 0, len(category.Products))
				for _, p := range category.Products {
					names = append(names, p.Name)
				}
				return names
			}
		case StepSize:
			if product, ok := e.store.Product(s.Guided.Brand, s.Guided.Category, s.Guided.Product); ok {
				labels := make([]string, 0, len(product.Sizes))
				for _, size := range product.Sizes {
					labels = append(labels, size.Label)
				}
				return labels
			}
		}
		return nil

	default:
		// Order lookup is free-form input, not a pick list.
		return nil
	}
}

// Snapshot is the render-ready view of a session returned after every
// event.
type Snapshot struct {
	SessionID  string          `json:"sessionId"`
	Mode       Mode            `json:"mode"`
	Step       GuidedStep      `json:"step,omitempty"`
	Guided     GuidedSelection `json:"guided"`
	Transcript []Message       `json:"transcript"`
	Options    []string        `json:"options"`
}

// Snapshot materializes the presentation view of the session.
func (e *Engine) Snapshot(s *Session) Snapshot {
	return Snapshot{
		SessionID:  s.ID,
		Mode:       s.Mode,
		Step:       e.Step(s),
		Guided:     s.Guided,
		Transcript: s.Transcript,
		Options:    e.Options(s),
	}
}
