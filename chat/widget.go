// Package chat is the shop-assistant widget: it owns the message transcript,
// relays user input to the agent service through a pluggable transport, and
// hands any returned filter command to the product listing through the filter
// bridge after navigating to the products page.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/JK-asthetic/SmartStoreFront/bridge"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

var (
	// ErrEmptyMessage rejects blank input before any echo or network call.
	ErrEmptyMessage = errors.New("chat: empty message")
	// ErrBusy rejects a send while a previous request is still in flight.
	ErrBusy = errors.New("chat: a request is already in flight")
)

const productsPath = "/products"

// Navigator performs client-side route changes. The widget is a page-level
// overlay and never holds a reference to the routed page it navigates to.
type Navigator interface {
	Navigate(path string)
}

// Widget is one chat-widget instance. The transcript is append-only and lives
// until a full page reload.
type Widget struct {
	transport Transport
	navigator Navigator
	bridge    *bridge.FilterBridge
	userID    string

	mu       sync.Mutex
	messages []models.ChatMessage
	open     bool
	busy     bool
}

func NewWidget(transport Transport, navigator Navigator, b *bridge.FilterBridge, userID string) *Widget {
	w := &Widget{
		transport: transport,
		navigator: navigator,
		bridge:    b,
		userID:    userID,
	}
	w.messages = append(w.messages, models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   "Hello! I'm your shopping assistant. How can I help you today?",
		Timestamp: time.Now(),
		SuggestedActions: []string{
			"Browse popular products",
			"Check my order status",
			"Help with returns",
		},
	})

	// An assistant command that never found a mounted listing is surfaced
	// here instead of vanishing silently.
	b.OnExpire(func(models.FilterCommand) {
		w.appendAssistant("I couldn't apply those filters to the product page. Please try again or adjust the filters yourself.")
	})
	return w
}

func (w *Widget) Open()  { w.setOpen(true) }
func (w *Widget) Close() { w.setOpen(false) }

func (w *Widget) setOpen(open bool) {
	w.mu.Lock()
	w.open = open
	w.mu.Unlock()
}

func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Messages returns a snapshot of the transcript in append order.
func (w *Widget) Messages() []models.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.ChatMessage(nil), w.messages...)
}

// Send relays one user message to the agent service. The user's own message
// is echoed into the transcript before the network call resolves; only one
// request may be in flight at a time. A transport failure appends an inline
// apology instead of failing the widget.
func (w *Widget) Send(ctx context.Context, input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrEmptyMessage
	}

	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	w.busy = true
	w.messages = append(w.messages, models.ChatMessage{
		Role:      models.RoleUser,
		Content:   input,
		Timestamp: time.Now(),
	})
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	reply, err := w.transport.Send(ctx, w.userID, input)
	if err != nil {
		w.appendAssistant("Sorry, I encountered an error. Please try again later.")
		return err
	}

	w.mu.Lock()
	w.messages = append(w.messages, models.ChatMessage{
		Role:             models.RoleAssistant,
		Content:          reply.Message,
		Timestamp:        time.Now(),
		AgentType:        reply.AgentType,
		Products:         reply.Products,
		Orders:           reply.Orders,
		SuggestedActions: reply.SuggestedActions,
	})
	w.mu.Unlock()

	if reply.FilterCommand != nil && reply.ShouldNavigate {
		// Close first, then navigate; the listing view mounts asynchronously
		// and picks the command up from the bridge once it registers.
		w.Close()
		w.navigator.Navigate(productsPath)
		w.bridge.Dispatch(*reply.FilterCommand)
	}
	return nil
}

func (w *Widget) appendAssistant(content string) {
	w.mu.Lock()
	w.messages = append(w.messages, models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	})
	w.mu.Unlock()
}

// AgentLabel maps an agent type onto the display name shown above assistant
// messages. Unknown types fall back to the generic label.
func AgentLabel(agentType string) string {
	switch agentType {
	case models.AgentTypeProductRecommendation:
		return "Product Assistant"
	case models.AgentTypeOrderTracking:
		return "Order Assistant"
	case models.AgentTypeCustomerSupport:
		return "Support Assistant"
	}
	return "Shop Assistant"
}
