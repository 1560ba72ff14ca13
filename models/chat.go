package models

import "time"

// ═══════════════════════════════════════════════════════════
// Chat / Assistant wire contract
// ═══════════════════════════════════════════════════════════

// FilterActionApply is the only filter command action the listing understands.
const FilterActionApply = "apply-filter"

// FilterCommand describes a desired filter-state change for the product
// listing. Every field is independently optional: applying a command only
// touches the fields that are present. Search is a pointer because an empty
// string clears the search box while a nil leaves it untouched.
type FilterCommand struct {
	Action     string      `json:"action"`
	Categories []string    `json:"categories,omitempty"`
	PriceRange *[2]float64 `json:"priceRange,omitempty"`
	Sort       string      `json:"sort,omitempty"`
	Search     *string     `json:"search,omitempty"`
	ViewMode   string      `json:"viewMode,omitempty"`
}

// Empty reports whether the command carries no filter fields at all.
func (c FilterCommand) Empty() bool {
	return len(c.Categories) == 0 && c.PriceRange == nil &&
		c.Sort == "" && c.Search == nil && c.ViewMode == ""
}

type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message" binding:"required"`
}

// AgentReply is the agent service response shape. Optional structured fields
// are omitted when the routed agent has nothing to attach.
type AgentReply struct {
	Message          string           `json:"message"`
	AgentType        string           `json:"agent_type,omitempty"`
	Products         []ProductSummary `json:"products,omitempty"`
	Orders           []OrderSummary   `json:"orders,omitempty"`
	SuggestedActions []string         `json:"suggested_actions,omitempty"`
	FilterCommand    *FilterCommand   `json:"filter_command,omitempty"`
	ShouldNavigate   bool             `json:"should_navigate,omitempty"`
}

// Agent types understood specially by the display layer.
const (
	AgentTypeProductRecommendation = "product_recommendation"
	AgentTypeOrderTracking         = "order_tracking"
	AgentTypeCustomerSupport       = "customer_support"
)

// ═══════════════════════════════════════════════════════════
// Transcript
// ═══════════════════════════════════════════════════════════

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one transcript entry owned by the chat widget.
type ChatMessage struct {
	Role             ChatRole         `json:"role"`
	Content          string           `json:"content"`
	Timestamp        time.Time        `json:"timestamp"`
	AgentType        string           `json:"agentType,omitempty"`
	Products         []ProductSummary `json:"products,omitempty"`
	Orders           []OrderSummary   `json:"orders,omitempty"`
	SuggestedActions []string         `json:"suggestedActions,omitempty"`
}
