package agents

import (
	"context"
	"strings"
)

// Intents the router understands.
const (
	IntentProductSearch   = "product_search"
	IntentOrderStatus     = "order_status"
	IntentCustomerSupport = "customer_support"
	IntentGeneral         = "general"
)

const intentSystemPrompt = `You are an intent classification assistant for an e-commerce website.
Identify the main intent of the user message and classify it into one of these categories:
- order_status: the user wants to check the status of an order or learn about past orders
- customer_support: the user needs help with a problem or question
- product_search: the user wants to find or explore products
- general: the message doesn't clearly fit any of the above

Respond with ONLY ONE of these exact terms: product_search, order_status, customer_support, or general.`

// IntentRecognizer classifies a user message. With an LLM configured it asks
// the model; otherwise (or on model failure) it falls back to keyword
// matching so the chat surface keeps working offline.
type IntentRecognizer struct {
	llm LLM
}

func NewIntentRecognizer(llm LLM) *IntentRecognizer {
	return &IntentRecognizer{llm: llm}
}

func (r *IntentRecognizer) Recognize(ctx context.Context, message string) string {
	fallback := keywordIntent(message)
	if r.llm == nil {
		return fallback
	}

	out, err := r.llm.Complete(ctx, intentSystemPrompt,
		"Classify this message into one of the allowed categories: "+message)
	if err != nil {
		return fallback
	}

	out = strings.ToLower(out)
	switch {
	case strings.Contains(out, IntentOrderStatus):
		return IntentOrderStatus
	case strings.Contains(out, IntentProductSearch):
		return IntentProductSearch
	case strings.Contains(out, IntentCustomerSupport):
		return IntentCustomerSupport
	}
	return IntentGeneral
}

func keywordIntent(message string) string {
	m := strings.ToLower(message)
	switch {
	case containsAny(m, "order", "package", "delivery", "shipped", "arrive", "tracking"):
		return IntentOrderStatus
	case containsAny(m, "return", "refund", "help", "problem", "complaint", "broken"):
		return IntentCustomerSupport
	case containsAny(m, "show", "find", "looking", "browse", "buy", "product", "cheap",
		"price", "under", "between", "newest", "popular", "recommend"):
		return IntentProductSearch
	}
	return IntentGeneral
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
