// Package agents is the conversational backend: an intent recognizer routes
// each chat message to a product recommendation, order tracking, or customer
// support agent, and the routed agent builds the structured reply the chat
// widget renders. All agents keep answering when the LLM or the store is
// unavailable, just with degraded content.
package agents

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

// Service routes chat messages to the specialized agents.
type Service struct {
	intents   *IntentRecognizer
	recommend *ProductRecommendationAgent
	orders    *OrderTrackingAgent
	support   *CustomerSupportAgent
}

func NewService(db *gorm.DB, llm LLM, categories CategorySource) *Service {
	return &Service{
		intents:   NewIntentRecognizer(llm),
		recommend: NewProductRecommendationAgent(db, llm, categories),
		orders:    NewOrderTrackingAgent(db, llm),
		support:   NewCustomerSupportAgent(llm, defaultFAQ),
	}
}

// Process handles one chat turn. userID is the widget's correlation key: an
// account id when the viewer is authenticated, otherwise an opaque anonymous
// identifier that maps onto the demo account.
func (s *Service) Process(ctx context.Context, userID, message string) (*models.AgentReply, error) {
	numericID := resolveUserID(userID)

	switch s.intents.Recognize(ctx, message) {
	case IntentProductSearch:
		return s.recommend.Process(ctx, numericID, message), nil
	case IntentOrderStatus:
		return s.orders.Process(ctx, numericID, message), nil
	case IntentCustomerSupport:
		return s.support.Process(ctx, numericID, message), nil
	}

	return &models.AgentReply{
		Message: "I'm not sure what you're looking for. Would you like to browse products, check an order, or get customer support?",
		SuggestedActions: []string{
			"Show me popular products",
			"Where is my order?",
			"I need help with a return",
		},
	}, nil
}

// resolveUserID converts the widget's opaque user identifier into a numeric
// account id. Anonymous or non-numeric identifiers fall back to the demo
// account so order lookups still demonstrate the flow.
func resolveUserID(userID string) int {
	if id, err := strconv.Atoi(userID); err == nil && id > 0 {
		return id
	}
	return 1
}
