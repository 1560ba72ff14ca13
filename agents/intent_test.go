package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Complete(context.Context, string, string) (string, error) {
	return s.reply, s.err
}

func TestKeywordFallbackIntent(t *testing.T) {
	r := NewIntentRecognizer(nil)

	for message, want := range map[string]string{
		"where is my order?":          IntentOrderStatus,
		"when will my package arrive": IntentOrderStatus,
		"I need help with a return":   IntentCustomerSupport,
		"show me cheap headphones":    IntentProductSearch,
		"good morning":                IntentGeneral,
	} {
		assert.Equal(t, want, r.Recognize(context.Background(), message), message)
	}
}

func TestLLMIntentIsUsedWhenAvailable(t *testing.T) {
	r := NewIntentRecognizer(&scriptedLLM{reply: "order_status"})

	// The model's classification wins over the keyword heuristic.
	got := r.Recognize(context.Background(), "tell me about my last purchase")
	assert.Equal(t, IntentOrderStatus, got)
}

func TestLLMFailureFallsBackToKeywords(t *testing.T) {
	r := NewIntentRecognizer(&scriptedLLM{err: errors.New("model unreachable")})

	got := r.Recognize(context.Background(), "where is my order?")
	assert.Equal(t, IntentOrderStatus, got)
}

func TestServiceRoutesGeneralIntentToDefaultReply(t *testing.T) {
	svc := NewService(nil, nil, staticCategories(defaultCategories))

	reply, err := svc.Process(context.Background(), "anonymous", "good morning")
	require.NoError(t, err)
	assert.Empty(t, reply.AgentType)
	assert.NotEmpty(t, reply.SuggestedActions)
}

func TestServiceRoutesProductSearch(t *testing.T) {
	svc := NewService(nil, nil, staticCategories(defaultCategories))

	reply, err := svc.Process(context.Background(), "42", "show me electronics under $100")
	require.NoError(t, err)
	assert.Equal(t, "product_recommendation", reply.AgentType)
	require.NotNil(t, reply.FilterCommand)
	assert.True(t, reply.ShouldNavigate)
}
