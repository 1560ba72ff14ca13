package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportFAQHitWithoutLLM(t *testing.T) {
	agent := NewCustomerSupportAgent(nil, nil)

	reply := agent.Process(context.Background(), 0, "return")

	require.NotNil(t, reply)
	assert.Contains(t, reply.Message, "30 days")
	assert.NotEmpty(t, reply.SuggestedActions)
}

func TestSupportFAQCoversRefundsAndTracking(t *testing.T) {
	agent := NewCustomerSupportAgent(nil, nil)

	refund := agent.Process(context.Background(), 0, "refund")
	assert.Contains(t, refund.Message, "3-5 business days")

	tracking := agent.Process(context.Background(), 0, "track my order")
	assert.Contains(t, tracking.Message, "Track Package")
}

func TestSupportFallsBackToApologyOnUnknownTopic(t *testing.T) {
	agent := NewCustomerSupportAgent(nil, nil)

	reply := agent.Process(context.Background(), 0, "my gravatar is upside down")

	assert.Contains(t, reply.Message, "support team")
}

func TestSupportCustomFAQOverridesDefault(t *testing.T) {
	agent := NewCustomerSupportAgent(nil, []FAQEntry{
		{Question: "What are your store hours?", Answer: "We never close."},
	})

	hit := agent.Process(context.Background(), 0, "store hours")
	assert.Equal(t, "We never close.", hit.Message)

	miss := agent.Process(context.Background(), 0, "return")
	assert.NotContains(t, miss.Message, "30 days")
}
