package agents

import (
	"context"
	"strings"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

const supportSystemPrompt = `You are a customer support assistant for an e-commerce website.
Help users with issues like returns, refunds, product problems, and general inquiries.
Be empathetic, helpful, and solutions-oriented. For complex problems, suggest connecting
with a human representative when appropriate.`

// FAQEntry is one canned question/answer pair consulted before the LLM.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CustomerSupportAgent handles returns, refunds and general problems.
type CustomerSupportAgent struct {
	llm LLM
	faq []FAQEntry
}

// NewCustomerSupportAgent builds the support agent. A nil faq falls back to
// the built-in knowledge base.
func NewCustomerSupportAgent(llm LLM, faq []FAQEntry) *CustomerSupportAgent {
	if faq == nil {
		faq = defaultFAQ
	}
	return &CustomerSupportAgent{llm: llm, faq: faq}
}

// defaultFAQ answers the common storefront questions without any LLM.
var defaultFAQ = []FAQEntry{
	{
		Question: "How do I return an item?",
		Answer:   "To return an item, go to your order history, select the order, and click 'Return Item'. Follow the instructions to print a return label. You have 30 days from the delivery date to initiate a return.",
	},
	{
		Question: "When will I receive my refund?",
		Answer:   "Refunds are processed within 3-5 business days after we receive your returned item. The funds may take an additional 2-7 business days to appear in your account depending on your payment method and financial institution.",
	},
	{
		Question: "Can I change my shipping address?",
		Answer:   "You can change your shipping address if your order hasn't been processed yet. Go to your order details and select 'Edit Shipping Information'. If your order has already been shipped, you'll need to contact customer support for assistance.",
	},
	{
		Question: "Do you ship internationally?",
		Answer:   "Yes, we ship to most countries worldwide. International shipping costs and delivery times vary by location. You can see the shipping options and costs during checkout before finalizing your purchase.",
	},
	{
		Question: "How do I track my order?",
		Answer:   "To track your order, log into your account, go to 'Order History', and select the order you want to track. Click on 'Track Package' to see the current status and estimated delivery date.",
	},
}

// searchFAQ returns the first answer whose question contains the query.
func (a *CustomerSupportAgent) searchFAQ(query string) string {
	q := strings.ToLower(query)
	for _, item := range a.faq {
		if strings.Contains(strings.ToLower(item.Question), q) {
			return item.Answer
		}
	}
	return ""
}

func (a *CustomerSupportAgent) Process(ctx context.Context, _ int, message string) *models.AgentReply {
	var faqContext string
	fallback := "I'm sorry you're running into trouble. Our support team can help with returns, refunds and product issues. Would you like me to connect you?"
	if answer := a.searchFAQ(message); answer != "" {
		faqContext = "Relevant FAQ: " + answer + "\n\n"
		fallback = answer
	}

	prompt := "User support request: " + message + "\n\n" + faqContext + "Provide a helpful customer support response."
	return &models.AgentReply{
		Message:          complete(ctx, a.llm, supportSystemPrompt, prompt, fallback),
		AgentType:        models.AgentTypeCustomerSupport,
		SuggestedActions: []string{"Contact support team", "Check order status", "Start return process"},
	}
}
