package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

type staticCategories []models.Category

func (s staticCategories) Categories() []models.Category { return s }

func newExtractionAgent() *ProductRecommendationAgent {
	return NewProductRecommendationAgent(nil, nil, staticCategories(defaultCategories))
}

func TestExtractCategoriesByName(t *testing.T) {
	a := newExtractionAgent()

	cmd := a.ExtractFilterCommand("Show me electronics and home decor")

	assert.Equal(t, models.FilterActionApply, cmd.Action)
	assert.Equal(t, []string{"electronics", "home-decor"}, cmd.Categories)
}

func TestExtractMaxPricePhrases(t *testing.T) {
	a := newExtractionAgent()

	for _, phrase := range []string{
		"show me headphones under $50",
		"headphones less than 50",
		"headphones below $50",
		"headphones cheaper than $50",
	} {
		cmd := a.ExtractFilterCommand(phrase)
		require.NotNil(t, cmd.PriceRange, phrase)
		assert.Equal(t, [2]float64{0, 50}, *cmd.PriceRange, phrase)
	}
}

func TestExtractPriceRangeWinsOverMaxPrice(t *testing.T) {
	a := newExtractionAgent()

	cmd := a.ExtractFilterCommand("fitness gear between $20 and $80")

	require.NotNil(t, cmd.PriceRange)
	assert.Equal(t, [2]float64{20, 80}, *cmd.PriceRange)
}

func TestExtractSortKeywords(t *testing.T) {
	a := newExtractionAgent()

	for phrase, want := range map[string]string{
		"show me the cheap ones":    "price-ascending",
		"most expensive watches":    "price-descending",
		"newest arrivals please":    "newest",
		"top rated kitchen gadgets": "rating-descending",
	} {
		cmd := a.ExtractFilterCommand(phrase)
		assert.Equal(t, want, cmd.Sort, phrase)
	}
}

func TestExtractSearchTermsSkipsStopwords(t *testing.T) {
	a := newExtractionAgent()

	cmd := a.ExtractFilterCommand("show me wireless headphones")

	require.NotNil(t, cmd.Search)
	assert.Equal(t, "wireless headphones", *cmd.Search)
}

func TestExtractViewKeywords(t *testing.T) {
	a := newExtractionAgent()

	assert.Equal(t, "compact", a.ExtractFilterCommand("use the compact list").ViewMode)
	assert.Equal(t, "grid", a.ExtractFilterCommand("view as tiles").ViewMode)
}

func TestProcessAttachesCommandOnlyWhenCriteriaExist(t *testing.T) {
	a := newExtractionAgent()

	reply := a.Process(context.Background(), 1, "show me fashion under $100")
	require.NotNil(t, reply.FilterCommand)
	assert.True(t, reply.ShouldNavigate)
	assert.Equal(t, models.AgentTypeProductRecommendation, reply.AgentType)
	assert.Equal(t, []string{"fashion"}, reply.FilterCommand.Categories)

	// A message with no extractable criteria must not trigger navigation.
	reply = a.Process(context.Background(), 1, "hi")
	assert.Nil(t, reply.FilterCommand)
	assert.False(t, reply.ShouldNavigate)
}
