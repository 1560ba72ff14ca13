package agents

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

const recommendSystemPrompt = `You are a product recommendation assistant for an e-commerce website.
Understand what products the user might be interested in and provide helpful recommendations.
Be conversational but concise. When the user is searching or browsing with specific criteria,
tell them you're updating their view to show matching products.`

// CategorySource supplies the category list used for slug extraction and the
// category-name join on product summaries.
type CategorySource interface {
	Categories() []models.Category
}

// ProductRecommendationAgent extracts filter criteria from free text, searches
// the catalog, and builds a reply carrying an optional filter command for the
// listing view.
type ProductRecommendationAgent struct {
	db         *gorm.DB
	llm        LLM
	categories CategorySource
}

func NewProductRecommendationAgent(db *gorm.DB, llm LLM, categories CategorySource) *ProductRecommendationAgent {
	return &ProductRecommendationAgent{db: db, llm: llm, categories: categories}
}

var (
	maxPricePattern   = regexp.MustCompile(`(?:under|less than|below|cheaper than)\s+\$?(\d+)`)
	priceRangePattern = regexp.MustCompile(`between\s+\$?(\d+)\s+and\s+\$?(\d+)`)
	punctPattern      = regexp.MustCompile(`[^\w\s]`)
)

// Words carrying no search signal; stripped before the residual terms become
// the search query.
var searchSkipWords = map[string]bool{
	"show": true, "display": true, "find": true, "looking": true, "for": true,
	"me": true, "want": true, "need": true, "products": true, "items": true,
	"under": true, "over": true, "between": true, "and": true, "less": true,
	"than": true, "more": true, "cheap": true, "expensive": true,
	"newest": true, "popular": true, "best": true,
}

// ExtractFilterCommand derives a filter command from a user message:
// category names become slug selections, price phrases become a range, sort
// and view keywords map onto the listing's enums, and the residual words
// (minus stopwords) become the search term.
func (a *ProductRecommendationAgent) ExtractFilterCommand(message string) models.FilterCommand {
	m := strings.ToLower(message)
	cmd := models.FilterCommand{Action: models.FilterActionApply}

	for _, category := range a.categoryList() {
		if strings.Contains(m, strings.ToLower(category.Name)) {
			cmd.Categories = append(cmd.Categories, category.Slug)
		}
	}

	if match := maxPricePattern.FindStringSubmatch(m); match != nil {
		if max, err := strconv.ParseFloat(match[1], 64); err == nil {
			cmd.PriceRange = &[2]float64{0, max}
		}
	}
	if match := priceRangePattern.FindStringSubmatch(m); match != nil {
		min, errMin := strconv.ParseFloat(match[1], 64)
		max, errMax := strconv.ParseFloat(match[2], 64)
		if errMin == nil && errMax == nil {
			cmd.PriceRange = &[2]float64{min, max}
		}
	}

	switch {
	case containsAny(m, "cheap", "lowest price", "price low"):
		cmd.Sort = "price-ascending"
	case containsAny(m, "expensive", "highest price", "price high"):
		cmd.Sort = "price-descending"
	case containsAny(m, "newest", "latest", "recent"):
		cmd.Sort = "newest"
	case containsAny(m, "popular", "best rated", "top rated"):
		cmd.Sort = "rating-descending"
	}

	var searchTerms []string
	for _, word := range strings.Fields(m) {
		word = punctPattern.ReplaceAllString(word, "")
		if word != "" && !searchSkipWords[word] && len(word) > 2 {
			searchTerms = append(searchTerms, word)
		}
	}
	if len(searchTerms) > 0 {
		search := strings.Join(searchTerms, " ")
		cmd.Search = &search
	}

	switch {
	case containsAny(m, "compact", "list"):
		cmd.ViewMode = "compact"
	case containsAny(m, "grid", "tiles"):
		cmd.ViewMode = "grid"
	}

	return cmd
}

// SearchProducts runs a case-insensitive substring match against product
// names and descriptions, capped at 5 results. Returns an empty slice on any
// store failure: a degraded recommendation still answers.
func (a *ProductRecommendationAgent) SearchProducts(ctx context.Context, query string) []models.ProductSummary {
	if a.db == nil {
		return nil
	}

	var products []models.Product
	pattern := "%" + strings.ToLower(query) + "%"
	err := a.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(5).
		Find(&products).Error
	if err != nil {
		return nil
	}

	nameByID := make(map[int]string)
	for _, c := range a.categoryList() {
		nameByID[c.ID] = c.Name
	}

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		category := "Uncategorized"
		if p.CategoryID != nil {
			if name, ok := nameByID[*p.CategoryID]; ok {
				category = name
			}
		}
		summaries = append(summaries, models.ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: category,
		})
	}
	return summaries
}

// Process builds the full recommendation reply. The filter command rides
// along only when it actually carries criteria, and should_navigate follows
// the same condition.
func (a *ProductRecommendationAgent) Process(ctx context.Context, userID int, message string) *models.AgentReply {
	cmd := a.ExtractFilterCommand(message)
	shouldNavigate := !cmd.Empty()

	products := a.SearchProducts(ctx, message)

	var contextLines strings.Builder
	if len(products) > 0 {
		contextLines.WriteString("Based on the query, these products might be relevant:\n")
		for i, p := range products {
			fmt.Fprintf(&contextLines, "%d. %s - $%.2f - %s\n", i+1, p.Name, p.Price, p.Category)
		}
	}

	fallback := "Here's what I found for you."
	if shouldNavigate {
		fallback = "I'm updating your product view to show matching items."
	}

	prompt := fmt.Sprintf("User: %s\n\nAvailable products: %s\n\nProvide a helpful response about these products.",
		message, contextLines.String())
	reply := &models.AgentReply{
		Message:        complete(ctx, a.llm, recommendSystemPrompt, prompt, fallback),
		AgentType:      models.AgentTypeProductRecommendation,
		Products:       products,
		ShouldNavigate: shouldNavigate,
	}
	if shouldNavigate {
		reply.FilterCommand = &cmd
	}
	return reply
}

func (a *ProductRecommendationAgent) categoryList() []models.Category {
	if a.categories != nil {
		if cats := a.categories.Categories(); len(cats) > 0 {
			return cats
		}
	}
	return defaultCategories
}

// defaultCategories keeps extraction working before the catalog has been
// seeded or when the store is unreachable.
var defaultCategories = []models.Category{
	{ID: 1, Name: "Books", Slug: "books"},
	{ID: 2, Name: "Fashion", Slug: "fashion"},
	{ID: 3, Name: "Fitness", Slug: "fitness"},
	{ID: 4, Name: "Electronics", Slug: "electronics"},
	{ID: 5, Name: "Home Decor", Slug: "home-decor"},
	{ID: 6, Name: "Beauty", Slug: "beauty"},
}
