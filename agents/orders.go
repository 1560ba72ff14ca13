package agents

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

const orderSystemPrompt = `You are an order tracking assistant for an e-commerce website.
Help users find information about their orders. Be helpful, concise, and security-conscious.
Format dates in a user-friendly way and order totals with proper currency formatting.
Mention that the user can click on any order card to view complete details in their account page.`

// OrderTrackingAgent answers order-status questions from the user's order
// history.
type OrderTrackingAgent struct {
	db  *gorm.DB
	llm LLM
}

func NewOrderTrackingAgent(db *gorm.DB, llm LLM) *OrderTrackingAgent {
	return &OrderTrackingAgent{db: db, llm: llm}
}

// UserOrders returns the user's orders newest first, shaped for the chat
// widget's order cards. Store failures yield an empty list, never an error
// surfaced to the chat user.
func (a *OrderTrackingAgent) UserOrders(ctx context.Context, userID int) []models.OrderSummary {
	if a.db == nil {
		return nil
	}

	var orders []models.Order
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, models.OrderSummary{
			OrderID: o.ID,
			Status:  o.Status,
			Date:    o.CreatedAt.Format("Jan 2, 2006"),
			Total:   o.Total,
		})
	}
	return summaries
}

func (a *OrderTrackingAgent) Process(ctx context.Context, userID int, message string) *models.AgentReply {
	orders := a.UserOrders(ctx, userID)

	var orderContext strings.Builder
	if len(orders) > 0 {
		orderContext.WriteString("Here are the recent orders for this user:\n")
		for i, o := range orders {
			fmt.Fprintf(&orderContext, "%d. Order #%d - Status: %s - Placed on: %s - Total: $%.2f\n",
				i+1, o.OrderID, o.Status, o.Date, o.Total)
		}
	} else {
		orderContext.WriteString("No orders found for this user.")
	}

	fallback := "I couldn't find any orders on your account yet."
	if len(orders) > 0 {
		fallback = fmt.Sprintf("You have %d order(s). Your latest order #%d is %s. Click any order card to see its full details in your account.",
			len(orders), orders[0].OrderID, orders[0].Status)
	}

	prompt := fmt.Sprintf("User: %s\n\nOrder information:\n%s\n\nProvide a helpful response about these orders, including order numbers, dates, and statuses.",
		message, orderContext.String())
	return &models.AgentReply{
		Message:          complete(ctx, a.llm, orderSystemPrompt, prompt, fallback),
		AgentType:        models.AgentTypeOrderTracking,
		Orders:           orders,
		SuggestedActions: []string{"View all orders in my account", "Track my latest order"},
	}
}
