package models

import "time"

// ═══════════════════════════════════════════════════════════
// Order Models (GORM)
// ═══════════════════════════════════════════════════════════

type Order struct {
	ID        int         `json:"id" gorm:"primaryKey"`
	UserID    int         `json:"userId" gorm:"not null;index:idx_orders_user"`
	Status    string      `json:"status" gorm:"not null;default:'processing';check:status IN ('processing', 'shipped', 'delivered')"`
	Total     float64     `json:"total" gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	OrderID   int     `json:"orderId" gorm:"not null;index:idx_order_items_order"`
	ProductID int     `json:"productId" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null;default:1"`
	Price     float64 `json:"price" gorm:"type:numeric(12,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderSummary is the compact shape the chat assistant embeds in replies.
type OrderSummary struct {
	OrderID int     `json:"order_id"`
	Status  string  `json:"status"`
	Date    string  `json:"date"`
	Total   float64 `json:"total"`
}
