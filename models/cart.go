package models

// ═══════════════════════════════════════════════════════════
// Cart Item Model (GORM)
// ═══════════════════════════════════════════════════════════

type CartItem struct {
	ID        int `json:"id" gorm:"primaryKey"`
	UserID    int `json:"userId" gorm:"not null;index:idx_cart_items_user"`
	ProductID int `json:"productId" gorm:"not null"`
	Quantity  int `json:"quantity" gorm:"not null;default:1;check:quantity >= 1"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartItemWithProduct joins the cart row with its product for storefront responses.
type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product"`
}

type AddCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
