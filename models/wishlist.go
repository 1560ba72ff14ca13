package models

// ═══════════════════════════════════════════════════════════
// Wishlist Item Model (GORM)
// ═══════════════════════════════════════════════════════════

type WishlistItem struct {
	ID        int `json:"id" gorm:"primaryKey"`
	UserID    int `json:"userId" gorm:"not null;index:idx_wishlist_items_user"`
	ProductID int `json:"productId" gorm:"not null"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

type WishlistItemWithProduct struct {
	WishlistItem
	Product *Product `json:"product"`
}

type AddWishlistItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}
