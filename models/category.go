package models

// ═══════════════════════════════════════════════════════════
// Main Category Model (GORM)
// ═══════════════════════════════════════════════════════════

type Category struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"not null;uniqueIndex"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (Category) TableName() string {
	return "categories"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required" example:"Electronics"`
	Slug        string  `json:"slug" binding:"required" example:"electronics"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}
