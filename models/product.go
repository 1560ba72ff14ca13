package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ═══════════════════════════════════════════════════════════
// JSONB helper type
// ═══════════════════════════════════════════════════════════

// StrList is a []string stored as a jsonb column.
type StrList []string

func (s *StrList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StrList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StrList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StrList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;index"`
	Slug        string     `json:"slug" gorm:"not null;uniqueIndex"`
	Description *string    `json:"description"`
	Price       float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OldPrice    *float64   `json:"oldPrice" gorm:"type:numeric(12,2)"`
	Rating      *float64   `json:"rating"`
	ReviewCount *int       `json:"reviewCount"`
	ImageURL    *string    `json:"imageUrl"`
	CategoryID  *int       `json:"categoryId" gorm:"index:idx_products_category"`
	IsNew       bool       `json:"isNew" gorm:"default:false"`
	IsTrending  bool       `json:"isTrending" gorm:"default:false"`
	CreatedAt   *time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        string   `json:"name" binding:"required" example:"Leather Tote Bag"`
	Slug        string   `json:"slug" binding:"required" example:"leather-tote-bag"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" binding:"required,min=0" example:"89.99"`
	OldPrice    *float64 `json:"oldPrice" binding:"omitempty,min=0"`
	Rating      *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount *int     `json:"reviewCount" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"imageUrl"`
	CategoryID  *int     `json:"categoryId"`
	IsNew       bool     `json:"isNew"`
	IsTrending  bool     `json:"isTrending"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// ProductSummary is the compact shape the chat assistant embeds in replies.
type ProductSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
