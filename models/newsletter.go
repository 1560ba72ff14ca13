package models

import "time"

// NewsletterSubscriber represents a newsletter signup
type NewsletterSubscriber struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// SubscribeRequest represents the payload for subscribing to the newsletter
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
