package subscriber

import (
	"time"
)

// Subscriber rows are never physically deleted: unsubscribe flips IsActive
// and stamps UnsubscribedAt, resubscribe reverses both on the same row.
type Subscriber struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
	SubscribedAt   time.Time  `gorm:"autoCreateTime" json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt"`
}

func (Subscriber) TableName() string { return "newsletter_subscribers" }
