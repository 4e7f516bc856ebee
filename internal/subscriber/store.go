package subscriber

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

// Status reports the effect of a subscribe call.
type Status string

const (
	StatusSubscribed        Status = "subscribed"
	StatusAlreadySubscribed Status = "already_subscribed"
	StatusResubscribed      Status = "resubscribed"
)

var ErrNotFound = errors.New("subscriber not found")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the basic shape check used
// by the public subscribe form.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Subscribe is idempotent in effect: an active subscriber stays a single row,
// an inactive one is reactivated in place, and only a new email inserts.
func Subscribe(db *gorm.DB, email string) (*Subscriber, Status, error) {
	var existing Subscriber
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsActive {
			return &existing, StatusAlreadySubscribed, nil
		}
		updates := map[string]any{"is_active": true, "unsubscribed_at": nil}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, "", err
		}
		existing.IsActive = true
		existing.UnsubscribedAt = nil
		return &existing, StatusResubscribed, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := Subscriber{Email: email, IsActive: true}
		if err := db.Create(&sub).Error; err != nil {
			return nil, "", err
		}
		return &sub, StatusSubscribed, nil
	default:
		return nil, "", err
	}
}

// List returns all subscribers, most recent first, including inactive rows.
func List(db *gorm.DB) ([]Subscriber, error) {
	var subs []Subscriber
	if err := db.Order("subscribed_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Unsubscribe performs the logical delete for a subscriber id.
func Unsubscribe(db *gorm.DB, id uint) error {
	var sub Subscriber
	err := db.First(&sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return db.Model(&sub).Updates(map[string]any{
		"is_active":       false,
		"unsubscribed_at": now,
	}).Error
}
