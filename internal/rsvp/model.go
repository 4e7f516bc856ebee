package rsvp

import (
	"time"
)

type Status string

const (
	StatusGoing    Status = "going"
	StatusMaybe    Status = "maybe"
	StatusNotGoing Status = "not_going"
)

// ValidStatus reports whether s is one of the accepted RSVP states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusGoing, StatusMaybe, StatusNotGoing:
		return true
	}
	return false
}

// RSVP ties a user to an event. The composite unique index is what makes the
// submit upsert atomic: concurrent double-submits for the same pair resolve
// to a single row at the storage layer.
type RSVP struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EventID    uint      `gorm:"not null;uniqueIndex:idx_rsvps_event_user" json:"eventId"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_rsvps_event_user" json:"userId"`
	Status     Status    `gorm:"type:varchar(16);not null" json:"status"`
	GuestCount int       `gorm:"not null;default:1" json:"guestCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
