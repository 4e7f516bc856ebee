package rsvp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Submit records or overwrites the RSVP for an (event, user) pair as a single
// ON CONFLICT upsert, not a read-then-write in the handler.
func Submit(db *gorm.DB, eventID, userID uint, status Status, guestCount int) (*RSVP, error) {
	row := RSVP{
		EventID:    eventID,
		UserID:     userID,
		Status:     status,
		GuestCount: guestCount,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "guest_count", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	// The conflict path does not report the surviving row's id, so read it back.
	var out RSVP
	if err := db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns the RSVP for an (event, user) pair, or nil when none exists.
func Get(db *gorm.DB, eventID, userID uint) (*RSVP, error) {
	var row RSVP
	err := db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes the RSVP for an (event, user) pair if one exists.
func Delete(db *gorm.DB, eventID, userID uint) error {
	return db.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&RSVP{}).Error
}

// GoingCounts returns the number of "going" RSVPs for each of the given
// events. Events without RSVPs are absent from the map.
func GoingCounts(db *gorm.DB, eventIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}
	type row struct {
		EventID uint
		Total   int64
	}
	var rows []row
	err := db.Model(&RSVP{}).
		Select("event_id, count(*) as total").
		Where("event_id IN ? AND status = ?", eventIDs, StatusGoing).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.EventID] = r.Total
	}
	return counts, nil
}
