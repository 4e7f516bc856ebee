package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a stored row.
var ErrNotFound = errors.New("record not found")

// ValidationError reports missing or malformed input. Handlers translate it
// to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// List returns all rows of the schema's type in its type-specific order, each
// with the creator projection attached.
func (s Schema) List(db *gorm.DB) (any, error) {
	out := s.NewSlice()
	if err := db.Preload("Creator").Order(s.OrderBy).Find(out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single row with its creator projection. A missing row
// yields ErrNotFound.
func (s Schema) GetByID(db *gorm.DB, id uint) (Entity, error) {
	m := s.New()
	err := db.Preload("Creator").First(m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create validates the payload, stores the row with the calling identity as
// creator, and returns the created row including the creator projection.
func (s Schema) Create(db *gorm.DB, creatorID uint, payload map[string]any) (Entity, error) {
	vals, err := s.createValues(payload)
	if err != nil {
		return nil, err
	}
	vals["createdBy"] = creatorID

	// Bind the normalized values into the model through its JSON tags, which
	// the schema field names mirror.
	m := s.New()
	buf, err := json.Marshal(vals)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(buf, m); err != nil {
		return nil, fmt.Errorf("bind %s payload: %w", s.Singular, err)
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(db, m.EntityID())
}

// Patch applies a partial update: fields present in the payload overwrite the
// stored values, absent fields stay untouched. Returns the updated row.
func (s Schema) Patch(db *gorm.DB, id uint, payload map[string]any) (Entity, error) {
	m := s.New()
	err := db.First(m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	updates, err := s.patchValues(payload)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(db, id)
}

// Remove deletes the row. Removing an id that does not exist (or was already
// removed) yields ErrNotFound, never a silent success.
func (s Schema) Remove(db *gorm.DB, id uint) error {
	m := s.New()
	err := db.First(m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return db.Delete(m).Error
}

// EventListOptions filters the public events listing.
type EventListOptions struct {
	Upcoming bool
	Limit    int
}

// ListEvents is the typed events listing used by the public feed: optional
// upcoming filter (date ascending) and row limit, creator preloaded.
func ListEvents(db *gorm.DB, opts EventListOptions) ([]Event, error) {
	q := db.Preload("Creator")
	if opts.Upcoming {
		q = q.Where("date >= ?", time.Now().UTC()).Order("date asc")
	} else {
		q = q.Order("date desc")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	var events []Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
