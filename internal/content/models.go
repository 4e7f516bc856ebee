package content

import (
	"time"

	"github.com/Titoluwa/kofc-5264/internal/user"
)

// Entity is implemented by every content model managed by the generic CRUD
// engine.
type Entity interface {
	EntityID() uint
}

type Event struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Date        time.Time     `gorm:"not null" json:"date"`
	Time        string        `gorm:"size:64" json:"time"`
	Location    string        `gorm:"size:255" json:"location"`
	Image       *string       `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CreatedBy   uint          `json:"createdBy"`
	Creator     *user.Summary `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (e *Event) EntityID() uint { return e.ID }

type Page struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Slug      string        `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Title     string        `gorm:"size:255;not null" json:"title"`
	Content   string        `gorm:"type:text;not null" json:"content"`
	Image     *string       `json:"image"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	CreatedBy uint          `json:"createdBy"`
	Creator   *user.Summary `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (p *Page) EntityID() uint { return p.ID }

type Program struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Icon        *string       `gorm:"size:128" json:"icon"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	Order       int           `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CreatedBy   uint          `json:"createdBy"`
	Creator     *user.Summary `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (p *Program) EntityID() uint { return p.ID }

type Resource struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Category    string        `gorm:"size:128;not null" json:"category"`
	URL         *string       `gorm:"size:512" json:"url"`
	Content     *string       `gorm:"type:text" json:"content"`
	Image       *string       `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CreatedBy   uint          `json:"createdBy"`
	Creator     *user.Summary `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (r *Resource) EntityID() uint { return r.ID }

type Newsletter struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Subject   string        `gorm:"size:255;not null" json:"subject"`
	Content   string        `gorm:"type:text;not null" json:"content"`
	SentDate  *time.Time    `json:"sentDate"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	CreatedBy uint          `json:"createdBy"`
	Creator   *user.Summary `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (n *Newsletter) EntityID() uint { return n.ID }
