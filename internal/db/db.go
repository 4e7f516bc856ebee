package db

import (
	"errors"

	"github.com/Titoluwa/kofc-5264/internal/config"
	"github.com/Titoluwa/kofc-5264/internal/content"
	"github.com/Titoluwa/kofc-5264/internal/rsvp"
	"github.com/Titoluwa/kofc-5264/internal/subscriber"
	"github.com/Titoluwa/kofc-5264/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	return nil
}

// Migrate creates or updates every table, including the composite unique
// index backing the RSVP upsert.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&content.Event{},
		&content.Page{},
		&content.Program{},
		&content.Resource{},
		&content.Newsletter{},
		&subscriber.Subscriber{},
		&rsvp.RSVP{},
	)
}

// Seed creates the initial admin account and a sample newsletter subscriber.
// Existing rows are left alone, so Seed is safe to run on every startup.
func Seed(db *gorm.DB) error {
	var admin user.User
	err := db.Where("email = ?", "admin@koc.local").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := user.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin = user.User{
			Email:        "admin@koc.local",
			PasswordHash: hash,
			Name:         "Admin User",
			Role:         user.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var sample subscriber.Subscriber
	err = db.Where("email = ?", "sample@example.com").First(&sample).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sample = subscriber.Subscriber{Email: "sample@example.com", IsActive: true}
		return db.Create(&sample).Error
	}
	return err
}
