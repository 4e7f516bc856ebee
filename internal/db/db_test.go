package db

import (
	"testing"

	"github.com/Titoluwa/kofc-5264/internal/config"
	"github.com/Titoluwa/kofc-5264/internal/subscriber"
	"github.com/Titoluwa/kofc-5264/internal/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dummy DSN for test (won't actually connect, just checks error path)
func TestInit_InvalidDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.DSN = "invalid-dsn-for-testing"
	err := Init(cfg)
	if err == nil {
		t.Errorf("expected error for invalid DSN, got nil")
	}
}

func TestSeed_CreatesAdminAndSample(t *testing.T) {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := Migrate(dbConn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := dbConn.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users: %v", err)
	}
	if err := dbConn.Exec("DELETE FROM newsletter_subscribers").Error; err != nil {
		t.Fatalf("failed to reset subscribers: %v", err)
	}

	if err := Seed(dbConn); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var admin user.User
	if err := dbConn.Where("email = ?", "admin@koc.local").First(&admin).Error; err != nil {
		t.Fatalf("admin user not seeded: %v", err)
	}
	if admin.Role != user.RoleAdmin {
		t.Errorf("expected admin role, got %s", admin.Role)
	}
	if err := user.CheckPassword(admin.PasswordHash, "admin123"); err != nil {
		t.Errorf("seeded admin password should verify: %v", err)
	}

	var sample subscriber.Subscriber
	if err := dbConn.Where("email = ?", "sample@example.com").First(&sample).Error; err != nil {
		t.Fatalf("sample subscriber not seeded: %v", err)
	}

	// Seed must be idempotent.
	if err := Seed(dbConn); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	var count int64
	dbConn.Model(&user.User{}).Where("email = ?", "admin@koc.local").Count(&count)
	if count != 1 {
		t.Errorf("expected single admin row, got %d", count)
	}
}
