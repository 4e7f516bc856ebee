package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Titoluwa/kofc-5264/internal/content"
	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/rsvp"

	"github.com/gin-gonic/gin"
)

func TestListEvents_WithRSVPCounts(t *testing.T) {
	setupAPIDB(t)
	admin := seedAdmin(t)

	created, err := content.Events.Create(db.DB, admin.ID, map[string]any{
		"title":       "Pancake Breakfast",
		"description": "fundraiser",
		"date":        "2025-03-01",
	})
	if err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	eventID := created.EntityID()
	if _, err := rsvp.Submit(db.DB, eventID, 10, rsvp.StatusGoing, 1); err != nil {
		t.Fatalf("seed rsvp failed: %v", err)
	}
	if _, err := rsvp.Submit(db.DB, eventID, 11, rsvp.StatusGoing, 2); err != nil {
		t.Fatalf("seed rsvp failed: %v", err)
	}
	if _, err := rsvp.Submit(db.DB, eventID, 12, rsvp.StatusMaybe, 1); err != nil {
		t.Fatalf("seed rsvp failed: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/events", ListEventsHandler(testLog))

	w := doRequest(t, r, "GET", "/events", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"rsvpCount":2`) {
		t.Errorf("expected going count of 2, got: %s", w.Body.String())
	}
	if !contains(w.Body.String(), `"email":"admin@koc.local"`) {
		t.Errorf("expected creator projection, got: %s", w.Body.String())
	}
}

func TestListEvents_UpcomingAndLimit(t *testing.T) {
	setupAPIDB(t)
	admin := seedAdmin(t)

	past := time.Now().UTC().AddDate(0, 0, -30).Format(time.RFC3339)
	soon := time.Now().UTC().AddDate(0, 0, 7).Format(time.RFC3339)
	later := time.Now().UTC().AddDate(0, 0, 30).Format(time.RFC3339)
	for title, date := range map[string]string{
		"Old Meeting": past,
		"Next Dinner": soon,
		"Summer Fair": later,
	} {
		if _, err := content.Events.Create(db.DB, admin.ID, map[string]any{
			"title": title, "description": "d", "date": date,
		}); err != nil {
			t.Fatalf("seed event failed: %v", err)
		}
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/events", ListEventsHandler(testLog))

	w := doRequest(t, r, "GET", "/events?upcoming=true&limit=1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !contains(body, "Next Dinner") {
		t.Errorf("expected nearest upcoming event, got: %s", body)
	}
	if contains(body, "Old Meeting") || contains(body, "Summer Fair") {
		t.Errorf("upcoming+limit should exclude other events, got: %s", body)
	}
}

func TestGetEvent_WithRSVPCount(t *testing.T) {
	setupAPIDB(t)
	admin := seedAdmin(t)

	created, err := content.Events.Create(db.DB, admin.ID, map[string]any{
		"title":       "Fish Fry",
		"description": "lent",
		"date":        "2025-02-21",
	})
	if err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
	if _, err := rsvp.Submit(db.DB, created.EntityID(), 5, rsvp.StatusGoing, 3); err != nil {
		t.Fatalf("seed rsvp failed: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/events/:id", GetEventHandler(testLog))

	w := doRequest(t, r, "GET", fmt.Sprintf("/events/%d", created.EntityID()), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), `"rsvpCount":1`) {
		t.Errorf("expected going count, got: %s", w.Body.String())
	}

	w = doRequest(t, r, "GET", "/events/99999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing event, got %d", w.Code)
	}
}
