package api

import (
	"net/http"
	"strconv"

	"github.com/Titoluwa/kofc-5264/internal/content"
	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/rsvp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type eventWithCount struct {
	content.Event
	RSVPCount int64 `json:"rsvpCount"`
}

// GET /events?upcoming=true&limit=N
//
// The RSVP count is a separate round trip from the event rows, so it may lag
// a concurrent submission by a moment.
func ListEventsHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := content.EventListOptions{
			Upcoming: c.Query("upcoming") == "true",
		}
		if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && limit > 0 {
			opts.Limit = limit
		}

		events, err := content.ListEvents(db.DB, opts)
		if err != nil {
			log.Error().Err(err).Msg("failed to list events")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}

		ids := make([]uint, len(events))
		for i, ev := range events {
			ids[i] = ev.ID
		}
		counts, err := rsvp.GoingCounts(db.DB, ids)
		if err != nil {
			log.Error().Err(err).Msg("failed to count RSVPs")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}

		out := make([]eventWithCount, len(events))
		for i, ev := range events {
			out[i] = eventWithCount{Event: ev, RSVPCount: counts[ev.ID]}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /events/:id
func GetEventHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		row, err := content.Events.GetByID(db.DB, id)
		if err != nil {
			respondContentError(c, log, content.Events, "fetch", err)
			return
		}
		ev := row.(*content.Event)
		counts, err := rsvp.GoingCounts(db.DB, []uint{ev.ID})
		if err != nil {
			log.Error().Err(err).Msg("failed to count RSVPs")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
			return
		}
		c.JSON(http.StatusOK, eventWithCount{Event: *ev, RSVPCount: counts[ev.ID]})
	}
}
