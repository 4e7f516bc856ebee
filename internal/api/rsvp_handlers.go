package api

import (
	"net/http"
	"strconv"

	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/rsvp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type submitRSVPRequest struct {
	EventID    uint        `json:"eventId"`
	UserID     uint        `json:"userId"`
	Status     rsvp.Status `json:"status"`
	GuestCount int         `json:"guestCount"`
}

// POST /rsvp
func SubmitRSVPHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitRSVPRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.EventID == 0 || req.UserID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing eventId or userId"})
			return
		}
		if !rsvp.ValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid RSVP status"})
			return
		}
		if req.GuestCount <= 0 {
			req.GuestCount = 1
		}
		row, err := rsvp.Submit(db.DB, req.EventID, req.UserID, req.Status, req.GuestCount)
		if err != nil {
			log.Error().Err(err).Msg("failed to submit RSVP")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": row})
	}
}

// rsvpPair pulls the (eventId, userId) pair from query params.
func rsvpPair(c *gin.Context) (uint, uint, bool) {
	eventID, err1 := strconv.ParseUint(c.Query("eventId"), 10, 32)
	userID, err2 := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return uint(eventID), uint(userID), true
}

// GET /rsvp?eventId=1&userId=2
func GetRSVPHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, userID, ok := rsvpPair(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing eventId or userId"})
			return
		}
		row, err := rsvp.Get(db.DB, eventID, userID)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch RSVP")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": row})
	}
}

// DELETE /rsvp?eventId=1&userId=2
func DeleteRSVPHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, userID, ok := rsvpPair(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing eventId or userId"})
			return
		}
		if err := rsvp.Delete(db.DB, eventID, userID); err != nil {
			log.Error().Err(err).Msg("failed to delete RSVP")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "RSVP deleted successfully"})
	}
}
