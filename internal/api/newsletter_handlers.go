package api

import (
	"errors"
	"net/http"

	"github.com/Titoluwa/kofc-5264/internal/db"
	"github.com/Titoluwa/kofc-5264/internal/subscriber"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// POST /newsletter-subscribe  [public form]
func NewsletterSubscribeHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		if !subscriber.ValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}

		sub, status, err := subscriber.Subscribe(db.DB, req.Email)
		if err != nil {
			log.Error().Err(err).Msg("newsletter subscription failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		switch status {
		case subscriber.StatusAlreadySubscribed:
			c.JSON(http.StatusOK, gin.H{"message": "Already subscribed", "status": status})
		case subscriber.StatusResubscribed:
			c.JSON(http.StatusOK, gin.H{"message": "Resubscribed successfully", "status": status, "subscriber": sub})
		default:
			c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully", "status": status, "subscriber": sub})
		}
	}
}

// GET /subscribers  [auth required]
func ListSubscribersHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := subscriber.List(db.DB)
		if err != nil {
			log.Error().Err(err).Msg("failed to list subscribers")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

// POST /subscribers  [admin surface, plain row response]
func CreateSubscriberHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		sub, status, err := subscriber.Subscribe(db.DB, req.Email)
		if err != nil {
			log.Error().Err(err).Msg("failed to subscribe")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		if status == subscriber.StatusSubscribed {
			c.JSON(http.StatusCreated, sub)
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

// DELETE /subscribers/:id  [auth required, logical unsubscribe]
func DeleteSubscriberHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		err := subscriber.Unsubscribe(db.DB, id)
		if errors.Is(err, subscriber.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to unsubscribe")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
