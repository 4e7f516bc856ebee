package api

import (
	"github.com/Titoluwa/kofc-5264/internal/auth"
	"github.com/Titoluwa/kofc-5264/internal/config"
	"github.com/Titoluwa/kofc-5264/internal/content"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))
	requireAuth := auth.RequireAuth(cfg)

	r.GET("/health", healthHandler)

	// Auth
	r.POST("/auth/login", LoginHandler(cfg, log))
	r.POST("/auth/logout", LogoutHandler(cfg))
	r.GET("/auth/me", MeHandler(cfg))

	// Content resources: reads are public, writes go through the auth gate.
	// Events get dedicated read handlers for the upcoming filter and RSVP
	// count enrichment.
	r.GET("/events", ListEventsHandler(log))
	r.GET("/events/:id", GetEventHandler(log))
	for _, s := range content.Schemas() {
		if s.Name != "events" {
			r.GET("/"+s.Name, ListContentHandler(log, s))
			r.GET("/"+s.Name+"/:id", GetContentHandler(log, s))
		}
		r.POST("/"+s.Name, requireAuth, CreateContentHandler(log, s))
		r.PATCH("/"+s.Name+"/:id", requireAuth, PatchContentHandler(log, s))
		r.DELETE("/"+s.Name+"/:id", requireAuth, DeleteContentHandler(log, s))
	}

	// Newsletter subscribers
	r.POST("/newsletter-subscribe", NewsletterSubscribeHandler(log))
	r.GET("/subscribers", requireAuth, ListSubscribersHandler(log))
	r.POST("/subscribers", CreateSubscriberHandler(log))
	r.DELETE("/subscribers/:id", requireAuth, DeleteSubscriberHandler(log))

	// RSVPs
	r.POST("/rsvp", SubmitRSVPHandler(log))
	r.GET("/rsvp", GetRSVPHandler(log))
	r.DELETE("/rsvp", DeleteRSVPHandler(log))

	return r
}
