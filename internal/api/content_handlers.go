package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Titoluwa/kofc-5264/internal/content"
	"github.com/Titoluwa/kofc-5264/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// parseID coerces the path parameter to a numeric id. A malformed id behaves
// like a missing row rather than a distinct error class.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func respondContentError(c *gin.Context, log zerolog.Logger, s content.Schema, op string, err error) {
	var ve *content.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": s.Singular + " not found"})
	default:
		log.Error().Err(err).Str("resource", s.Name).Str("op", op).Msg("content operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op + " " + strings.ToLower(s.Singular)})
	}
}

// GET /{resource}
func ListContentHandler(log zerolog.Logger, s content.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.List(db.DB)
		if err != nil {
			respondContentError(c, log, s, "fetch", err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /{resource}/:id
func GetContentHandler(log zerolog.Logger, s content.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": s.Singular + " not found"})
			return
		}
		row, err := s.GetByID(db.DB, id)
		if err != nil {
			respondContentError(c, log, s, "fetch", err)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// POST /{resource}  [auth required]
func CreateContentHandler(log zerolog.Logger, s content.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		row, err := s.Create(db.DB, c.GetUint("userId"), payload)
		if err != nil {
			respondContentError(c, log, s, "create", err)
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// PATCH /{resource}/:id  [auth required]
func PatchContentHandler(log zerolog.Logger, s content.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": s.Singular + " not found"})
			return
		}
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		row, err := s.Patch(db.DB, id, payload)
		if err != nil {
			respondContentError(c, log, s, "update", err)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// DELETE /{resource}/:id  [auth required]
func DeleteContentHandler(log zerolog.Logger, s content.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": s.Singular + " not found"})
			return
		}
		if err := s.Remove(db.DB, id); err != nil {
			respondContentError(c, log, s, "delete", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
