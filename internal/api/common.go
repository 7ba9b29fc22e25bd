package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // String to int conversion

	"metronest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// writeError translates a service error into the matching HTTP response
func writeError(c *gin.Context, err error) {
	var v *domain.ValidationError
	switch {
	case errors.As(err, &v):
		// Every offending field is reported at once
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "fields": v.Fields})
	case errors.Is(err, domain.ErrNotFound):
		// Not found and not owned are deliberately the same answer
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Request failed") // Log unexpected errors
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUserID pulls the authenticated user out of the request context
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID") // Set by the JWT middleware
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID.(uint), true
}

// pathID parses a numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
