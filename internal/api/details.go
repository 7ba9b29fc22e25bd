package api

import (
	"net/http" // HTTP status codes

	"metronest/internal/store" // Store backends

	"github.com/gin-gonic/gin" // Gin web framework
)

// Contact is the owner's reachable details attached to a listing view
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ownerContact resolves the owning user into public contact details.
// A missing owner degrades to placeholders rather than failing the view.
func ownerContact(c *gin.Context, src store.Source, ownerID uint) Contact {
	owner, err := src.UserByID(c.Request.Context(), ownerID)
	if err != nil {
		return Contact{Name: "Unknown", Phone: "N/A", Email: "N/A"}
	}
	return Contact{Name: owner.Name, Phone: owner.Phone, Email: owner.Email}
}

// RoomDetailsHandler returns one room listing with the owner's contact
func RoomDetailsHandler(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		src := sel.Active(c.Request.Context())
		room, err := src.RoomByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":    room,
			"contact": ownerContact(c, src, room.OwnerID),
		})
	}
}

// FlatmateDetailsHandler returns one flatmate profile with the owner's contact
func FlatmateDetailsHandler(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		src := sel.Active(c.Request.Context())
		fm, err := src.FlatmateByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":    fm,
			"contact": ownerContact(c, src, fm.UserID),
		})
	}
}

// PGDetailsHandler returns one PG listing with the owner's contact
func PGDetailsHandler(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		src := sel.Active(c.Request.Context())
		pg, err := src.PGByID(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data":    pg,
			"contact": ownerContact(c, src, pg.OwnerID),
		})
	}
}
