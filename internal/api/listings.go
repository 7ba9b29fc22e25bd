package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Cache key formatting
	"time"     // Cache TTL

	"metronest/internal/domain"  // Importing domain models
	"metronest/internal/listing" // Listing service
	"metronest/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

const myListingsTTL = 60 * time.Second // Owner dashboard cache lifetime

// myListingsKey is the cache key for one owner's grouped listings
func myListingsKey(ownerID uint) string {
	return "mylistings:user:" + strconv.FormatUint(uint64(ownerID), 10)
}

// invalidateMyListings drops the owner's cached dashboard after any mutation
func invalidateMyListings(c *gin.Context, rdb *redis.Client, ownerID uint) {
	if err := utils.DeleteCache(c.Request.Context(), rdb, myListingsKey(ownerID)); err != nil {
		logrus.WithError(err).Warn("Listings cache invalidation failed") // Stale for at most the TTL
	}
}

// CreateRoomHandler creates a room listing owned by the authenticated user
func CreateRoomHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		var in listing.RoomInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		room, err := svc.CreateRoom(c.Request.Context(), in, ownerID)
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusCreated, room)
	}
}

// CreateFlatmateHandler creates a flatmate profile owned by the authenticated user
func CreateFlatmateHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		var in listing.FlatmateInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		fm, err := svc.CreateFlatmate(c.Request.Context(), in, ownerID)
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusCreated, fm)
	}
}

// CreatePGHandler creates a PG listing owned by the authenticated user
func CreatePGHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		var in listing.PGInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		pg, err := svc.CreatePG(c.Request.Context(), in, ownerID)
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusCreated, pg)
	}
}

// MyListingsHandler returns the authenticated user's listings grouped by kind
func MyListingsHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		var cached listing.Mine
		if hit, err := utils.GetCache(ctx, rdb, myListingsKey(ownerID), &cached); err != nil {
			logrus.WithError(err).Warn("Listings cache read failed")
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
		mine, err := svc.ListMine(ctx, ownerID)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := utils.SetCache(ctx, rdb, myListingsKey(ownerID), mine, myListingsTTL); err != nil {
			logrus.WithError(err).Warn("Listings cache write failed")
		}
		c.JSON(http.StatusOK, mine)
	}
}

// PatchListingHandler applies a partial update to one listing. The kind
// decides which payload shape is accepted.
func PatchListingHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		kind, err := domain.ParseKind(c.Param("kind"))
		if err != nil {
			writeError(c, err)
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var updated any
		switch kind {
		case domain.KindRoom:
			var p listing.RoomPatch
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			updated, err = svc.PatchRoom(c.Request.Context(), id, ownerID, p)
		case domain.KindFlatmate:
			var p listing.FlatmatePatch
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			updated, err = svc.PatchFlatmate(c.Request.Context(), id, ownerID, p)
		case domain.KindPG:
			var p listing.PGPatch
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			updated, err = svc.PatchPG(c.Request.Context(), id, ownerID, p)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteListingHandler removes one listing owned by the authenticated user
func DeleteListingHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		kind, err := domain.ParseKind(c.Param("kind"))
		if err != nil {
			writeError(c, err)
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), kind, id, ownerID); err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
	}
}

// ToggleActiveHandler flips one listing's visibility
func ToggleActiveHandler(svc *listing.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentUserID(c)
		if !ok {
			return
		}
		kind, err := domain.ParseKind(c.Param("kind"))
		if err != nil {
			writeError(c, err)
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		toggled, err := svc.ToggleActive(c.Request.Context(), kind, id, ownerID)
		if err != nil {
			writeError(c, err)
			return
		}
		invalidateMyListings(c, rdb, ownerID)
		c.JSON(http.StatusOK, toggled)
	}
}
