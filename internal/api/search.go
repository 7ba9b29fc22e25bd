package api

import (
	"encoding/json" // Raw cache payloads
	"net/http"      // HTTP status codes
	"strconv"       // Query parameter parsing
	"strings"       // String manipulation
	"time"          // Cache TTL

	"metronest/internal/domain" // Importing domain models
	"metronest/internal/search" // Search service
	"metronest/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

const searchCacheTTL = 60 * time.Second // Search pages are cached briefly

// City is one supported metro for the autocomplete endpoints
type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Locality is one named area with coordinates
type Locality struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Static autocomplete data; a geocoding backend would replace this
var cities = []City{
	{ID: "1", Name: "Bangalore", State: "Karnataka", Country: "India"},
	{ID: "2", Name: "Hyderabad", State: "Telangana", Country: "India"},
	{ID: "3", Name: "Pune", State: "Maharashtra", Country: "India"},
	{ID: "4", Name: "Mumbai", State: "Maharashtra", Country: "India"},
	{ID: "5", Name: "Delhi", State: "Delhi", Country: "India"},
	{ID: "6", Name: "Chennai", State: "Tamil Nadu", Country: "India"},
	{ID: "7", Name: "Gurgaon", State: "Haryana", Country: "India"},
	{ID: "8", Name: "Noida", State: "Uttar Pradesh", Country: "India"},
}

var localities = []Locality{
	{ID: "1", Name: "Koramangala", City: "Bangalore", Latitude: 12.9352, Longitude: 77.6245},
	{ID: "2", Name: "Indiranagar", City: "Bangalore", Latitude: 12.9719, Longitude: 77.6412},
	{ID: "3", Name: "HSR Layout", City: "Bangalore", Latitude: 12.9116, Longitude: 77.6370},
	{ID: "4", Name: "Whitefield", City: "Bangalore", Latitude: 12.9698, Longitude: 77.7500},
	{ID: "5", Name: "Banjara Hills", City: "Hyderabad", Latitude: 17.4126, Longitude: 78.4482},
	{ID: "6", Name: "Hitech City", City: "Hyderabad", Latitude: 17.4435, Longitude: 78.3772},
}

// CitiesHandler returns cities matching the optional q filter
func CitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.ToLower(c.Query("q"))
		out := []City{}
		for _, city := range cities {
			if q == "" || strings.Contains(strings.ToLower(city.Name), q) ||
				strings.Contains(strings.ToLower(city.State), q) {
				out = append(out, city)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// LocationsHandler returns localities matching the optional city and q filters
func LocationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.ToLower(c.Query("q"))
		cityFilter := strings.ToLower(c.Query("city"))
		out := []Locality{}
		for _, loc := range localities {
			if cityFilter != "" && strings.ToLower(loc.City) != cityFilter {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(loc.Name), q) {
				continue
			}
			out = append(out, loc)
		}
		c.JSON(http.StatusOK, out)
	}
}

// intQuery parses an optional numeric query parameter
func intQuery(c *gin.Context, name string) (*int, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &n, true
}

// boolQuery parses an optional boolean query parameter
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &b, true
}

// SearchHandler serves one listing kind's search endpoint with short-lived
// redis caching keyed on the full query string
func SearchHandler(svc *search.Service, rdb *redis.Client, kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		if s := c.Query("page"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			page = n
		}
		limit := search.DefaultLimit
		if s := c.Query("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}
		minRent, ok := intQuery(c, "minRent")
		if !ok {
			return
		}
		maxRent, ok := intQuery(c, "maxRent")
		if !ok {
			return
		}
		minBudget, ok := intQuery(c, "minBudget")
		if !ok {
			return
		}
		maxBudget, ok := intQuery(c, "maxBudget")
		if !ok {
			return
		}
		meals, ok := boolQuery(c, "meals")
		if !ok {
			return
		}
		f := search.Filters{
			Location:  c.Query("location"),
			MinRent:   minRent,
			MaxRent:   maxRent,
			MinBudget: minBudget,
			MaxBudget: maxBudget,
			Gender:    c.Query("gender"),
			RoomType:  c.Query("roomType"),
			Meals:     meals,
		}

		ctx := c.Request.Context()
		cacheKey := "search:" + string(kind) + ":" + c.Request.URL.RawQuery // One cache entry per distinct query
		var cached json.RawMessage                                          // Pages hold mixed listing types, so hits replay the stored JSON as-is
		if hit, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err != nil {
			logrus.WithError(err).Warn("Search cache read failed") // Cache trouble never fails the request
		} else if hit {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}

		result, err := svc.Search(ctx, kind, f, page, limit)
		if err != nil {
			writeError(c, err)
			return
		}
		if err := utils.SetCache(ctx, rdb, cacheKey, result, searchCacheTTL); err != nil {
			logrus.WithError(err).Warn("Search cache write failed")
		}
		c.JSON(http.StatusOK, result)
	}
}
