package domain

import "time"

// Location is the area/city pair embedded in every listing
type Location struct {
	Name string `gorm:"not null" json:"name"` // Area or locality name
	City string `gorm:"not null" json:"city"` // City name
}

// Room rental listing Model
type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	Title         string    `gorm:"not null" json:"title"`                          // Listing title, at least 10 characters
	Description   string    `gorm:"not null" json:"description"`                    // Listing description
	Rent          int       `gorm:"not null" json:"rent"`                           // Monthly rent, 1000-100000
	Deposit       int       `gorm:"not null" json:"deposit"`                        // Security deposit, 0-200000
	Location      Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"` // Area + city
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`               // Amenity tags
	Images        []string  `gorm:"serializer:json" json:"images"`                  // Image URIs in display order
	RoomType      string    `gorm:"not null" json:"roomType"`                       // single, shared or private
	Gender        string    `gorm:"not null" json:"gender"`                         // male, female or any
	AvailableFrom time.Time `json:"availableFrom"`                                  // First date the room is available
	OwnerID       uint      `gorm:"index;not null" json:"ownerId"`                  // Owning user
	IsActive      bool      `gorm:"default:true" json:"isActive"`                   // Hidden from search when false
	CreatedAt     int64     `gorm:"autoCreateTime:milli" json:"createdAt"`          // Timestamp of creation in milliseconds
	UpdatedAt     int64     `gorm:"autoUpdateTime:milli" json:"updatedAt"`          // Timestamp of last update in milliseconds
}

func (r *Room) ListingKind() Kind    { return KindRoom }
func (r *Room) ListingID() uint      { return r.ID }
func (r *Room) Owner() uint          { return r.OwnerID }
func (r *Room) Active() bool         { return r.IsActive }
func (r *Room) CreatedMillis() int64 { return r.CreatedAt }
