package domain

// PGRoomType is one room category offered by a PG with its own rent
type PGRoomType struct {
	Type      string `json:"type"`      // single, shared or triple
	Rent      int    `json:"rent"`      // Monthly rent for this category, 1000-50000
	Available int    `json:"available"` // Number of open beds, 0-50
}

// PG (paying guest hostel) listing Model
type PG struct {
	ID          uint         `gorm:"primaryKey" json:"id"`                              // Primary key
	Name        string       `gorm:"not null" json:"name"`                              // PG name, 5-100 characters
	Description string       `gorm:"not null" json:"description"`                       // 50-2000 characters
	Location    Location     `gorm:"embedded;embeddedPrefix:location_" json:"location"` // Area + city
	Amenities   []string     `gorm:"serializer:json" json:"amenities"`                  // Amenity tags
	Images      []string     `gorm:"serializer:json" json:"images"`                     // Image URIs in display order
	RoomTypes   []PGRoomType `gorm:"serializer:json" json:"roomTypes"`                  // Offered room categories
	Gender      string       `gorm:"not null" json:"gender"`                            // male, female or both
	Meals       bool         `gorm:"default:false" json:"meals"`                        // Whether meals are included
	Rules       []string     `gorm:"serializer:json" json:"rules"`                      // House rules
	OwnerID     uint         `gorm:"index;not null" json:"ownerId"`                     // Owning user
	IsActive    bool         `gorm:"default:true" json:"isActive"`                      // Hidden from search when false
	Rating      float64      `gorm:"default:0" json:"rating"`                           // 0-5, new listings start at 0
	Reviews     int          `gorm:"default:0" json:"reviews"`                          // Review count
	CreatedAt   int64        `gorm:"autoCreateTime:milli" json:"createdAt"`             // Timestamp of creation in milliseconds
	UpdatedAt   int64        `gorm:"autoUpdateTime:milli" json:"updatedAt"`             // Timestamp of last update in milliseconds
}

func (p *PG) ListingKind() Kind    { return KindPG }
func (p *PG) ListingID() uint      { return p.ID }
func (p *PG) Owner() uint          { return p.OwnerID }
func (p *PG) Active() bool         { return p.IsActive }
func (p *PG) CreatedMillis() int64 { return p.CreatedAt }
