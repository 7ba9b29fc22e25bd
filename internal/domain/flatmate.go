package domain

// Budget is the min/max rent range a flatmate seeker can pay
type Budget struct {
	Min int `gorm:"not null" json:"min"` // Lower bound, 1000-100000
	Max int `gorm:"not null" json:"max"` // Upper bound, must be >= Min
}

// Preferences a flatmate seeker has about the shared accommodation
type Preferences struct {
	RoomType  []string `gorm:"serializer:json" json:"roomType"`  // Acceptable room types
	Lifestyle []string `gorm:"serializer:json" json:"lifestyle"` // Lifestyle tags
	Gender    string   `gorm:"default:any" json:"gender"`        // Preferred flatmate gender: male, female or any
}

// Flatmate roommate-seeking profile Model
type Flatmate struct {
	ID          uint        `gorm:"primaryKey" json:"id"`                                    // Primary key
	UserID      uint        `gorm:"index;not null" json:"userId"`                            // Owning user
	Age         int         `gorm:"not null" json:"age"`                                     // 18-100
	Gender      string      `gorm:"not null" json:"gender"`                                  // male or female
	Profession  string      `gorm:"not null" json:"profession"`                              // Up to 100 characters
	About       string      `gorm:"not null" json:"about"`                                   // 50-1000 characters
	Budget      Budget      `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`           // Rent range
	Location    Location    `gorm:"embedded;embeddedPrefix:location_" json:"location"`       // Area + city
	Preferences Preferences `gorm:"embedded;embeddedPrefix:preference_" json:"preferences"`  // Accommodation preferences
	IsActive    bool        `gorm:"default:true" json:"isActive"`                            // Hidden from search when false
	CreatedAt   int64       `gorm:"autoCreateTime:milli" json:"createdAt"`                   // Timestamp of creation in milliseconds
	UpdatedAt   int64       `gorm:"autoUpdateTime:milli" json:"updatedAt"`                   // Timestamp of last update in milliseconds
}

func (f *Flatmate) ListingKind() Kind    { return KindFlatmate }
func (f *Flatmate) ListingID() uint      { return f.ID }
func (f *Flatmate) Owner() uint          { return f.UserID }
func (f *Flatmate) Active() bool         { return f.IsActive }
func (f *Flatmate) CreatedMillis() int64 { return f.CreatedAt }
