package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Name      string `gorm:"not null" json:"name"`                  // Display name
	Email     string `gorm:"uniqueIndex;not null" json:"email"`     // Unique email address
	Phone     string `gorm:"uniqueIndex;not null" json:"phone"`     // Unique phone number
	Password  string `gorm:"not null" json:"-"`                     // Bcrypt hash, never serialized
	Verified  bool   `gorm:"default:false" json:"verified"`         // Verification flag
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updatedAt"` // Timestamp of last update in milliseconds
}
