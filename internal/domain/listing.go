package domain

import "fmt"

// Kind discriminates the three listing types
type Kind string

// Listing kinds
const (
	KindRoom     Kind = "room"     // Room rental listing
	KindFlatmate Kind = "flatmate" // Flatmate-seeking profile
	KindPG       Kind = "pg"       // Paying guest hostel
)

// ParseKind validates a kind string coming from a request path or query
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRoom, KindFlatmate, KindPG:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: unknown listing kind %q", ErrInvalidArgument, s)
}

// Listing is the common view over Room, Flatmate and PG
type Listing interface {
	ListingKind() Kind    // Discriminant
	ListingID() uint      // Primary key
	Owner() uint          // Owning user ID
	Active() bool         // Visible in search
	CreatedMillis() int64 // Creation timestamp in milliseconds
}
