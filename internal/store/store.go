package store

import (
	"context"
	"strings"

	"metronest/internal/domain" // Importing domain models
)

// Source is one listing backend. The MySQL store and the in-memory fallback
// both implement it so the services never care which one they talk to.
type Source interface {
	// Ping reports whether the backend is reachable right now
	Ping(ctx context.Context) error

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	UserByID(ctx context.Context, id uint) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)

	// Rooms
	CreateRoom(ctx context.Context, r *domain.Room) error
	RoomByID(ctx context.Context, id uint) (*domain.Room, error)
	RoomsByOwner(ctx context.Context, ownerID uint) ([]domain.Room, error)
	SearchRooms(ctx context.Context, f RoomFilters) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id, ownerID uint) error

	// Flatmates
	CreateFlatmate(ctx context.Context, f *domain.Flatmate) error
	FlatmateByID(ctx context.Context, id uint) (*domain.Flatmate, error)
	FlatmatesByOwner(ctx context.Context, ownerID uint) ([]domain.Flatmate, error)
	SearchFlatmates(ctx context.Context, f FlatmateFilters) ([]domain.Flatmate, error)
	UpdateFlatmate(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Flatmate, error)
	DeleteFlatmate(ctx context.Context, id, ownerID uint) error

	// PGs
	CreatePG(ctx context.Context, p *domain.PG) error
	PGByID(ctx context.Context, id uint) (*domain.PG, error)
	PGsByOwner(ctx context.Context, ownerID uint) ([]domain.PG, error)
	SearchPGs(ctx context.Context, f PGFilters) ([]domain.PG, error)
	UpdatePG(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.PG, error)
	DeletePG(ctx context.Context, id, ownerID uint) error
}

// RoomFilters are the optional room search criteria; zero values mean no constraint
type RoomFilters struct {
	Location string // Substring match on area name OR city, case-insensitive
	MinRent  *int   // Keep rooms with rent >= MinRent
	MaxRent  *int   // Keep rooms with rent <= MaxRent
	Gender   string // Exact match, or the stored value "any"
	RoomType string // Exact match
}

// Match applies the room predicates in-process. The MySQL store translates
// the same predicates to WHERE clauses; both must agree.
func (f RoomFilters) Match(r *domain.Room) bool {
	if !r.IsActive {
		return false
	}
	if !matchLocation(f.Location, r.Location) {
		return false
	}
	if f.MinRent != nil && r.Rent < *f.MinRent {
		return false
	}
	if f.MaxRent != nil && r.Rent > *f.MaxRent {
		return false
	}
	if f.Gender != "" && f.Gender != "any" && r.Gender != f.Gender && r.Gender != "any" {
		return false
	}
	if f.RoomType != "" && r.RoomType != f.RoomType {
		return false
	}
	return true
}

// FlatmateFilters are the optional flatmate search criteria
type FlatmateFilters struct {
	Location  string // Substring match on area name OR city, case-insensitive
	MinBudget *int   // Keep profiles whose budget.max >= MinBudget (range overlap)
	MaxBudget *int   // Keep profiles whose budget.min <= MaxBudget (range overlap)
	Gender    string // Matches preferences.gender, or the stored value "any"
}

// Match applies the flatmate predicates in-process. Budget filters use
// range-overlap semantics, not containment.
func (f FlatmateFilters) Match(fm *domain.Flatmate) bool {
	if !fm.IsActive {
		return false
	}
	if !matchLocation(f.Location, fm.Location) {
		return false
	}
	if f.MinBudget != nil && fm.Budget.Max < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && fm.Budget.Min > *f.MaxBudget {
		return false
	}
	if f.Gender != "" && f.Gender != "any" && fm.Preferences.Gender != f.Gender && fm.Preferences.Gender != "any" {
		return false
	}
	return true
}

// PGFilters are the optional PG search criteria
type PGFilters struct {
	Location string // Substring match on area name OR city, case-insensitive
	MinRent  *int   // Keep PGs where some room type's rent >= MinRent
	MaxRent  *int   // Keep PGs where some room type's rent <= MaxRent
	Gender   string // Exact match, or the stored value "both"
	Meals    *bool  // Exact match on the meals flag
}

// Match applies the PG predicates in-process. The rent range must be
// satisfied by at least one room type, not a single scalar.
func (f PGFilters) Match(p *domain.PG) bool {
	if !p.IsActive {
		return false
	}
	if !matchLocation(f.Location, p.Location) {
		return false
	}
	if f.MinRent != nil || f.MaxRent != nil {
		ok := false
		for _, rt := range p.RoomTypes {
			if f.MinRent != nil && rt.Rent < *f.MinRent {
				continue
			}
			if f.MaxRent != nil && rt.Rent > *f.MaxRent {
				continue
			}
			ok = true
			break
		}
		if !ok {
			return false
		}
	}
	if f.Gender != "" && f.Gender != "both" && p.Gender != f.Gender && p.Gender != "both" {
		return false
	}
	if f.Meals != nil && p.Meals != *f.Meals {
		return false
	}
	return true
}

// matchLocation checks the case-insensitive substring on area name OR city
func matchLocation(query string, loc domain.Location) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(loc.Name), q) ||
		strings.Contains(strings.ToLower(loc.City), q)
}
