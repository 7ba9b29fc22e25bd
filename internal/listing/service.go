package listing

import (
	"context"
	"strings"
	"time"

	"metronest/internal/domain" // Importing domain models
	"metronest/internal/store"  // Store backends

	"github.com/sirupsen/logrus" // Logging library
)

// dateLayout is the wire format for availableFrom
const dateLayout = "2006-01-02"

// Service is the owner-scoped create/read/update/delete layer for the
// three listing kinds. Every operation routes to whichever store is
// reachable at that moment.
type Service struct {
	sel *store.Selector // Backend routing
}

// NewService builds a listing service over the given selector
func NewService(sel *store.Selector) *Service {
	return &Service{sel: sel}
}

// Mine is the grouped owner view returned by ListMine
type Mine struct {
	Rooms     []domain.Room     `json:"rooms"`     // Owner's rooms, newest first
	Flatmates []domain.Flatmate `json:"flatmates"` // Owner's flatmate profiles, newest first
	PGs       []domain.PG       `json:"pgs"`       // Owner's PGs, newest first
}

// splitLocation turns free-text "area, city" input into its parts. No
// comma means the city comes back as "Unknown"; that quirk is load-bearing
// for existing data and stays.
func splitLocation(s string) domain.Location {
	area, city, found := strings.Cut(s, ",")
	loc := domain.Location{Name: strings.TrimSpace(area), City: "Unknown"}
	if found {
		if c := strings.TrimSpace(city); c != "" {
			loc.City = c
		}
	}
	return loc
}

// requireOwner verifies the owning user exists before a listing is created
func (s *Service) requireOwner(ctx context.Context, ownerID uint) error {
	_, err := s.sel.Active(ctx).UserByID(ctx, ownerID)
	return err
}

// RoomInput is the create payload for a room listing
type RoomInput struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Rent          int      `json:"rent" binding:"required"`
	Deposit       int      `json:"deposit"`
	Location      string   `json:"location" binding:"required"`
	RoomType      string   `json:"roomType" binding:"required"`
	Gender        string   `json:"gender" binding:"required"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	AvailableFrom string   `json:"availableFrom" binding:"required"`
}

func (in *RoomInput) validate() (*domain.ValidationError, time.Time) {
	v := &domain.ValidationError{}
	if len(strings.TrimSpace(in.Title)) < 10 {
		v.Add("title", "Title must be at least 10 characters")
	} else if len(in.Title) > 200 {
		v.Add("title", "Title must be less than 200 characters")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.Add("description", "Description is required")
	} else if len(in.Description) > 2000 {
		v.Add("description", "Description must be less than 2000 characters")
	}
	if in.Rent < 1000 || in.Rent > 100000 {
		v.Add("rent", "Rent must be between 1000 and 100000")
	}
	if in.Deposit < 0 || in.Deposit > 200000 {
		v.Add("deposit", "Deposit must be between 0 and 200000")
	}
	if strings.TrimSpace(in.Location) == "" {
		v.Add("location", "Location is required")
	}
	if !isRoomType(in.RoomType) {
		v.Add("roomType", "Room type must be single, shared or private")
	}
	if !isGender(in.Gender, "male", "female", "any") {
		v.Add("gender", "Gender must be male, female or any")
	}
	availableFrom, err := time.Parse(dateLayout, in.AvailableFrom)
	if err != nil {
		v.Add("availableFrom", "Available from must be a valid date (YYYY-MM-DD)")
	}
	return v, availableFrom
}

// CreateRoom validates and persists a room listing for the given owner
func (s *Service) CreateRoom(ctx context.Context, in RoomInput, ownerID uint) (*domain.Room, error) {
	v, availableFrom := in.validate()
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	room := &domain.Room{
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Rent:          in.Rent,
		Deposit:       in.Deposit,
		Location:      splitLocation(in.Location),
		Amenities:     in.Amenities,
		Images:        defaultImages(in.Images),
		RoomType:      in.RoomType,
		Gender:        in.Gender,
		AvailableFrom: availableFrom,
		OwnerID:       ownerID,
		IsActive:      true,
	}
	if err := s.sel.Active(ctx).CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"kind":     domain.KindRoom, // Listing kind
		"id":       room.ID,         // New listing ID
		"owner_id": ownerID,         // Owning user
	}).Info("Listing created") // Log listing creation
	return room, nil
}

// FlatmateInput is the create payload for a flatmate profile
type FlatmateInput struct {
	Age             int      `json:"age" binding:"required"`
	Gender          string   `json:"gender" binding:"required"`
	Profession      string   `json:"profession" binding:"required"`
	About           string   `json:"about" binding:"required"`
	BudgetMin       int      `json:"budgetMin" binding:"required"`
	BudgetMax       int      `json:"budgetMax" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Lifestyle       []string `json:"lifestyle"`
	PreferredGender string   `json:"preferredGender"`
}

func (in *FlatmateInput) validate() *domain.ValidationError {
	v := &domain.ValidationError{}
	if in.Age < 18 || in.Age > 100 {
		v.Add("age", "Age must be between 18 and 100")
	}
	if !isGender(in.Gender, "male", "female") {
		v.Add("gender", "Gender must be male or female")
	}
	if strings.TrimSpace(in.Profession) == "" {
		v.Add("profession", "Profession is required")
	} else if len(in.Profession) > 100 {
		v.Add("profession", "Profession must be less than 100 characters")
	}
	if len(strings.TrimSpace(in.About)) < 50 {
		v.Add("about", "About section must be at least 50 characters")
	} else if len(in.About) > 1000 {
		v.Add("about", "About section must be less than 1000 characters")
	}
	if in.BudgetMin < 1000 || in.BudgetMin > 100000 {
		v.Add("budgetMin", "Minimum budget must be between 1000 and 100000")
	}
	if in.BudgetMax < 1000 || in.BudgetMax > 100000 {
		v.Add("budgetMax", "Maximum budget must be between 1000 and 100000")
	}
	if in.BudgetMax < in.BudgetMin {
		v.Add("budget", "Maximum budget must be greater than or equal to minimum budget")
	}
	if strings.TrimSpace(in.Location) == "" {
		v.Add("location", "Location is required")
	}
	if in.PreferredGender != "" && !isGender(in.PreferredGender, "male", "female", "any") {
		v.Add("preferredGender", "Preferred gender must be male, female or any")
	}
	return v
}

// CreateFlatmate validates and persists a flatmate profile for the given owner.
// Nothing is written when any field fails, including the budget ordering.
func (s *Service) CreateFlatmate(ctx context.Context, in FlatmateInput, ownerID uint) (*domain.Flatmate, error) {
	if err := in.validate().Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	preferred := in.PreferredGender
	if preferred == "" {
		preferred = "any"
	}
	fm := &domain.Flatmate{
		UserID:     ownerID,
		Age:        in.Age,
		Gender:     in.Gender,
		Profession: strings.TrimSpace(in.Profession),
		About:      strings.TrimSpace(in.About),
		Budget:     domain.Budget{Min: in.BudgetMin, Max: in.BudgetMax},
		Location:   splitLocation(in.Location),
		Preferences: domain.Preferences{
			Lifestyle: in.Lifestyle,
			Gender:    preferred,
		},
		IsActive: true,
	}
	if err := s.sel.Active(ctx).CreateFlatmate(ctx, fm); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"kind":     domain.KindFlatmate, // Listing kind
		"id":       fm.ID,               // New listing ID
		"owner_id": ownerID,             // Owning user
	}).Info("Listing created") // Log listing creation
	return fm, nil
}

// PGInput is the create payload for a PG listing
type PGInput struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	Amenities   []string            `json:"amenities"`
	Images      []string            `json:"images"`
	RoomTypes   []domain.PGRoomType `json:"roomTypes" binding:"required"`
	Gender      string              `json:"gender" binding:"required"`
	Meals       bool                `json:"meals"`
	Rules       []string            `json:"rules"`
}

func (in *PGInput) validate() *domain.ValidationError {
	v := &domain.ValidationError{}
	if len(strings.TrimSpace(in.Name)) < 5 {
		v.Add("name", "PG name must be at least 5 characters")
	} else if len(in.Name) > 100 {
		v.Add("name", "PG name must be less than 100 characters")
	}
	if len(strings.TrimSpace(in.Description)) < 50 {
		v.Add("description", "Description must be at least 50 characters")
	} else if len(in.Description) > 2000 {
		v.Add("description", "Description must be less than 2000 characters")
	}
	if strings.TrimSpace(in.Location) == "" {
		v.Add("location", "Location is required")
	}
	if len(in.RoomTypes) == 0 {
		v.Add("roomTypes", "At least one room type is required")
	}
	for _, rt := range in.RoomTypes {
		if rt.Type != "single" && rt.Type != "shared" && rt.Type != "triple" {
			v.Add("roomTypes", "Room type must be single, shared or triple")
			break
		}
		if rt.Rent < 1000 || rt.Rent > 50000 {
			v.Add("roomTypes", "Room type rent must be between 1000 and 50000")
			break
		}
		if rt.Available < 0 || rt.Available > 50 {
			v.Add("roomTypes", "Available count must be between 0 and 50")
			break
		}
	}
	if !isGender(in.Gender, "male", "female", "both") {
		v.Add("gender", "Gender must be male, female or both")
	}
	return v
}

// CreatePG validates and persists a PG listing for the given owner
func (s *Service) CreatePG(ctx context.Context, in PGInput, ownerID uint) (*domain.PG, error) {
	if err := in.validate().Err(); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	pg := &domain.PG{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Location:    splitLocation(in.Location),
		Amenities:   in.Amenities,
		Images:      defaultImages(in.Images),
		RoomTypes:   in.RoomTypes,
		Gender:      in.Gender,
		Meals:       in.Meals,
		Rules:       in.Rules,
		OwnerID:     ownerID,
		IsActive:    true,
		Rating:      0, // New listings start with no rating
		Reviews:     0,
	}
	if err := s.sel.Active(ctx).CreatePG(ctx, pg); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"kind":     domain.KindPG, // Listing kind
		"id":       pg.ID,         // New listing ID
		"owner_id": ownerID,       // Owning user
	}).Info("Listing created") // Log listing creation
	return pg, nil
}

// ListMine returns every listing the owner has, grouped by kind
func (s *Service) ListMine(ctx context.Context, ownerID uint) (*Mine, error) {
	src := s.sel.Active(ctx)
	rooms, err := src.RoomsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	flatmates, err := src.FlatmatesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pgs, err := src.PGsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	if flatmates == nil {
		flatmates = []domain.Flatmate{}
	}
	if pgs == nil {
		pgs = []domain.PG{}
	}
	return &Mine{Rooms: rooms, Flatmates: flatmates, PGs: pgs}, nil
}

// Delete removes a listing; id and owner must both match or it is NotFound
func (s *Service) Delete(ctx context.Context, kind domain.Kind, id, ownerID uint) error {
	src := s.sel.Active(ctx)
	var err error
	switch kind {
	case domain.KindRoom:
		err = src.DeleteRoom(ctx, id, ownerID)
	case domain.KindFlatmate:
		err = src.DeleteFlatmate(ctx, id, ownerID)
	case domain.KindPG:
		err = src.DeletePG(ctx, id, ownerID)
	default:
		return domain.ErrInvalidArgument
	}
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"kind":     kind,    // Listing kind
		"id":       id,      // Deleted listing ID
		"owner_id": ownerID, // Owning user
	}).Info("Listing deleted") // Log listing deletion
	return nil
}

// ToggleActive flips a listing's visibility without deleting it. Two
// toggles in a row restore the original state. The lookup is owner-scoped,
// so someone else's listing toggles as NotFound.
func (s *Service) ToggleActive(ctx context.Context, kind domain.Kind, id, ownerID uint) (domain.Listing, error) {
	src := s.sel.Active(ctx)
	switch kind {
	case domain.KindRoom:
		cur, err := ownedRoom(ctx, src, id, ownerID)
		if err != nil {
			return nil, err
		}
		return logToggle(src.UpdateRoom(ctx, id, ownerID, map[string]any{"is_active": !cur.IsActive}))
	case domain.KindFlatmate:
		cur, err := ownedFlatmate(ctx, src, id, ownerID)
		if err != nil {
			return nil, err
		}
		return logToggle(src.UpdateFlatmate(ctx, id, ownerID, map[string]any{"is_active": !cur.IsActive}))
	case domain.KindPG:
		cur, err := ownedPG(ctx, src, id, ownerID)
		if err != nil {
			return nil, err
		}
		return logToggle(src.UpdatePG(ctx, id, ownerID, map[string]any{"is_active": !cur.IsActive}))
	}
	return nil, domain.ErrInvalidArgument
}

// logToggle adapts the typed update result and logs the state change
func logToggle[T domain.Listing](l T, err error) (domain.Listing, error) {
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"kind":      l.ListingKind(), // Listing kind
		"id":        l.ListingID(),   // Toggled listing ID
		"is_active": l.Active(),      // New visibility
	}).Info("Listing visibility toggled") // Log visibility change
	return l, nil
}

// Owner-scoped lookups: the listing is searched within the owner's own
// collection, never fetched globally and then checked

func ownedRoom(ctx context.Context, src store.Source, id, ownerID uint) (*domain.Room, error) {
	rooms, err := src.RoomsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func ownedFlatmate(ctx context.Context, src store.Source, id, ownerID uint) (*domain.Flatmate, error) {
	fms, err := src.FlatmatesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range fms {
		if fms[i].ID == id {
			return &fms[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func ownedPG(ctx context.Context, src store.Source, id, ownerID uint) (*domain.PG, error) {
	pgs, err := src.PGsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range pgs {
		if pgs[i].ID == id {
			return &pgs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// defaultImages substitutes the placeholder when no images were provided
func defaultImages(images []string) []string {
	if len(images) == 0 {
		return []string{"/placeholder.svg"}
	}
	return images
}

// isRoomType checks the room type enum
func isRoomType(s string) bool {
	return s == "single" || s == "shared" || s == "private"
}

// isGender checks a gender value against the allowed set for its kind
func isGender(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
