package listing

import (
	"context"
	"strings"
	"time"

	"metronest/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// Partial updates. Only fields the caller sent are touched; everything
// sent is re-validated with the same bounds as create.

// RoomPatch is the partial-update payload for a room listing
type RoomPatch struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Rent          *int      `json:"rent"`
	Deposit       *int      `json:"deposit"`
	Location      *string   `json:"location"`
	RoomType      *string   `json:"roomType"`
	Gender        *string   `json:"gender"`
	Amenities     *[]string `json:"amenities"`
	Images        *[]string `json:"images"`
	AvailableFrom *string   `json:"availableFrom"`
	IsActive      *bool     `json:"isActive"`
}

// PatchRoom applies a partial update; id and owner must both match
func (s *Service) PatchRoom(ctx context.Context, id, ownerID uint, p RoomPatch) (*domain.Room, error) {
	v := &domain.ValidationError{}
	fields := map[string]any{}
	if p.Title != nil {
		if len(strings.TrimSpace(*p.Title)) < 10 || len(*p.Title) > 200 {
			v.Add("title", "Title must be between 10 and 200 characters")
		}
		fields["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" || len(*p.Description) > 2000 {
			v.Add("description", "Description must be between 1 and 2000 characters")
		}
		fields["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Rent != nil {
		if *p.Rent < 1000 || *p.Rent > 100000 {
			v.Add("rent", "Rent must be between 1000 and 100000")
		}
		fields["rent"] = *p.Rent
	}
	if p.Deposit != nil {
		if *p.Deposit < 0 || *p.Deposit > 200000 {
			v.Add("deposit", "Deposit must be between 0 and 200000")
		}
		fields["deposit"] = *p.Deposit
	}
	if p.Location != nil {
		if strings.TrimSpace(*p.Location) == "" {
			v.Add("location", "Location is required")
		}
		loc := splitLocation(*p.Location)
		fields["location_name"] = loc.Name
		fields["location_city"] = loc.City
	}
	if p.RoomType != nil {
		if !isRoomType(*p.RoomType) {
			v.Add("roomType", "Room type must be single, shared or private")
		}
		fields["room_type"] = *p.RoomType
	}
	if p.Gender != nil {
		if !isGender(*p.Gender, "male", "female", "any") {
			v.Add("gender", "Gender must be male, female or any")
		}
		fields["gender"] = *p.Gender
	}
	if p.Amenities != nil {
		fields["amenities"] = *p.Amenities
	}
	if p.Images != nil {
		fields["images"] = *p.Images
	}
	if p.AvailableFrom != nil {
		t, err := time.Parse(dateLayout, *p.AvailableFrom)
		if err != nil {
			v.Add("availableFrom", "Available from must be a valid date (YYYY-MM-DD)")
		}
		fields["available_from"] = t
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, (&domain.ValidationError{}).Add("body", "No fields to update")
	}
	room, err := s.sel.Active(ctx).UpdateRoom(ctx, id, ownerID, fields)
	if err != nil {
		return nil, err
	}
	logPatch(domain.KindRoom, id, ownerID)
	return room, nil
}

// FlatmatePatch is the partial-update payload for a flatmate profile
type FlatmatePatch struct {
	Age             *int      `json:"age"`
	Gender          *string   `json:"gender"`
	Profession      *string   `json:"profession"`
	About           *string   `json:"about"`
	BudgetMin       *int      `json:"budgetMin"`
	BudgetMax       *int      `json:"budgetMax"`
	Location        *string   `json:"location"`
	Lifestyle       *[]string `json:"lifestyle"`
	PreferredGender *string   `json:"preferredGender"`
	IsActive        *bool     `json:"isActive"`
}

// PatchFlatmate applies a partial update; id and owner must both match.
// The budget ordering is checked whenever both bounds arrive together.
func (s *Service) PatchFlatmate(ctx context.Context, id, ownerID uint, p FlatmatePatch) (*domain.Flatmate, error) {
	v := &domain.ValidationError{}
	fields := map[string]any{}
	if p.Age != nil {
		if *p.Age < 18 || *p.Age > 100 {
			v.Add("age", "Age must be between 18 and 100")
		}
		fields["age"] = *p.Age
	}
	if p.Gender != nil {
		if !isGender(*p.Gender, "male", "female") {
			v.Add("gender", "Gender must be male or female")
		}
		fields["gender"] = *p.Gender
	}
	if p.Profession != nil {
		if strings.TrimSpace(*p.Profession) == "" || len(*p.Profession) > 100 {
			v.Add("profession", "Profession must be between 1 and 100 characters")
		}
		fields["profession"] = strings.TrimSpace(*p.Profession)
	}
	if p.About != nil {
		if len(strings.TrimSpace(*p.About)) < 50 || len(*p.About) > 1000 {
			v.Add("about", "About section must be between 50 and 1000 characters")
		}
		fields["about"] = strings.TrimSpace(*p.About)
	}
	if p.BudgetMin != nil {
		if *p.BudgetMin < 1000 || *p.BudgetMin > 100000 {
			v.Add("budgetMin", "Minimum budget must be between 1000 and 100000")
		}
		fields["budget_min"] = *p.BudgetMin
	}
	if p.BudgetMax != nil {
		if *p.BudgetMax < 1000 || *p.BudgetMax > 100000 {
			v.Add("budgetMax", "Maximum budget must be between 1000 and 100000")
		}
		fields["budget_max"] = *p.BudgetMax
	}
	if p.BudgetMin != nil || p.BudgetMax != nil {
		// The ordering invariant holds over the range the record will end up
		// with, so a lone bound is checked against the stored other half
		lo, hi := 0, 0
		if p.BudgetMin != nil && p.BudgetMax != nil {
			lo, hi = *p.BudgetMin, *p.BudgetMax
		} else {
			cur, err := ownedFlatmate(ctx, s.sel.Active(ctx), id, ownerID)
			if err != nil {
				return nil, err
			}
			lo, hi = cur.Budget.Min, cur.Budget.Max
			if p.BudgetMin != nil {
				lo = *p.BudgetMin
			}
			if p.BudgetMax != nil {
				hi = *p.BudgetMax
			}
		}
		if hi < lo {
			v.Add("budget", "Maximum budget must be greater than or equal to minimum budget")
		}
	}
	if p.Location != nil {
		if strings.TrimSpace(*p.Location) == "" {
			v.Add("location", "Location is required")
		}
		loc := splitLocation(*p.Location)
		fields["location_name"] = loc.Name
		fields["location_city"] = loc.City
	}
	if p.Lifestyle != nil {
		fields["preference_lifestyle"] = *p.Lifestyle
	}
	if p.PreferredGender != nil {
		if !isGender(*p.PreferredGender, "male", "female", "any") {
			v.Add("preferredGender", "Preferred gender must be male, female or any")
		}
		fields["preference_gender"] = *p.PreferredGender
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, (&domain.ValidationError{}).Add("body", "No fields to update")
	}
	fm, err := s.sel.Active(ctx).UpdateFlatmate(ctx, id, ownerID, fields)
	if err != nil {
		return nil, err
	}
	logPatch(domain.KindFlatmate, id, ownerID)
	return fm, nil
}

// PGPatch is the partial-update payload for a PG listing
type PGPatch struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Location    *string              `json:"location"`
	Amenities   *[]string            `json:"amenities"`
	Images      *[]string            `json:"images"`
	RoomTypes   *[]domain.PGRoomType `json:"roomTypes"`
	Gender      *string              `json:"gender"`
	Meals       *bool                `json:"meals"`
	Rules       *[]string            `json:"rules"`
	IsActive    *bool                `json:"isActive"`
}

// PatchPG applies a partial update; id and owner must both match
func (s *Service) PatchPG(ctx context.Context, id, ownerID uint, p PGPatch) (*domain.PG, error) {
	v := &domain.ValidationError{}
	fields := map[string]any{}
	if p.Name != nil {
		if len(strings.TrimSpace(*p.Name)) < 5 || len(*p.Name) > 100 {
			v.Add("name", "PG name must be between 5 and 100 characters")
		}
		fields["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		if len(strings.TrimSpace(*p.Description)) < 50 || len(*p.Description) > 2000 {
			v.Add("description", "Description must be between 50 and 2000 characters")
		}
		fields["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Location != nil {
		if strings.TrimSpace(*p.Location) == "" {
			v.Add("location", "Location is required")
		}
		loc := splitLocation(*p.Location)
		fields["location_name"] = loc.Name
		fields["location_city"] = loc.City
	}
	if p.Amenities != nil {
		fields["amenities"] = *p.Amenities
	}
	if p.Images != nil {
		fields["images"] = *p.Images
	}
	if p.RoomTypes != nil {
		if len(*p.RoomTypes) == 0 {
			v.Add("roomTypes", "At least one room type is required")
		}
		for _, rt := range *p.RoomTypes {
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
		fields["room_types"] = *p.RoomTypes
	}
	if p.Gender != nil {
		if !isGender(*p.Gender, "male", "female", "both") {
			v.Add("gender", "Gender must be male, female or both")
		}
		fields["gender"] = *p.Gender
	}
	if p.Meals != nil {
		fields["meals"] = *p.Meals
	}
	if p.Rules != nil {
		fields["rules"] = *p.Rules
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, (&domain.ValidationError{}).Add("body", "No fields to update")
	}
	pg, err := s.sel.Active(ctx).UpdatePG(ctx, id, ownerID, fields)
	if err != nil {
		return nil, err
	}
	logPatch(domain.KindPG, id, ownerID)
	return pg, nil
}

// logPatch records one successful partial update
func logPatch(kind domain.Kind, id, ownerID uint) {
	logrus.WithFields(logrus.Fields{
		"kind":     kind,    // Listing kind
		"id":       id,      // Updated listing ID
		"owner_id": ownerID, // Owning user
	}).Info("Listing updated") // Log listing update
}
