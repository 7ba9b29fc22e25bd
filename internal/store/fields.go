package store

import (
	"time"

	"metronest/internal/domain" // Importing domain models
)

// Partial-update keys use the DB column names so both backends speak the
// same vocabulary. Unknown keys and mistyped values are ignored, matching
// how the SQL store would simply not receive them.

func applyRoomField(r *domain.Room, key string, value any) {
	switch key {
	case "title":
		if v, ok := value.(string); ok {
			r.Title = v
		}
	case "description":
		if v, ok := value.(string); ok {
			r.Description = v
		}
	case "rent":
		if v, ok := value.(int); ok {
			r.Rent = v
		}
	case "deposit":
		if v, ok := value.(int); ok {
			r.Deposit = v
		}
	case "location_name":
		if v, ok := value.(string); ok {
			r.Location.Name = v
		}
	case "location_city":
		if v, ok := value.(string); ok {
			r.Location.City = v
		}
	case "amenities":
		if v, ok := value.([]string); ok {
			r.Amenities = v
		}
	case "images":
		if v, ok := value.([]string); ok {
			r.Images = v
		}
	case "room_type":
		if v, ok := value.(string); ok {
			r.RoomType = v
		}
	case "gender":
		if v, ok := value.(string); ok {
			r.Gender = v
		}
	case "available_from":
		if v, ok := value.(time.Time); ok {
			r.AvailableFrom = v
		}
	case "is_active":
		if v, ok := value.(bool); ok {
			r.IsActive = v
		}
	}
}

func applyFlatmateField(f *domain.Flatmate, key string, value any) {
	switch key {
	case "age":
		if v, ok := value.(int); ok {
			f.Age = v
		}
	case "gender":
		if v, ok := value.(string); ok {
			f.Gender = v
		}
	case "profession":
		if v, ok := value.(string); ok {
			f.Profession = v
		}
	case "about":
		if v, ok := value.(string); ok {
			f.About = v
		}
	case "budget_min":
		if v, ok := value.(int); ok {
			f.Budget.Min = v
		}
	case "budget_max":
		if v, ok := value.(int); ok {
			f.Budget.Max = v
		}
	case "location_name":
		if v, ok := value.(string); ok {
			f.Location.Name = v
		}
	case "location_city":
		if v, ok := value.(string); ok {
			f.Location.City = v
		}
	case "preference_room_type":
		if v, ok := value.([]string); ok {
			f.Preferences.RoomType = v
		}
	case "preference_lifestyle":
		if v, ok := value.([]string); ok {
			f.Preferences.Lifestyle = v
		}
	case "preference_gender":
		if v, ok := value.(string); ok {
			f.Preferences.Gender = v
		}
	case "is_active":
		if v, ok := value.(bool); ok {
			f.IsActive = v
		}
	}
}

func applyPGField(p *domain.PG, key string, value any) {
	switch key {
	case "name":
		if v, ok := value.(string); ok {
			p.Name = v
		}
	case "description":
		if v, ok := value.(string); ok {
			p.Description = v
		}
	case "location_name":
		if v, ok := value.(string); ok {
			p.Location.Name = v
		}
	case "location_city":
		if v, ok := value.(string); ok {
			p.Location.City = v
		}
	case "amenities":
		if v, ok := value.([]string); ok {
			p.Amenities = v
		}
	case "images":
		if v, ok := value.([]string); ok {
			p.Images = v
		}
	case "room_types":
		if v, ok := value.([]domain.PGRoomType); ok {
			p.RoomTypes = v
		}
	case "gender":
		if v, ok := value.(string); ok {
			p.Gender = v
		}
	case "meals":
		if v, ok := value.(bool); ok {
			p.Meals = v
		}
	case "rules":
		if v, ok := value.([]string); ok {
			p.Rules = v
		}
	case "is_active":
		if v, ok := value.(bool); ok {
			p.IsActive = v
		}
	}
}
