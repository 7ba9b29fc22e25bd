package store

import (
	"context"
	"time"

	"metronest/internal/domain" // Importing domain models
)

// Seed loads the demo catalog into the fallback store so the service has
// something to show when it starts without a database. The records mirror
// the sample listings the product launched with.
func (m *Memory) Seed(ctx context.Context) error {
	demo := &domain.User{
		Name:     "MetroNest Demo",
		Email:    "demo@metronest.example",
		Phone:    "9876543200",
		Password: "-", // Not loginable; placeholder hash
		Verified: true,
	}
	if err := m.CreateUser(ctx, demo); err != nil {
		return err
	}

	rooms := []domain.Room{
		{
			Title:         "Spacious Room in Koramangala",
			Description:   "Well-furnished single room with balcony access, located in the heart of Koramangala",
			Rent:          15000,
			Deposit:       30000,
			Location:      domain.Location{Name: "Koramangala", City: "Bangalore"},
			Amenities:     []string{"WiFi", "AC", "Parking", "Security", "Housekeeping"},
			Images:        []string{"/placeholder.svg"},
			RoomType:      "single",
			Gender:        "any",
			AvailableFrom: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			OwnerID:       demo.ID,
			IsActive:      true,
			CreatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			Title:         "Shared Room for Working Professionals",
			Description:   "Shared accommodation perfect for working professionals in Indiranagar",
			Rent:          8000,
			Deposit:       16000,
			Location:      domain.Location{Name: "Indiranagar", City: "Bangalore"},
			Amenities:     []string{"WiFi", "Gym", "Security", "Meal Service"},
			Images:        []string{"/placeholder.svg"},
			RoomType:      "shared",
			Gender:        "male",
			AvailableFrom: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			OwnerID:       demo.ID,
			IsActive:      true,
			CreatedAt:     time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC).UnixMilli(),
		},
	}
	for i := range rooms {
		if err := m.CreateRoom(ctx, &rooms[i]); err != nil {
			return err
		}
	}

	flatmate := domain.Flatmate{
		UserID:     demo.ID,
		Age:        25,
		Gender:     "female",
		Profession: "Software Engineer",
		About:      "Working professional looking for a clean and peaceful accommodation with like-minded flatmates",
		Budget:     domain.Budget{Min: 10000, Max: 20000},
		Location:   domain.Location{Name: "Koramangala", City: "Bangalore"},
		Preferences: domain.Preferences{
			Gender:    "female",
			Lifestyle: []string{"Non-smoking", "Vegetarian", "Working Professional"},
		},
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC).UnixMilli(),
	}
	if err := m.CreateFlatmate(ctx, &flatmate); err != nil {
		return err
	}

	pg := domain.PG{
		Name:        "Green Valley PG",
		Description: "Premium PG accommodation with all modern amenities, housekeeping and daily meals included",
		Location:    domain.Location{Name: "HSR Layout", City: "Bangalore"},
		Amenities:   []string{"WiFi", "AC", "Laundry", "Security", "Gym", "Parking"},
		Images:      []string{"/placeholder.svg"},
		RoomTypes: []domain.PGRoomType{
			{Type: "single", Rent: 15000, Available: 2},
			{Type: "shared", Rent: 10000, Available: 5},
			{Type: "triple", Rent: 8000, Available: 3},
		},
		Gender:    "both",
		Meals:     true,
		Rules:     []string{"No alcohol", "No smoking", "Guest policy applies"},
		OwnerID:   demo.ID,
		IsActive:  true,
		Rating:    4.5,
		Reviews:   28,
		CreatedAt: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC).UnixMilli(),
	}
	return m.CreatePG(ctx, &pg)
}
