package store

import (
	"context"
	"testing"
	"time"

	"metronest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func newRoom(owner uint, rent int, gender string, createdAt int64) domain.Room {
	return domain.Room{
		Title:         "Sunny room with attached bathroom",
		Description:   "A bright room close to the metro",
		Rent:          rent,
		Deposit:       rent * 2,
		Location:      domain.Location{Name: "Koramangala", City: "Bangalore"},
		RoomType:      "single",
		Gender:        gender,
		AvailableFrom: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		OwnerID:       owner,
		IsActive:      true,
		CreatedAt:     createdAt,
	}
}

func TestMemoryUserUniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u := &domain.User{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "x"}
	require.NoError(t, m.CreateUser(ctx, u))
	assert.NotZero(t, u.ID)
	assert.NotZero(t, u.CreatedAt)

	dupEmail := &domain.User{Name: "Other", Email: "asha@example.com", Phone: "9876543211", Password: "x"}
	assert.Error(t, m.CreateUser(ctx, dupEmail))

	dupPhone := &domain.User{Name: "Other", Email: "other@example.com", Phone: "9876543210", Password: "x"}
	assert.Error(t, m.CreateUser(ctx, dupPhone))

	got, err := m.UserByEmailOrPhone(ctx, "nobody@example.com", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMemoryRoomCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	r := newRoom(1, 12000, "any", 0)
	require.NoError(t, m.CreateRoom(ctx, &r))
	require.NotZero(t, r.ID)

	got, err := m.RoomByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 12000, got.Rent)

	// Updating as a different user behaves exactly like a missing record
	_, err = m.UpdateRoom(ctx, r.ID, 99, map[string]any{"rent": 13000})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := m.UpdateRoom(ctx, r.ID, 1, map[string]any{"rent": 13000, "title": "Bigger sunny room near metro"})
	require.NoError(t, err)
	assert.Equal(t, 13000, updated.Rent)
	assert.Equal(t, "Bigger sunny room near metro", updated.Title)

	assert.ErrorIs(t, m.DeleteRoom(ctx, r.ID, 99), domain.ErrNotFound)
	require.NoError(t, m.DeleteRoom(ctx, r.ID, 1))
	_, err = m.RoomByID(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchRoomsNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	older := newRoom(1, 9000, "any", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	newer := newRoom(1, 9500, "any", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	require.NoError(t, m.CreateRoom(ctx, &older))
	require.NoError(t, m.CreateRoom(ctx, &newer))

	rooms, err := m.SearchRooms(ctx, RoomFilters{})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, newer.ID, rooms[0].ID)
	assert.Equal(t, older.ID, rooms[1].ID)
}

func TestRoomFiltersMatch(t *testing.T) {
	r := newRoom(1, 8000, "male", 0)

	assert.True(t, RoomFilters{}.Match(&r))
	assert.True(t, RoomFilters{Location: "bangalore"}.Match(&r), "city substring, case-insensitive")
	assert.True(t, RoomFilters{Location: "kora"}.Match(&r), "area substring")
	assert.False(t, RoomFilters{Location: "mumbai"}.Match(&r))

	assert.True(t, RoomFilters{MinRent: intPtr(8000), MaxRent: intPtr(8000)}.Match(&r))
	assert.False(t, RoomFilters{MinRent: intPtr(8001)}.Match(&r))
	assert.False(t, RoomFilters{MaxRent: intPtr(7999)}.Match(&r))

	assert.True(t, RoomFilters{Gender: "male"}.Match(&r))
	assert.False(t, RoomFilters{Gender: "female"}.Match(&r))
	assert.True(t, RoomFilters{Gender: "any"}.Match(&r), "filter value any means no constraint")

	open := newRoom(1, 8000, "any", 0)
	assert.True(t, RoomFilters{Gender: "female"}.Match(&open), "stored any matches every filter")

	assert.True(t, RoomFilters{RoomType: "single"}.Match(&r))
	assert.False(t, RoomFilters{RoomType: "shared"}.Match(&r))

	r.IsActive = false
	assert.False(t, RoomFilters{}.Match(&r), "inactive listings never match")
}

func TestFlatmateFiltersBudgetOverlap(t *testing.T) {
	fm := domain.Flatmate{
		UserID:      1,
		Age:         25,
		Gender:      "female",
		Budget:      domain.Budget{Min: 10000, Max: 20000},
		Location:    domain.Location{Name: "Indiranagar", City: "Bangalore"},
		Preferences: domain.Preferences{Gender: "female"},
		IsActive:    true,
	}

	// minBudget keeps profiles whose range reaches up to it
	assert.True(t, FlatmateFilters{MinBudget: intPtr(15000)}.Match(&fm))
	assert.True(t, FlatmateFilters{MinBudget: intPtr(20000)}.Match(&fm))
	assert.False(t, FlatmateFilters{MinBudget: intPtr(20001)}.Match(&fm))

	// maxBudget keeps profiles whose range starts at or below it
	assert.True(t, FlatmateFilters{MaxBudget: intPtr(10000)}.Match(&fm))
	assert.False(t, FlatmateFilters{MaxBudget: intPtr(9999)}.Match(&fm))

	// A filter window overlapping the profile's range matches even when
	// the range is not contained in the window
	assert.True(t, FlatmateFilters{MinBudget: intPtr(18000), MaxBudget: intPtr(25000)}.Match(&fm))

	assert.True(t, FlatmateFilters{Gender: "female"}.Match(&fm))
	assert.False(t, FlatmateFilters{Gender: "male"}.Match(&fm))

	fm.Preferences.Gender = "any"
	assert.True(t, FlatmateFilters{Gender: "male"}.Match(&fm), "stored any matches every filter")
}

func TestPGFiltersRentAcrossRoomTypes(t *testing.T) {
	pg := domain.PG{
		Name:     "Green Valley PG",
		Location: domain.Location{Name: "HSR Layout", City: "Bangalore"},
		RoomTypes: []domain.PGRoomType{
			{Type: "single", Rent: 15000, Available: 2},
			{Type: "triple", Rent: 8000, Available: 3},
		},
		Gender:   "both",
		Meals:    true,
		OwnerID:  1,
		IsActive: true,
	}

	// One room type inside the window is enough
	assert.True(t, PGFilters{MinRent: intPtr(7000), MaxRent: intPtr(9000)}.Match(&pg))
	assert.True(t, PGFilters{MinRent: intPtr(14000)}.Match(&pg))
	assert.False(t, PGFilters{MinRent: intPtr(16000)}.Match(&pg))
	assert.False(t, PGFilters{MinRent: intPtr(9000), MaxRent: intPtr(14000)}.Match(&pg),
		"no single room type satisfies both bounds")

	assert.True(t, PGFilters{Gender: "female"}.Match(&pg), "stored both matches every filter")
	assert.True(t, PGFilters{Meals: boolPtr(true)}.Match(&pg))
	assert.False(t, PGFilters{Meals: boolPtr(false)}.Match(&pg))

	pg.Gender = "male"
	assert.False(t, PGFilters{Gender: "female"}.Match(&pg))
	assert.True(t, PGFilters{Gender: "both"}.Match(&pg), "filter value both means no constraint")
}

func TestSeedLoadsDemoCatalog(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Seed(ctx))

	rooms, err := m.SearchRooms(ctx, RoomFilters{})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	fms, err := m.SearchFlatmates(ctx, FlatmateFilters{})
	require.NoError(t, err)
	assert.Len(t, fms, 1)

	pgs, err := m.SearchPGs(ctx, PGFilters{})
	require.NoError(t, err)
	require.Len(t, pgs, 1)
	assert.Equal(t, "Green Valley PG", pgs[0].Name)

	// Every seeded listing belongs to the demo user
	owner, err := m.UserByEmail(ctx, "demo@metronest.example")
	require.NoError(t, err)
	for _, r := range rooms {
		assert.Equal(t, owner.ID, r.OwnerID)
	}
}
