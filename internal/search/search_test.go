package search

import (
	"context"
	"testing"
	"time"

	"metronest/internal/domain"
	"metronest/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func millis(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func addRoom(t *testing.T, m *store.Memory, title, area, city string, rent int, gender string, createdAt int64) *domain.Room {
	t.Helper()
	r := &domain.Room{
		Title:       title,
		Description: "d",
		Rent:        rent,
		Location:    domain.Location{Name: area, City: city},
		RoomType:    "single",
		Gender:      gender,
		OwnerID:     1,
		IsActive:    true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, m.CreateRoom(context.Background(), r))
	return r
}

func TestSearchValidatesBeforeStoreAccess(t *testing.T) {
	svc := NewService(store.NewSelector(nil, store.NewMemory()))
	ctx := context.Background()

	_, err := svc.Search(ctx, domain.KindRoom, Filters{}, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Search(ctx, domain.KindRoom, Filters{}, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Search(ctx, domain.KindRoom, Filters{}, 1, MaxLimit+1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Search(ctx, "hostel", Filters{}, 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSearchMergesBothSourcesBeforePaginating(t *testing.T) {
	ctx := context.Background()
	primary := store.NewMemory()
	fallback := store.NewMemory()

	// Three rooms in the primary, two in the fallback, interleaved by age
	addRoom(t, primary, "Primary room one", "Koramangala", "Bangalore", 9000, "any", millis(2024, 1, 1))
	addRoom(t, primary, "Primary room two", "Koramangala", "Bangalore", 9000, "any", millis(2024, 1, 3))
	addRoom(t, primary, "Primary room three", "Koramangala", "Bangalore", 9000, "any", millis(2024, 1, 5))
	addRoom(t, fallback, "Fallback room one", "Koramangala", "Bangalore", 9000, "any", millis(2024, 1, 2))
	addRoom(t, fallback, "Fallback room two", "Koramangala", "Bangalore", 9000, "any", millis(2024, 1, 4))

	svc := NewService(store.NewSelector(primary, fallback))

	// Page boundaries fall on the merged order, never per source
	var titles []string
	for page := 1; page <= 3; page++ {
		res, err := svc.Search(ctx, domain.KindRoom, Filters{}, page, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Total)
		for _, l := range res.Data {
			titles = append(titles, l.(*domain.Room).Title)
		}
	}
	assert.Equal(t, []string{
		"Primary room three",
		"Fallback room two",
		"Primary room two",
		"Fallback room one",
		"Primary room one",
	}, titles, "newest first across both sources, every record exactly once")

	// A page past the end is empty, not an error
	res, err := svc.Search(ctx, domain.KindRoom, Filters{}, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 5, res.Total)
}

func TestSearchRoomsBangaloreUnderBudget(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	cheap := addRoom(t, mem, "Shared room in Indiranagar", "Indiranagar", "Bangalore", 8000, "male", millis(2024, 1, 10))
	addRoom(t, mem, "Spacious room in Koramangala", "Koramangala", "Bangalore", 15000, "any", millis(2024, 1, 15))

	svc := NewService(store.NewSelector(nil, mem))
	res, err := svc.Search(ctx, domain.KindRoom, Filters{Location: "bangalore", MaxRent: intPtr(10000)}, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, cheap.ID, res.Data[0].ListingID())
}

func TestSearchExcludesInactive(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	active := addRoom(t, mem, "Visible room", "HSR Layout", "Bangalore", 9000, "any", millis(2024, 1, 1))
	hidden := &domain.Room{
		Title:    "Hidden room",
		Location: domain.Location{Name: "HSR Layout", City: "Bangalore"},
		Rent:     9000, RoomType: "single", Gender: "any", OwnerID: 1,
		IsActive:  false,
		CreatedAt: millis(2024, 2, 1),
	}
	require.NoError(t, mem.CreateRoom(ctx, hidden))

	svc := NewService(store.NewSelector(nil, mem))
	res, err := svc.Search(ctx, domain.KindRoom, Filters{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, active.ID, res.Data[0].ListingID())
}

func TestSearchFlatmatesBudgetWindow(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	fm := &domain.Flatmate{
		UserID: 1, Age: 25, Gender: "female",
		Budget:      domain.Budget{Min: 10000, Max: 20000},
		Location:    domain.Location{Name: "Koramangala", City: "Bangalore"},
		Preferences: domain.Preferences{Gender: "female"},
		IsActive:    true,
	}
	require.NoError(t, mem.CreateFlatmate(ctx, fm))

	svc := NewService(store.NewSelector(nil, mem))

	// Overlapping window matches
	res, err := svc.Search(ctx, domain.KindFlatmate, Filters{MinBudget: intPtr(18000), MaxBudget: intPtr(25000)}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	// Disjoint window does not
	res, err = svc.Search(ctx, domain.KindFlatmate, Filters{MinBudget: intPtr(21000)}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestSearchPGsMealsAndRent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Seed(ctx)) // Green Valley PG: meals, rents 8000-15000

	svc := NewService(store.NewSelector(nil, mem))

	meals := true
	res, err := svc.Search(ctx, domain.KindPG, Filters{Meals: &meals, MaxRent: intPtr(9000)}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, domain.KindPG, res.Data[0].ListingKind())

	res, err = svc.Search(ctx, domain.KindPG, Filters{MinRent: intPtr(16000)}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}
