package listing

import (
	"context"
	"testing"

	"metronest/internal/domain"
	"metronest/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longAbout = "Working professional looking for a clean and peaceful accommodation with like-minded flatmates"

func newFixture(t *testing.T) (*Service, *store.Memory, uint) {
	t.Helper()
	mem := store.NewMemory()
	owner := &domain.User{Name: "Owner", Email: "owner@example.com", Phone: "9876543210", Password: "x"}
	require.NoError(t, mem.CreateUser(context.Background(), owner))
	return NewService(store.NewSelector(nil, mem)), mem, owner.ID
}

func validRoomInput() RoomInput {
	return RoomInput{
		Title:         "Spacious room in Koramangala",
		Description:   "Well-furnished single room with balcony access",
		Rent:          15000,
		Deposit:       30000,
		Location:      "Koramangala, Bangalore",
		RoomType:      "single",
		Gender:        "any",
		AvailableFrom: "2024-02-01",
	}
}

func validFlatmateInput() FlatmateInput {
	return FlatmateInput{
		Age:        25,
		Gender:     "female",
		Profession: "Software Engineer",
		About:      longAbout,
		BudgetMin:  10000,
		BudgetMax:  20000,
		Location:   "Koramangala, Bangalore",
	}
}

func validPGInput() PGInput {
	return PGInput{
		Name:        "Green Valley PG",
		Description: "Premium PG accommodation with all modern amenities, housekeeping and daily meals included",
		Location:    "HSR Layout, Bangalore",
		RoomTypes:   []domain.PGRoomType{{Type: "single", Rent: 15000, Available: 2}},
		Gender:      "both",
		Meals:       true,
	}
}

func TestCreateRoomSplitsLocation(t *testing.T) {
	svc, _, owner := newFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, validRoomInput(), owner)
	require.NoError(t, err)
	assert.Equal(t, "Koramangala", room.Location.Name)
	assert.Equal(t, "Bangalore", room.Location.City)
	assert.True(t, room.IsActive, "new listings start visible")
	assert.Equal(t, []string{"/placeholder.svg"}, room.Images, "placeholder when no images sent")

	// Free text without a comma keeps the quirky Unknown city
	in := validRoomInput()
	in.Location = "Koramangala"
	room, err = svc.CreateRoom(ctx, in, owner)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", room.Location.City)
}

func TestCreateRoomValidation(t *testing.T) {
	svc, mem, owner := newFixture(t)
	ctx := context.Background()

	in := validRoomInput()
	in.Title = "Short"
	in.Rent = 500
	in.Gender = "other"
	_, err := svc.CreateRoom(ctx, in, owner)

	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	fields := map[string]bool{}
	for _, f := range v.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["rent"])
	assert.True(t, fields["gender"])

	rooms, err := mem.RoomsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, rooms, "nothing persisted on validation failure")
}

func TestCreateFlatmateBudgetInversion(t *testing.T) {
	svc, mem, owner := newFixture(t)
	ctx := context.Background()

	in := validFlatmateInput()
	in.BudgetMin = 20000
	in.BudgetMax = 10000
	_, err := svc.CreateFlatmate(ctx, in, owner)

	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	found := false
	for _, f := range v.Fields {
		if f.Field == "budget" {
			found = true
		}
	}
	assert.True(t, found, "the inverted range is reported as a budget error")

	fms, err := mem.FlatmatesByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, fms, "nothing persisted when the range is inverted")
}

func TestCreateFlatmateDefaultsPreferredGender(t *testing.T) {
	svc, _, owner := newFixture(t)

	fm, err := svc.CreateFlatmate(context.Background(), validFlatmateInput(), owner)
	require.NoError(t, err)
	assert.Equal(t, "any", fm.Preferences.Gender)
}

func TestCreateRequiresExistingOwner(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.CreateRoom(context.Background(), validRoomInput(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMineGroupsByKind(t *testing.T) {
	svc, _, owner := newFixture(t)
	ctx := context.Background()

	_, err := svc.CreateRoom(ctx, validRoomInput(), owner)
	require.NoError(t, err)
	_, err = svc.CreateFlatmate(ctx, validFlatmateInput(), owner)
	require.NoError(t, err)
	_, err = svc.CreatePG(ctx, validPGInput(), owner)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine.Rooms, 1)
	assert.Len(t, mine.Flatmates, 1)
	assert.Len(t, mine.PGs, 1)

	// An owner with nothing gets empty groups, never nil
	empty, err := svc.ListMine(ctx, owner+100)
	require.NoError(t, err)
	assert.NotNil(t, empty.Rooms)
	assert.NotNil(t, empty.Flatmates)
	assert.NotNil(t, empty.PGs)
	assert.Empty(t, empty.Rooms)
}

func TestToggleActiveRoundTrip(t *testing.T) {
	svc, _, owner := newFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, validRoomInput(), owner)
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(ctx, domain.KindRoom, room.ID, owner)
	require.NoError(t, err)
	assert.False(t, toggled.Active())

	toggled, err = svc.ToggleActive(ctx, domain.KindRoom, room.ID, owner)
	require.NoError(t, err)
	assert.True(t, toggled.Active(), "two toggles restore the original state")
}

func TestToggleActiveIsOwnerScoped(t *testing.T) {
	svc, mem, owner := newFixture(t)
	ctx := context.Background()

	other := &domain.User{Name: "Other", Email: "other@example.com", Phone: "9876543211", Password: "x"}
	require.NoError(t, mem.CreateUser(ctx, other))

	room, err := svc.CreateRoom(ctx, validRoomInput(), owner)
	require.NoError(t, err)

	_, err = svc.ToggleActive(ctx, domain.KindRoom, room.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "someone else's listing looks missing")

	got, err := mem.RoomByID(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive, "untouched by the failed toggle")
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	svc, mem, owner := newFixture(t)
	ctx := context.Background()

	other := &domain.User{Name: "Other", Email: "other@example.com", Phone: "9876543211", Password: "x"}
	require.NoError(t, mem.CreateUser(ctx, other))

	pg, err := svc.CreatePG(ctx, validPGInput(), owner)
	require.NoError(t, err)

	err = svc.Delete(ctx, domain.KindPG, pg.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, domain.KindPG, pg.ID, owner))
	_, err = mem.PGByID(ctx, pg.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPatchRoom(t *testing.T) {
	svc, _, owner := newFixture(t)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, validRoomInput(), owner)
	require.NoError(t, err)

	rent := 18000
	loc := "Indiranagar, Bangalore"
	patched, err := svc.PatchRoom(ctx, room.ID, owner, RoomPatch{Rent: &rent, Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, 18000, patched.Rent)
	assert.Equal(t, "Indiranagar", patched.Location.Name)
	assert.Equal(t, room.Title, patched.Title, "untouched fields survive")

	// An empty patch is rejected, not silently accepted
	var v *domain.ValidationError
	_, err = svc.PatchRoom(ctx, room.ID, owner, RoomPatch{})
	assert.ErrorAs(t, err, &v)

	// Bad values are rejected with the same bounds as create
	badRent := 500
	_, err = svc.PatchRoom(ctx, room.ID, owner, RoomPatch{Rent: &badRent})
	assert.ErrorAs(t, err, &v)
}

func TestPatchFlatmateBudgetOrdering(t *testing.T) {
	svc, _, owner := newFixture(t)
	ctx := context.Background()

	fm, err := svc.CreateFlatmate(ctx, validFlatmateInput(), owner)
	require.NoError(t, err)

	lo, hi := 12000, 9000
	var v *domain.ValidationError
	_, err = svc.PatchFlatmate(ctx, fm.ID, owner, FlatmatePatch{BudgetMin: &lo, BudgetMax: &hi})
	assert.ErrorAs(t, err, &v, "inverted bounds arriving together are rejected")

	hi = 15000
	patched, err := svc.PatchFlatmate(ctx, fm.ID, owner, FlatmatePatch{BudgetMin: &lo, BudgetMax: &hi})
	require.NoError(t, err)
	assert.Equal(t, 12000, patched.Budget.Min)
	assert.Equal(t, 15000, patched.Budget.Max)
}

func TestPatchFlatmateSingleBoundKeepsOrdering(t *testing.T) {
	svc, mem, owner := newFixture(t)
	ctx := context.Background()

	fm, err := svc.CreateFlatmate(ctx, validFlatmateInput(), owner) // Budget 10000-20000
	require.NoError(t, err)

	// A lone max below the stored min would invert the range
	badMax := 5000
	var v *domain.ValidationError
	_, err = svc.PatchFlatmate(ctx, fm.ID, owner, FlatmatePatch{BudgetMax: &badMax})
	require.ErrorAs(t, err, &v)
	found := false
	for _, f := range v.Fields {
		if f.Field == "budget" {
			found = true
		}
	}
	assert.True(t, found)

	stored, err := mem.FlatmateByID(ctx, fm.ID)
	require.NoError(t, err)
	assert.Equal(t, 20000, stored.Budget.Max, "rejected patch writes nothing")

	// A lone min above the stored max is the mirror case
	badMin := 25000
	_, err = svc.PatchFlatmate(ctx, fm.ID, owner, FlatmatePatch{BudgetMin: &badMin})
	assert.ErrorAs(t, err, &v)

	// A lone bound that keeps the ordering is fine
	okMax := 15000
	patched, err := svc.PatchFlatmate(ctx, fm.ID, owner, FlatmatePatch{BudgetMax: &okMax})
	require.NoError(t, err)
	assert.Equal(t, 10000, patched.Budget.Min)
	assert.Equal(t, 15000, patched.Budget.Max)
}
