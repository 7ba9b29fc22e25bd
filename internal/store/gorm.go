package store

import (
	"context"
	"encoding/json"
	"errors"

	"metronest/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Gorm is the persistent Source backed by MySQL through GORM
type Gorm struct {
	db *gorm.DB // Database handle
}

// NewGorm wraps an open GORM handle as a Source
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Ping probes the underlying connection; a failure routes the operation to the fallback
func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return domain.ErrUnavailable
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.ErrUnavailable
	}
	return nil
}

// notFound translates GORM's record-not-found into the shared sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// encodeUpdates returns a copy of a partial-update map with list values
// JSON-encoded. The serializer:json tags only run on struct writes; GORM's
// map-update path binds each value as-is, so serialized columns must arrive
// here already encoded or the driver gets a bare slice it cannot bind.
func encodeUpdates(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch v.(type) {
		case []string, []domain.PGRoomType:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			out[k] = string(b)
		default:
			out[k] = v
		}
	}
	return out, nil
}

// Users

func (g *Gorm) CreateUser(ctx context.Context, u *domain.User) error {
	return g.db.WithContext(ctx).Create(u).Error
}

func (g *Gorm) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := g.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (g *Gorm) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := g.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (g *Gorm) UserByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	var u domain.User
	if err := g.db.WithContext(ctx).Where("email = ? OR phone = ?", email, phone).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (g *Gorm) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := g.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Rooms

func (g *Gorm) CreateRoom(ctx context.Context, r *domain.Room) error {
	return g.db.WithContext(ctx).Create(r).Error
}

func (g *Gorm) RoomByID(ctx context.Context, id uint) (*domain.Room, error) {
	var r domain.Room
	if err := g.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (g *Gorm) RoomsByOwner(ctx context.Context, ownerID uint) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := g.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at desc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// SearchRooms builds the query from whichever filters are set, like the
// in-memory Match but as WHERE clauses
func (g *Gorm) SearchRooms(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	q := g.db.WithContext(ctx).Where("is_active = ?", true) // Inactive listings never surface in search
	if f.Location != "" {
		like := "%" + f.Location + "%" // LIKE is case-insensitive under MySQL's default collation
		q = q.Where("location_name LIKE ? OR location_city LIKE ?", like, like)
	}
	if f.MinRent != nil {
		q = q.Where("rent >= ?", *f.MinRent)
	}
	if f.MaxRent != nil {
		q = q.Where("rent <= ?", *f.MaxRent)
	}
	if f.Gender != "" && f.Gender != "any" {
		q = q.Where("gender = ? OR gender = ?", f.Gender, "any") // Sentinel value matches every query
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	var rooms []domain.Room
	if err := q.Order("created_at desc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (g *Gorm) UpdateRoom(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Room, error) {
	enc, err := encodeUpdates(fields)
	if err != nil {
		return nil, err
	}
	// Ownership is part of the lookup predicate, so a foreign listing is
	// indistinguishable from a missing one
	tx := g.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(enc)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var r domain.Room
	if err := g.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (g *Gorm) DeleteRoom(ctx context.Context, id, ownerID uint) error {
	tx := g.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Room{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Flatmates

func (g *Gorm) CreateFlatmate(ctx context.Context, f *domain.Flatmate) error {
	return g.db.WithContext(ctx).Create(f).Error
}

func (g *Gorm) FlatmateByID(ctx context.Context, id uint) (*domain.Flatmate, error) {
	var f domain.Flatmate
	if err := g.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (g *Gorm) FlatmatesByOwner(ctx context.Context, ownerID uint) ([]domain.Flatmate, error) {
	var fms []domain.Flatmate
	if err := g.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at desc").Find(&fms).Error; err != nil {
		return nil, err
	}
	return fms, nil
}

// SearchFlatmates applies the budget filters with range-overlap semantics:
// the profile's range must intersect the query range, not be contained by it
func (g *Gorm) SearchFlatmates(ctx context.Context, f FlatmateFilters) ([]domain.Flatmate, error) {
	q := g.db.WithContext(ctx).Where("is_active = ?", true)
	if f.Location != "" {
		like := "%" + f.Location + "%"
		q = q.Where("location_name LIKE ? OR location_city LIKE ?", like, like)
	}
	if f.MinBudget != nil {
		q = q.Where("budget_max >= ?", *f.MinBudget)
	}
	if f.MaxBudget != nil {
		q = q.Where("budget_min <= ?", *f.MaxBudget)
	}
	if f.Gender != "" && f.Gender != "any" {
		q = q.Where("preference_gender = ? OR preference_gender = ?", f.Gender, "any")
	}
	var fms []domain.Flatmate
	if err := q.Order("created_at desc").Find(&fms).Error; err != nil {
		return nil, err
	}
	return fms, nil
}

func (g *Gorm) UpdateFlatmate(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Flatmate, error) {
	enc, err := encodeUpdates(fields)
	if err != nil {
		return nil, err
	}
	tx := g.db.WithContext(ctx).Model(&domain.Flatmate{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(enc)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var f domain.Flatmate
	if err := g.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (g *Gorm) DeleteFlatmate(ctx context.Context, id, ownerID uint) error {
	tx := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Flatmate{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PGs

func (g *Gorm) CreatePG(ctx context.Context, p *domain.PG) error {
	return g.db.WithContext(ctx).Create(p).Error
}

func (g *Gorm) PGByID(ctx context.Context, id uint) (*domain.PG, error) {
	var p domain.PG
	if err := g.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (g *Gorm) PGsByOwner(ctx context.Context, ownerID uint) ([]domain.PG, error) {
	var pgs []domain.PG
	if err := g.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at desc").Find(&pgs).Error; err != nil {
		return nil, err
	}
	return pgs, nil
}

// SearchPGs pushes what it can into SQL; the rent range is matched against
// the room-type list after the fetch because that list lives in a JSON
// column. The final Match keeps both backends predicate-identical.
func (g *Gorm) SearchPGs(ctx context.Context, f PGFilters) ([]domain.PG, error) {
	q := g.db.WithContext(ctx).Where("is_active = ?", true)
	if f.Location != "" {
		like := "%" + f.Location + "%"
		q = q.Where("location_name LIKE ? OR location_city LIKE ?", like, like)
	}
	if f.Gender != "" && f.Gender != "both" {
		q = q.Where("gender = ? OR gender = ?", f.Gender, "both")
	}
	if f.Meals != nil {
		q = q.Where("meals = ?", *f.Meals)
	}
	var pgs []domain.PG
	if err := q.Order("created_at desc").Find(&pgs).Error; err != nil {
		return nil, err
	}
	if f.MinRent == nil && f.MaxRent == nil {
		return pgs, nil
	}
	filtered := pgs[:0]
	for i := range pgs {
		if f.Match(&pgs[i]) {
			filtered = append(filtered, pgs[i])
		}
	}
	return filtered, nil
}

func (g *Gorm) UpdatePG(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.PG, error) {
	enc, err := encodeUpdates(fields)
	if err != nil {
		return nil, err
	}
	tx := g.db.WithContext(ctx).Model(&domain.PG{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(enc)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var p domain.PG
	if err := g.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (g *Gorm) DeletePG(ctx context.Context, id, ownerID uint) error {
	tx := g.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.PG{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
