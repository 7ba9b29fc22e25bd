package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"metronest/internal/domain" // Importing domain models
)

// Memory is the process-lifetime fallback Source. It mirrors the persistent
// store's collections in maps and keeps the service minimally functional
// when MySQL is unreachable. Nothing survives a restart. It is constructed
// explicitly and injected, so tests can make isolated instances.
type Memory struct {
	mu        sync.Mutex               // Guards every collection
	users     map[uint]domain.User     // Users by ID
	rooms     map[uint]domain.Room     // Rooms by ID
	flatmates map[uint]domain.Flatmate // Flatmates by ID
	pgs       map[uint]domain.PG       // PGs by ID
	nextID    uint                     // Shared ID sequence
}

// NewMemory builds an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		users:     make(map[uint]domain.User),
		rooms:     make(map[uint]domain.Room),
		flatmates: make(map[uint]domain.Flatmate),
		pgs:       make(map[uint]domain.PG),
	}
}

// Ping always succeeds; memory is never unavailable
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// id hands out the next sequence value; callers must hold mu
func (m *Memory) id() uint {
	m.nextID++
	return m.nextID
}

// stamp fills creation/update times the way the DB's auto timestamps would
func stamp(createdAt *int64, updatedAt *int64) {
	now := time.Now().UnixMilli()
	if *createdAt == 0 {
		*createdAt = now
	}
	*updatedAt = now
}

// Users

func (m *Memory) CreateUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		// Mirror the DB's unique indexes on email and phone
		if existing.Email == u.Email || existing.Phone == u.Phone {
			return errors.New("duplicate email or phone")
		}
	}
	u.ID = m.id()
	stamp(&u.CreatedAt, &u.UpdatedAt)
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) UserByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.Phone == phone {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) Users(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt > users[j].CreatedAt })
	return users, nil
}

// Rooms

func (m *Memory) CreateRoom(ctx context.Context, r *domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.id()
	stamp(&r.CreatedAt, &r.UpdatedAt)
	m.rooms[r.ID] = *r
	return nil
}

func (m *Memory) RoomByID(ctx context.Context, id uint) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[id]; ok {
		return &r, nil
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) RoomsByOwner(ctx context.Context, ownerID uint) ([]domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rooms []domain.Room
	for _, r := range m.rooms {
		if r.OwnerID == ownerID {
			rooms = append(rooms, r)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt > rooms[j].CreatedAt })
	return rooms, nil
}

func (m *Memory) SearchRooms(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rooms []domain.Room
	for _, r := range m.rooms {
		r := r
		if f.Match(&r) {
			rooms = append(rooms, r)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt > rooms[j].CreatedAt })
	return rooms, nil
}

func (m *Memory) UpdateRoom(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok || r.OwnerID != ownerID {
		// Same answer for "doesn't exist" and "not yours"
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		applyRoomField(&r, k, v)
	}
	r.UpdatedAt = time.Now().UnixMilli()
	m.rooms[id] = r
	return &r, nil
}

func (m *Memory) DeleteRoom(ctx context.Context, id, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[id]; !ok || r.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.rooms, id)
	return nil
}

// Flatmates

func (m *Memory) CreateFlatmate(ctx context.Context, f *domain.Flatmate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = m.id()
	stamp(&f.CreatedAt, &f.UpdatedAt)
	m.flatmates[f.ID] = *f
	return nil
}

func (m *Memory) FlatmateByID(ctx context.Context, id uint) (*domain.Flatmate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.flatmates[id]; ok {
		return &f, nil
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) FlatmatesByOwner(ctx context.Context, ownerID uint) ([]domain.Flatmate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var fms []domain.Flatmate
	for _, f := range m.flatmates {
		if f.UserID == ownerID {
			fms = append(fms, f)
		}
	}
	sort.Slice(fms, func(i, j int) bool { return fms[i].CreatedAt > fms[j].CreatedAt })
	return fms, nil
}

func (m *Memory) SearchFlatmates(ctx context.Context, f FlatmateFilters) ([]domain.Flatmate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var fms []domain.Flatmate
	for _, fm := range m.flatmates {
		fm := fm
		if f.Match(&fm) {
			fms = append(fms, fm)
		}
	}
	sort.Slice(fms, func(i, j int) bool { return fms[i].CreatedAt > fms[j].CreatedAt })
	return fms, nil
}

func (m *Memory) UpdateFlatmate(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.Flatmate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.flatmates[id]
	if !ok || f.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		applyFlatmateField(&f, k, v)
	}
	f.UpdatedAt = time.Now().UnixMilli()
	m.flatmates[id] = f
	return &f, nil
}

func (m *Memory) DeleteFlatmate(ctx context.Context, id, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.flatmates[id]; !ok || f.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.flatmates, id)
	return nil
}

// PGs

func (m *Memory) CreatePG(ctx context.Context, p *domain.PG) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	stamp(&p.CreatedAt, &p.UpdatedAt)
	m.pgs[p.ID] = *p
	return nil
}

func (m *Memory) PGByID(ctx context.Context, id uint) (*domain.PG, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pgs[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *Memory) PGsByOwner(ctx context.Context, ownerID uint) ([]domain.PG, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pgs []domain.PG
	for _, p := range m.pgs {
		if p.OwnerID == ownerID {
			pgs = append(pgs, p)
		}
	}
	sort.Slice(pgs, func(i, j int) bool { return pgs[i].CreatedAt > pgs[j].CreatedAt })
	return pgs, nil
}

func (m *Memory) SearchPGs(ctx context.Context, f PGFilters) ([]domain.PG, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pgs []domain.PG
	for _, p := range m.pgs {
		p := p
		if f.Match(&p) {
			pgs = append(pgs, p)
		}
	}
	sort.Slice(pgs, func(i, j int) bool { return pgs[i].CreatedAt > pgs[j].CreatedAt })
	return pgs, nil
}

func (m *Memory) UpdatePG(ctx context.Context, id, ownerID uint, fields map[string]any) (*domain.PG, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pgs[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		applyPGField(&p, k, v)
	}
	p.UpdatedAt = time.Now().UnixMilli()
	m.pgs[id] = p
	return &p, nil
}

func (m *Memory) DeletePG(ctx context.Context, id, ownerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pgs[id]; !ok || p.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.pgs, id)
	return nil
}
