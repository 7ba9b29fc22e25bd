package search

import (
	"context"
	"fmt"
	"sort"

	"metronest/internal/domain" // Importing domain models
	"metronest/internal/store"  // Store backends and filters
)

// Limits on the page size, matching what the API accepts
const (
	DefaultLimit = 10  // Page size when the caller sends none
	MaxLimit     = 100 // Largest page size the service will honor
)

// Filters is the bag of optional criteria for one search. Which fields
// apply depends on the kind; the rest are ignored.
type Filters struct {
	Location  string // Rooms, flatmates, PGs: substring on area OR city
	MinRent   *int   // Rooms, PGs
	MaxRent   *int   // Rooms, PGs
	MinBudget *int   // Flatmates, range-overlap
	MaxBudget *int   // Flatmates, range-overlap
	Gender    string // All kinds; "any"/"both" stored values match everything
	RoomType  string // Rooms only
	Meals     *bool  // PGs only
}

// Result is one page of search output
type Result struct {
	Data  []domain.Listing `json:"data"`  // The page, newest first
	Total int              `json:"total"` // Filtered count before slicing
	Page  int              `json:"page"`  // Requested page, 1-based
	Limit int              `json:"limit"` // Requested page size
}

// Service runs multi-criteria searches over every available backend
type Service struct {
	sel *store.Selector // Backend routing
}

// NewService builds a search service over the given selector
func NewService(sel *store.Selector) *Service {
	return &Service{sel: sel}
}

// Search filters, merges, sorts and paginates one listing kind. Every
// source returns its full filtered set; pagination happens exactly once
// over the merged sequence so page boundaries never skip records.
func (s *Service) Search(ctx context.Context, kind domain.Kind, f Filters, page, limit int) (*Result, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidArgument)
	}
	if limit < 1 || limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidArgument, MaxLimit)
	}
	switch kind {
	case domain.KindRoom, domain.KindFlatmate, domain.KindPG:
	default:
		// Rejected before any store access
		return nil, fmt.Errorf("%w: unknown listing kind %q", domain.ErrInvalidArgument, kind)
	}

	merged := []domain.Listing{}
	for _, src := range s.sel.Sources(ctx) {
		part, err := searchSource(ctx, src, kind, f)
		if err != nil {
			return nil, err
		}
		merged = append(merged, part...)
	}

	// Newest first, always, regardless of filters
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedMillis() > merged[j].CreatedMillis()
	})

	total := len(merged)
	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	return &Result{
		Data:  merged[skip:end],
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// searchSource runs the kind-appropriate query against one backend
func searchSource(ctx context.Context, src store.Source, kind domain.Kind, f Filters) ([]domain.Listing, error) {
	switch kind {
	case domain.KindRoom:
		rooms, err := src.SearchRooms(ctx, store.RoomFilters{
			Location: f.Location,
			MinRent:  f.MinRent,
			MaxRent:  f.MaxRent,
			Gender:   f.Gender,
			RoomType: f.RoomType,
		})
		if err != nil {
			return nil, err
		}
		out := make([]domain.Listing, len(rooms))
		for i := range rooms {
			out[i] = &rooms[i]
		}
		return out, nil
	case domain.KindFlatmate:
		fms, err := src.SearchFlatmates(ctx, store.FlatmateFilters{
			Location:  f.Location,
			MinBudget: f.MinBudget,
			MaxBudget: f.MaxBudget,
			Gender:    f.Gender,
		})
		if err != nil {
			return nil, err
		}
		out := make([]domain.Listing, len(fms))
		for i := range fms {
			out[i] = &fms[i]
		}
		return out, nil
	case domain.KindPG:
		pgs, err := src.SearchPGs(ctx, store.PGFilters{
			Location: f.Location,
			MinRent:  f.MinRent,
			MaxRent:  f.MaxRent,
			Gender:   f.Gender,
			Meals:    f.Meals,
		})
		if err != nil {
			return nil, err
		}
		out := make([]domain.Listing, len(pgs))
		for i := range pgs {
			out[i] = &pgs[i]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown listing kind %q", domain.ErrInvalidArgument, kind)
}
