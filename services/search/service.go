package search

import (
	"context"
	"fmt"

	hotelRepo "staybook/database/repository/hotel"
	"staybook/models"
)

// DefaultPageSize is the number of hotels per search page when the service
// is not configured otherwise.
const DefaultPageSize = 5

// SearchService serves paginated hotel searches.
type SearchService interface {
	Search(ctx context.Context, p models.Predicate, sortOption string, page int) (*models.HotelSearchResponse, error)
}

// DefaultSearchService implements SearchService on top of the hotel repository.
type DefaultSearchService struct {
	Repo     hotelRepo.HotelRepository
	PageSize int
}

// Search applies the predicate, sort order and page bounds and returns the
// page together with pagination metadata. The total comes from an independent
// count query over the same predicate; pages = ceil(total / pageSize).
// Purely a read, no side effects.
func (s *DefaultSearchService) Search(ctx context.Context, p models.Predicate, sortOption string, page int) (*models.HotelSearchResponse, error) {
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * pageSize

	hotels, err := s.Repo.Search(ctx, p, sortOption, skip, pageSize)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	total, err := s.Repo.Count(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("search count failed: %w", err)
	}

	if hotels == nil {
		hotels = []models.Hotel{}
	}
	pages := (int(total) + pageSize - 1) / pageSize

	return &models.HotelSearchResponse{
		Data: hotels,
		Pagination: models.Pagination{
			Total: int(total),
			Page:  page,
			Pages: pages,
		},
	}, nil
}
