package search

import (
	"context"
	"fmt"
	"testing"

	"staybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

// fakeHotelRepo serves search pages from an in-memory slice, honoring the
// skip/limit contract the mongo repo implements.
type fakeHotelRepo struct {
	hotels []models.Hotel

	lastSort  string
	lastSkip  int
	lastLimit int
}

func (f *fakeHotelRepo) Create(ctx context.Context, h *models.Hotel) error { return nil }
func (f *fakeHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) GetByIDAndOwner(ctx context.Context, id, userID string) (*models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) Update(ctx context.Context, h *models.Hotel) (*models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) AllByLastUpdated(ctx context.Context) ([]models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) AppendBookingIfAbsent(ctx context.Context, hotelID string, b models.Booking) (*models.Booking, bool, error) {
	return nil, false, nil
}
func (f *fakeHotelRepo) FindByOwner(ctx context.Context, userID string) ([]models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) FindWithBookingsByUser(ctx context.Context, userID string) ([]models.Hotel, error) {
	return nil, nil
}

func (f *fakeHotelRepo) Search(ctx context.Context, p models.Predicate, sortOption string, skip, limit int) ([]models.Hotel, error) {
	f.lastSort, f.lastSkip, f.lastLimit = sortOption, skip, limit

	if skip >= len(f.hotels) {
		return nil, nil
	}
	end := skip + limit
	if end > len(f.hotels) {
		end = len(f.hotels)
	}
	return f.hotels[skip:end], nil
}

func (f *fakeHotelRepo) Count(ctx context.Context, p models.Predicate) (int64, error) {
	return int64(len(f.hotels)), nil
}

func makeHotels(n int) []models.Hotel {
	hotels := make([]models.Hotel, n)
	for i := range hotels {
		hotels[i] = models.Hotel{ID: fmt.Sprintf("hotel-%d", i)}
	}
	return hotels
}

// ---- tests ----

func TestSearch_PaginationMetadata(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(12)}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	resp, err := svc.Search(context.Background(), models.Predicate{}, "", 1)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 5)
	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.Pages) // ceil(12/5)
}

func TestSearch_PagesConcatenateWithoutGaps(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(12)}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	seen := map[string]bool{}
	var count int
	for page := 1; page <= 3; page++ {
		resp, err := svc.Search(context.Background(), models.Predicate{}, "", page)
		require.NoError(t, err)
		for _, h := range resp.Data {
			assert.False(t, seen[h.ID], "hotel %s appeared on two pages", h.ID)
			seen[h.ID] = true
			count++
		}
	}
	assert.Equal(t, 12, count)
}

func TestSearch_LastPagePartial(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(12)}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	resp, err := svc.Search(context.Background(), models.Predicate{}, "", 3)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
}

func TestSearch_ClampsPageBelowOne(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(3)}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	resp, err := svc.Search(context.Background(), models.Predicate{}, "", -2)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 0, repo.lastSkip)
}

func TestSearch_DefaultsPageSize(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(6)}
	svc := &DefaultSearchService{Repo: repo} // PageSize unset

	resp, err := svc.Search(context.Background(), models.Predicate{}, "", 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, repo.lastLimit)
	assert.Len(t, resp.Data, DefaultPageSize)
	assert.Equal(t, 2, resp.Pagination.Pages)
}

func TestSearch_EmptyResultIsNotNil(t *testing.T) {
	repo := &fakeHotelRepo{}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	resp, err := svc.Search(context.Background(), models.Predicate{}, "", 1)
	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Pagination.Pages)
}

func TestSearch_PassesSortOptionThrough(t *testing.T) {
	repo := &fakeHotelRepo{hotels: makeHotels(1)}
	svc := &DefaultSearchService{Repo: repo, PageSize: 5}

	_, err := svc.Search(context.Background(), models.Predicate{}, models.SortPricePerNightAsc, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SortPricePerNightAsc, repo.lastSort)
}
