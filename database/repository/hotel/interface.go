package hotelRepo

import (
	"context"
	"errors"

	"staybook/models"
)

// ErrNotFound is returned when no hotel matches the given identifier
// (and, for owner-scoped lookups, the owning user).
var ErrNotFound = errors.New("hotel not found")

// HotelRepository defines data access for hotel documents and their embedded
// booking ledgers.
type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	GetByIDAndOwner(ctx context.Context, id, userID string) (*models.Hotel, error)
	Update(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error)

	// AllByLastUpdated returns every hotel, most recently updated first.
	AllByLastUpdated(ctx context.Context) ([]models.Hotel, error)

	// Search returns the hotels matching the predicate in the given sort
	// order, bounded by skip/limit. Count runs the same predicate
	// independently so pagination totals never reflect page bounds.
	Search(ctx context.Context, p models.Predicate, sortOption string, skip, limit int) ([]models.Hotel, error)
	Count(ctx context.Context, p models.Predicate) (int64, error)

	// AppendBookingIfAbsent atomically appends the booking to the hotel's
	// ledger unless an entry with the same payment intent id is already
	// there. It returns the ledger entry for that intent id and whether this
	// call was the one that appended it. ErrNotFound if the hotel is missing.
	AppendBookingIfAbsent(ctx context.Context, hotelID string, booking models.Booking) (*models.Booking, bool, error)

	// FindByOwner returns the hotels owned by the user, full ledgers included.
	FindByOwner(ctx context.Context, userID string) ([]models.Hotel, error)

	// FindWithBookingsByUser returns hotels holding at least one booking made
	// by the user.
	FindWithBookingsByUser(ctx context.Context, userID string) ([]models.Hotel, error)
}
