package booking

import (
	"context"

	"staybook/models"
)

// MyBookings projects the booking ledgers down to one user: every hotel the
// user has booked, carrying only that user's entries. Other guests' bookings
// never leave the service.
func (s *DefaultBookingService) MyBookings(ctx context.Context, userID string) ([]models.Hotel, error) {
	hotels, err := s.HotelRepo.FindWithBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]models.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		mine := make([]models.Booking, 0, len(hotel.Bookings))
		for _, b := range hotel.Bookings {
			if b.UserID == userID {
				mine = append(mine, b)
			}
		}
		hotel.Bookings = mine
		results = append(results, hotel)
	}
	return results, nil
}
