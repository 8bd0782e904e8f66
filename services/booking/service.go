package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	hotelRepo "staybook/database/repository/hotel"
	"staybook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService ties the payment intent lifecycle to the hotel booking
// ledger.
type BookingService interface {
	CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*models.PaymentIntentResponse, error)
	CommitBooking(ctx context.Context, hotelID, userID, intentID string, details models.BookingDetails) (*models.Booking, error)
	MyBookings(ctx context.Context, userID string) ([]models.Hotel, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	HotelRepo hotelRepo.HotelRepository
	Gateway   PaymentGateway
	Logger    *zap.Logger
}

// IntentCurrency is the settlement currency for all intents.
const IntentCurrency = "usd"

// CreatePaymentIntent prices the stay off the current hotel document and
// registers an intent with the provider. The amount is charged in minor
// units; the metadata binds the intent to this hotel and user so the commit
// can later verify it.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*models.PaymentIntentResponse, error) {
	if numberOfNights < 1 {
		return nil, &models.ValidationError{Field: "numberOfNights", Reason: "must be at least 1"}
	}

	hotel, err := s.HotelRepo.GetByID(ctx, hotelID)
	if errors.Is(err, hotelRepo.ErrNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}

	totalCost := hotel.PricePerNight * numberOfNights
	amount := int64(totalCost) * 100

	intent, err := s.Gateway.CreateIntent(ctx, amount, IntentCurrency, models.IntentMetadata{
		HotelID: hotelID,
		UserID:  userID,
	})
	if err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment provider returned no client secret for intent %s", intent.ID)
	}

	s.Logger.Info("payment intent created",
		zap.String("intentId", intent.ID),
		zap.String("hotelId", hotelID),
		zap.Int64("amount", amount))

	return &models.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

// CommitBooking reconciles a client-reported payment against the provider's
// record and appends the booking to the hotel's ledger exactly once.
//
// The append is a single conditional operation keyed on the intent id, so a
// client retry after a lost acknowledgement, or two racing submissions of
// the same intent, land on the same ledger entry.
func (s *DefaultBookingService) CommitBooking(ctx context.Context, hotelID, userID, intentID string, details models.BookingDetails) (*models.Booking, error) {
	if intentID == "" {
		return nil, &models.ValidationError{Field: "paymentIntentId", Reason: "required"}
	}
	if details.NumberOfNights < 1 {
		return nil, &models.ValidationError{Field: "numberOfNights", Reason: "must be at least 1"}
	}

	intent, err := s.Gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}

	if intent.Metadata.HotelID != hotelID || intent.Metadata.UserID != userID {
		return nil, ErrIntentMismatch
	}
	if intent.Status != models.IntentStatusSucceeded {
		return nil, &PaymentNotSucceededError{Status: intent.Status}
	}

	hotel, err := s.HotelRepo.GetByID(ctx, hotelID)
	if errors.Is(err, hotelRepo.ErrNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}

	// Re-validate the captured amount against the current hotel price. A
	// mismatch means the intent amount and the ledger would disagree about
	// what was paid for; that is a fault to investigate, not to absorb.
	totalCost := hotel.PricePerNight * details.NumberOfNights
	if intent.Amount != int64(totalCost)*100 {
		s.Logger.Error("intent amount does not match computed stay cost",
			zap.String("intentId", intentID),
			zap.String("hotelId", hotelID),
			zap.Int64("intentAmount", intent.Amount),
			zap.Int("computedCost", totalCost))
		return nil, &DataIntegrityError{
			Reason: fmt.Sprintf("intent %s amount %d does not match computed cost %d", intentID, intent.Amount, int64(totalCost)*100),
		}
	}

	booking := models.Booking{
		ID:              uuid.New().String(),
		PaymentIntentID: intentID,
		UserID:          userID,
		FirstName:       details.FirstName,
		LastName:        details.LastName,
		Email:           details.Email,
		AdultCount:      details.AdultCount,
		ChildCount:      details.ChildCount,
		CheckIn:         details.CheckIn,
		CheckOut:        details.CheckOut,
		TotalCost:       totalCost,
		CreatedAt:       time.Now(),
	}

	committed, appended, err := s.HotelRepo.AppendBookingIfAbsent(ctx, hotelID, booking)
	if errors.Is(err, hotelRepo.ErrNotFound) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}

	if !appended {
		// Replay of an already-committed intent. The stored entry wins, but
		// only if it describes the same booking.
		if !sameBooking(committed, booking) {
			s.Logger.Error("replayed commit disagrees with recorded booking",
				zap.String("intentId", intentID),
				zap.String("hotelId", hotelID))
			return nil, &DataIntegrityError{
				Reason: fmt.Sprintf("intent %s already recorded with different booking content", intentID),
			}
		}
		s.Logger.Info("booking commit replayed, returning recorded entry",
			zap.String("intentId", intentID),
			zap.String("bookingId", committed.ID))
		return committed, nil
	}

	s.Logger.Info("booking committed",
		zap.String("intentId", intentID),
		zap.String("hotelId", hotelID),
		zap.String("bookingId", committed.ID))
	return committed, nil
}

// sameBooking reports whether a replayed commit describes the ledger entry
// already recorded under its intent id. ID and CreatedAt are minted per
// attempt and carry no client content, so they are excluded.
func sameBooking(stored *models.Booking, attempt models.Booking) bool {
	return stored.UserID == attempt.UserID &&
		stored.TotalCost == attempt.TotalCost &&
		stored.CheckIn.Equal(attempt.CheckIn) &&
		stored.CheckOut.Equal(attempt.CheckOut) &&
		stored.AdultCount == attempt.AdultCount &&
		stored.ChildCount == attempt.ChildCount &&
		stored.FirstName == attempt.FirstName &&
		stored.LastName == attempt.LastName &&
		stored.Email == attempt.Email
}
