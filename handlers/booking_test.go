package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staybook/models"
	"staybook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService returns a canned error or booking.
type fakeBookingService struct {
	booked *models.Booking
	err    error

	gotHotelID  string
	gotUserID   string
	gotIntentID string
}

func (f *fakeBookingService) CreatePaymentIntent(ctx context.Context, hotelID, userID string, numberOfNights int) (*models.PaymentIntentResponse, error) {
	return nil, f.err
}

func (f *fakeBookingService) CommitBooking(ctx context.Context, hotelID, userID, intentID string, details models.BookingDetails) (*models.Booking, error) {
	f.gotHotelID, f.gotUserID, f.gotIntentID = hotelID, userID, intentID
	if f.err != nil {
		return nil, f.err
	}
	return f.booked, nil
}

func (f *fakeBookingService) MyBookings(ctx context.Context, userID string) ([]models.Hotel, error) {
	return nil, f.err
}

func newBookingRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(svc)
	router.POST("/api/hotels/:hotelId/bookings", func(c *gin.Context) {
		c.Set("userID", userID)
	}, h.CommitBooking)
	return router
}

const commitBody = `{
	"paymentIntentId": "pi_1",
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@example.com",
	"checkIn": "2025-06-01T00:00:00Z",
	"checkOut": "2025-06-04T00:00:00Z",
	"numberOfNights": 3
}`

func postCommit(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/hotels/hotel-1/bookings", strings.NewReader(commitBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCommitBooking_ReturnsCommittedBooking(t *testing.T) {
	svc := &fakeBookingService{booked: &models.Booking{ID: "b-1", PaymentIntentID: "pi_1", TotalCost: 300}}
	router := newBookingRouter(svc, "guest-1")

	w := postCommit(router)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hotel-1", svc.gotHotelID)
	assert.Equal(t, "guest-1", svc.gotUserID)
	assert.Equal(t, "pi_1", svc.gotIntentID)
	assert.Contains(t, w.Body.String(), `"paymentIntentId":"pi_1"`)
}

func TestCommitBooking_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"intent mismatch", booking.ErrIntentMismatch, http.StatusBadRequest},
		{"payment not succeeded", &booking.PaymentNotSucceededError{Status: models.IntentStatusRequiresAction}, http.StatusBadRequest},
		{"intent not found", booking.ErrIntentNotFound, http.StatusNotFound},
		{"hotel not found", booking.ErrHotelNotFound, http.StatusNotFound},
		{"integrity fault", &booking.DataIntegrityError{Reason: "amount mismatch"}, http.StatusConflict},
		{"provider down", &booking.ProviderError{Op: "retrieve intent", Err: assert.AnError}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingRouter(&fakeBookingService{err: tc.err}, "guest-1")
			w := postCommit(router)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCommitBooking_PaymentNotSucceededSurfacesStatus(t *testing.T) {
	svc := &fakeBookingService{err: &booking.PaymentNotSucceededError{Status: models.IntentStatusRequiresAction}}
	router := newBookingRouter(svc, "guest-1")

	w := postCommit(router)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.IntentStatusRequiresAction)
}

func TestCommitBooking_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBookingHandler(&fakeBookingService{})
	router.POST("/api/hotels/:hotelId/bookings", h.CommitBooking)

	w := postCommit(router)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
