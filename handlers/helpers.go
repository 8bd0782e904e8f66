package handlers

import (
	"errors"
	"net/http"

	hotelRepo "staybook/database/repository/hotel"
	userRepo "staybook/database/repository/user"
	"staybook/models"
	"staybook/services/booking"
	"staybook/services/user"
	"staybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service-layer errors to caller-visible HTTP responses.
// Every error is resolved here; nothing leaks a half-applied state to the
// client.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	var pnsErr *booking.PaymentNotSucceededError
	var diErr *booking.DataIntegrityError
	var provErr *booking.ProviderError

	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", vErr.Error())
	case errors.Is(err, booking.ErrIntentMismatch):
		utils.JSONError(c, http.StatusBadRequest, "payment intent mismatch", "")
	case errors.As(err, &pnsErr):
		utils.JSONError(c, http.StatusBadRequest, "payment not succeeded", pnsErr.Status)
	case errors.Is(err, user.ErrWrongCredentials), errors.Is(err, user.ErrUserExists):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrHotelNotFound),
		errors.Is(err, booking.ErrIntentNotFound),
		errors.Is(err, hotelRepo.ErrNotFound),
		errors.Is(err, userRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &diErr):
		utils.GetLogger().Error("data integrity fault", zap.Error(err))
		utils.JSONError(c, http.StatusConflict, "data integrity fault", diErr.Reason)
	case errors.As(err, &provErr):
		utils.JSONError(c, http.StatusInternalServerError, "payment provider unavailable, retry later", "")
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong", "")
	}
}
