package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"staybook/middleware"
	"staybook/models"
	"staybook/services/hotel"

	"github.com/gin-gonic/gin"
)

// MyHotelHandler serves the owner-facing hotel CRUD surface.
type MyHotelHandler struct {
	Svc hotel.HotelService
}

// NewMyHotelHandler wires the owner hotel endpoints.
func NewMyHotelHandler(svc hotel.HotelService) *MyHotelHandler {
	return &MyHotelHandler{Svc: svc}
}

// CreateHotel handles POST /api/my-hotels (multipart form).
func (h *MyHotelHandler) CreateHotel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	hotelDoc, images, err := parseHotelForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	hotelDoc.UserID = userID

	created, err := h.Svc.Create(c.Request.Context(), hotelDoc, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// MyHotels handles GET /api/my-hotels.
func (h *MyHotelHandler) MyHotels(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	hotels, err := h.Svc.MyHotels(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetMyHotel handles GET /api/my-hotels/:hotelId, scoped to the owner.
func (h *MyHotelHandler) GetMyHotel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	hotelDoc, err := h.Svc.GetOwned(c.Request.Context(), c.Param("hotelId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotelDoc)
}

// UpdateHotel handles PUT /api/my-hotels/:hotelId (multipart form).
func (h *MyHotelHandler) UpdateHotel(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	hotelDoc, images, err := parseHotelForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	hotelDoc.ID = c.Param("hotelId")
	hotelDoc.UserID = userID

	updated, err := h.Svc.Update(c.Request.Context(), hotelDoc, images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// parseHotelForm reads the multipart hotel form. Numeric fields that are
// present but unparsable are rejected rather than coerced.
func parseHotelForm(c *gin.Context) (*models.Hotel, []*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, &models.ValidationError{Field: "form", Reason: "invalid multipart form"}
	}

	pricePerNight, err := formInt(c, "pricePerNight")
	if err != nil {
		return nil, nil, err
	}
	starRating, err := formInt(c, "starRating")
	if err != nil {
		return nil, nil, err
	}
	adultCount, err := formInt(c, "adultCount")
	if err != nil {
		return nil, nil, err
	}
	childCount, err := formInt(c, "childCount")
	if err != nil {
		return nil, nil, err
	}

	hotelDoc := &models.Hotel{
		Name:          c.PostForm("name"),
		City:          c.PostForm("city"),
		Country:       c.PostForm("country"),
		Description:   c.PostForm("description"),
		Type:          c.PostForm("type"),
		PricePerNight: pricePerNight,
		StarRating:    starRating,
		AdultCount:    adultCount,
		ChildCount:    childCount,
		Facilities:    form.Value["facilities"],
		ImageURLs:     form.Value["imageUrls"], // URLs the caller kept on update
	}
	return hotelDoc, form.File["imageFiles"], nil
}

func formInt(c *gin.Context, field string) (int, error) {
	v := c.PostForm(field)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &models.ValidationError{Field: field, Reason: "must be an integer"}
	}
	return n, nil
}
