package handlers

import (
	"net/http"
	"strings"

	"staybook/services/hotel"
	"staybook/services/search"
	"staybook/utils"

	"github.com/gin-gonic/gin"
)

// HotelHandler serves the public hotel surface: search, listing, detail.
type HotelHandler struct {
	SearchSvc search.SearchService
	HotelSvc  hotel.HotelService
}

// NewHotelHandler wires the public hotel endpoints.
func NewHotelHandler(searchSvc search.SearchService, hotelSvc hotel.HotelService) *HotelHandler {
	return &HotelHandler{SearchSvc: searchSvc, HotelSvc: hotelSvc}
}

// SearchHotels handles GET /api/hotels/search.
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	params := c.Request.URL.Query()

	predicate, err := search.BuildPredicate(params)
	if err != nil {
		respondError(c, err)
		return
	}
	page := search.ParsePage(params.Get("page"))

	result, err := h.SearchSvc.Search(c.Request.Context(), predicate, params.Get("sortOption"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListHotels handles GET /api/hotels.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	hotels, err := h.HotelSvc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotel handles GET /api/hotels/:hotelId.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id := strings.TrimSpace(c.Param("hotelId"))
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotel id is required", "")
		return
	}

	hotelDoc, err := h.HotelSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotelDoc)
}
