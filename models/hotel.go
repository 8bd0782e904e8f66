package models

import "time"

// Hotel is the top-level hotel document. Bookings are embedded: a booking is
// scoped to exactly one hotel and is never addressable on its own.
type Hotel struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"` // owning user
	Name          string    `bson:"name" json:"name"`
	City          string    `bson:"city" json:"city"`
	Country       string    `bson:"country" json:"country"`
	Description   string    `bson:"description" json:"description"`
	Type          string    `bson:"type" json:"type"`
	AdultCount    int       `bson:"adultCount" json:"adultCount"`
	ChildCount    int       `bson:"childCount" json:"childCount"`
	Facilities    []string  `bson:"facilities" json:"facilities"`
	PricePerNight int       `bson:"pricePerNight" json:"pricePerNight"`
	StarRating    int       `bson:"starRating" json:"starRating"` // 1..5
	ImageURLs     []string  `bson:"imageUrls" json:"imageUrls"`
	LastUpdated   time.Time `bson:"lastUpdated" json:"lastUpdated"`
	Bookings      []Booking `bson:"bookings" json:"bookings"`
}

// Booking is one committed ledger entry on a hotel. Immutable once written;
// the payment intent id is the idempotency key for the append.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	UserID          string    `bson:"userId" json:"userId"`
	FirstName       string    `bson:"firstName" json:"firstName"`
	LastName        string    `bson:"lastName" json:"lastName"`
	Email           string    `bson:"email" json:"email"`
	AdultCount      int       `bson:"adultCount" json:"adultCount"`
	ChildCount      int       `bson:"childCount" json:"childCount"`
	CheckIn         time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut        time.Time `bson:"checkOut" json:"checkOut"`
	TotalCost       int       `bson:"totalCost" json:"totalCost"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingDetails is the client-supplied portion of a booking commit.
type BookingDetails struct {
	FirstName      string    `json:"firstName" binding:"required"`
	LastName       string    `json:"lastName" binding:"required"`
	Email          string    `json:"email" binding:"required"`
	AdultCount     int       `json:"adultCount"`
	ChildCount     int       `json:"childCount"`
	CheckIn        time.Time `json:"checkIn" binding:"required"`
	CheckOut       time.Time `json:"checkOut" binding:"required"`
	NumberOfNights int       `json:"numberOfNights" binding:"required"`
}

// Pagination describes a page of search results.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// HotelSearchResponse is the payload returned by the search endpoint.
type HotelSearchResponse struct {
	Data       []Hotel    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
