package models

// Payment intent statuses as surfaced to the reconciler. The gateway
// normalizes provider-specific statuses into these values.
const (
	IntentStatusCreated        = "created"
	IntentStatusRequiresAction = "requires-action"
	IntentStatusSucceeded      = "succeeded"
	IntentStatusFailed         = "failed"
	IntentStatusCanceled       = "canceled"
)

// IntentMetadata binds a payment intent to the hotel and user it was created
// for. The reconciler refuses to commit a booking whose request context does
// not match these values.
type IntentMetadata struct {
	HotelID string `json:"hotelId"`
	UserID  string `json:"userId"`
}

// PaymentIntent is the slice of the provider's intent object the core reads.
// Amount is in minor currency units.
type PaymentIntent struct {
	ID           string
	Amount       int64
	Currency     string
	Status       string
	ClientSecret string
	Metadata     IntentMetadata
}

// PaymentIntentResponse is returned to the client after intent creation.
// TotalCost is in major units (what the client sees), while the provider
// received Amount = TotalCost * 100.
type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	TotalCost       int    `json:"totalCost"`
}
