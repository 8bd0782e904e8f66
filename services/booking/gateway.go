package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"staybook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// gatewayTimeout bounds every call to the payment provider. A timeout is an
// unknown outcome, not a failure: the idempotent commit path makes it safe
// to retry with the same intent id.
const gatewayTimeout = 15 * time.Second

// PaymentGateway is the narrow contract to the external payment provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string, meta models.IntentMetadata) (*models.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*models.PaymentIntent, error)
}

// StripeGateway implements PaymentGateway against Stripe. The API client is
// constructed explicitly and injected; nothing here touches the package-wide
// stripe key.
type StripeGateway struct {
	sc *client.API
}

// NewStripeGateway builds a gateway with its own Stripe client.
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{sc: sc}
}

// CreateIntent registers a payment intent for the given amount (minor
// currency units), stamped with the hotel/user metadata the reconciler
// verifies at commit time.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, meta models.IntentMetadata) (*models.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("hotelId", meta.HotelID)
	params.AddMetadata("userId", meta.UserID)

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, &ProviderError{Op: "create intent", Err: err}
	}
	return fromStripeIntent(pi), nil
}

// RetrieveIntent fetches the current state of an intent.
func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*models.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.Get(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, ErrIntentNotFound
		}
		return nil, &ProviderError{Op: "retrieve intent", Err: err}
	}
	return fromStripeIntent(pi), nil
}

// fromStripeIntent maps the provider object onto the slice of it the core
// reads.
func fromStripeIntent(pi *stripe.PaymentIntent) *models.PaymentIntent {
	return &models.PaymentIntent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       normalizeStatus(pi.Status),
		ClientSecret: pi.ClientSecret,
		Metadata: models.IntentMetadata{
			HotelID: pi.Metadata["hotelId"],
			UserID:  pi.Metadata["userId"],
		},
	}
}

func normalizeStatus(s stripe.PaymentIntentStatus) string {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return models.IntentStatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return models.IntentStatusCanceled
	case stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresCapture:
		return models.IntentStatusRequiresAction
	case stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusProcessing:
		return models.IntentStatusCreated
	default:
		return string(s)
	}
}
