package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"staybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppendBookingIfAbsent appends the booking to the hotel's ledger in a single
// conditional update: the filter only matches when no ledger entry carries the
// same payment intent id, so the server evaluates check and append in one
// round trip. Two racing commits for the same intent cannot both match, and
// a $push never overwrites entries appended by concurrent commits for other
// intents.
func (r *MongoHotelRepo) AppendBookingIfAbsent(ctx context.Context, hotelID string, booking models.Booking) (*models.Booking, bool, error) {
	filter := bson.M{
		"id":                       hotelID,
		"bookings.paymentIntentId": bson.M{"$ne": booking.PaymentIntentID},
	}
	update := bson.M{
		"$push": bson.M{"bookings": booking},
		"$set":  bson.M{"lastUpdated": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, false, fmt.Errorf("failed to append booking to hotel %s: %w", hotelID, err)
	}
	if res.MatchedCount == 1 {
		return &booking, true, nil
	}

	// No match: either the hotel does not exist, or a booking with this
	// intent id is already on the ledger. Distinguish by reading it back.
	existing, err := r.getBookingByIntentID(ctx, hotelID, booking.PaymentIntentID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// getBookingByIntentID fetches the single ledger entry keyed by the payment
// intent id, using a positional projection so the rest of the ledger stays
// out of the wire.
func (r *MongoHotelRepo) getBookingByIntentID(ctx context.Context, hotelID, intentID string) (*models.Booking, error) {
	filter := bson.M{
		"id":       hotelID,
		"bookings": bson.M{"$elemMatch": bson.M{"paymentIntentId": intentID}},
	}
	opts := options.FindOne().SetProjection(bson.M{"bookings.$": 1})

	var doc struct {
		Bookings []models.Booking `bson:"bookings"`
	}
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking for intent %s: %w", intentID, err)
	}
	if len(doc.Bookings) == 0 {
		return nil, ErrNotFound
	}
	return &doc.Bookings[0], nil
}
