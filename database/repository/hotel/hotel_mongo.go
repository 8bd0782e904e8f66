package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"staybook/database"
	"staybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	coll := database.MongoClient.Database("staybook").Collection("hotels")
	repo := &MongoHotelRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoHotelRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "bookings.userId", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "country", Value: 1}}},
		{Keys: bson.D{{Key: "lastUpdated", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new hotel document.
func (r *MongoHotelRepo) Create(ctx context.Context, hotel *models.Hotel) error {
	if _, err := r.coll.InsertOne(ctx, hotel); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its unique ID.
func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel %s: %w", id, err)
	}
	return &hotel, nil
}

// GetByIDAndOwner retrieves a hotel only if it is owned by the given user.
func (r *MongoHotelRepo) GetByIDAndOwner(ctx context.Context, id, userID string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel %s: %w", id, err)
	}
	return &hotel, nil
}

// Update replaces the mutable hotel attributes, scoped to the owning user.
// The booking ledger is deliberately excluded: bookings are append-only and
// only ever written through AppendBookingIfAbsent.
func (r *MongoHotelRepo) Update(ctx context.Context, hotel *models.Hotel) (*models.Hotel, error) {
	filter := bson.M{"id": hotel.ID, "userId": hotel.UserID}
	update := bson.M{"$set": bson.M{
		"name":          hotel.Name,
		"city":          hotel.City,
		"country":       hotel.Country,
		"description":   hotel.Description,
		"type":          hotel.Type,
		"adultCount":    hotel.AdultCount,
		"childCount":    hotel.ChildCount,
		"facilities":    hotel.Facilities,
		"pricePerNight": hotel.PricePerNight,
		"starRating":    hotel.StarRating,
		"imageUrls":     hotel.ImageURLs,
		"lastUpdated":   hotel.LastUpdated,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Hotel
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update hotel %s: %w", hotel.ID, err)
	}
	return &updated, nil
}

// AllByLastUpdated returns every hotel, most recently updated first.
func (r *MongoHotelRepo) AllByLastUpdated(ctx context.Context) ([]models.Hotel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

// FindByOwner returns the hotels owned by the user.
func (r *MongoHotelRepo) FindByOwner(ctx context.Context, userID string) ([]models.Hotel, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels for owner %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}

// FindWithBookingsByUser returns hotels holding at least one booking made by
// the user.
func (r *MongoHotelRepo) FindWithBookingsByUser(ctx context.Context, userID string) ([]models.Hotel, error) {
	filter := bson.M{"bookings": bson.M{"$elemMatch": bson.M{"userId": userID}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels with bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}
