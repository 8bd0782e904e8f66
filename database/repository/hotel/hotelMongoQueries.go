package hotelRepo

import (
	"context"
	"fmt"
	"regexp"

	"staybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// predicateFilter translates a normalized predicate into a MongoDB filter.
// Zero-valued predicate fields impose no constraint.
func predicateFilter(p models.Predicate) bson.M {
	filter := bson.M{}

	if p.Destination != "" {
		// Substring match, case-insensitive. The value is quoted so regex
		// metacharacters in user input stay literal.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(p.Destination), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"city": re},
			bson.M{"country": re},
		}
	}
	if p.AdultCount > 0 {
		filter["adultCount"] = bson.M{"$gte": p.AdultCount}
	}
	if p.ChildCount > 0 {
		filter["childCount"] = bson.M{"$gte": p.ChildCount}
	}
	if len(p.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": p.Facilities}
	}
	if len(p.Types) > 0 {
		filter["type"] = bson.M{"$in": p.Types}
	}
	if len(p.Stars) > 0 {
		filter["starRating"] = bson.M{"$in": p.Stars}
	}
	if p.MaxPrice > 0 {
		filter["pricePerNight"] = bson.M{"$lte": p.MaxPrice}
	}
	return filter
}

// sortSpec maps a sort option to a MongoDB sort document. Unrecognized
// options yield nil, leaving results in default store order.
func sortSpec(sortOption string) bson.D {
	switch sortOption {
	case models.SortStarRating:
		return bson.D{{Key: "starRating", Value: -1}}
	case models.SortPricePerNightAsc:
		return bson.D{{Key: "pricePerNight", Value: 1}}
	case models.SortPricePerNightDesc:
		return bson.D{{Key: "pricePerNight", Value: -1}}
	default:
		return nil
	}
}

// Search returns one page of hotels matching the predicate.
func (r *MongoHotelRepo) Search(ctx context.Context, p models.Predicate, sortOption string, skip, limit int) ([]models.Hotel, error) {
	opts := options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
	if sort := sortSpec(sortOption); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, predicateFilter(p), opts)
	if err != nil {
		return nil, fmt.Errorf("hotel search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return hotels, nil
}

// Count runs the predicate as an independent count query.
func (r *MongoHotelRepo) Count(ctx context.Context, p models.Predicate) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, predicateFilter(p))
	if err != nil {
		return 0, fmt.Errorf("hotel count query failed: %w", err)
	}
	return total, nil
}
