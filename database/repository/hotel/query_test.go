package hotelRepo

import (
	"testing"

	"staybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPredicateFilter_EmptyPredicateMatchesAll(t *testing.T) {
	filter := predicateFilter(models.Predicate{})
	assert.Empty(t, filter)
}

func TestPredicateFilter_Destination(t *testing.T) {
	filter := predicateFilter(models.Predicate{Destination: "paris"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	city := or[0].(bson.M)["city"].(primitive.Regex)
	country := or[1].(bson.M)["country"].(primitive.Regex)
	assert.Equal(t, "paris", city.Pattern)
	assert.Equal(t, "i", city.Options)
	assert.Equal(t, "paris", country.Pattern)
}

func TestPredicateFilter_QuotesRegexMetacharacters(t *testing.T) {
	filter := predicateFilter(models.Predicate{Destination: "st. moritz (ch)"})

	or := filter["$or"].(bson.A)
	city := or[0].(bson.M)["city"].(primitive.Regex)
	assert.Equal(t, `st\. moritz \(ch\)`, city.Pattern)
}

func TestPredicateFilter_AllConstraints(t *testing.T) {
	p := models.Predicate{
		AdultCount: 2,
		ChildCount: 1,
		Facilities: []string{"Spa", "Parking"},
		Types:      []string{"Boutique"},
		Stars:      []int{4, 5},
		MaxPrice:   200,
	}
	filter := predicateFilter(p)

	assert.Equal(t, bson.M{"$gte": 2}, filter["adultCount"])
	assert.Equal(t, bson.M{"$gte": 1}, filter["childCount"])
	assert.Equal(t, bson.M{"$all": []string{"Spa", "Parking"}}, filter["facilities"])
	assert.Equal(t, bson.M{"$in": []string{"Boutique"}}, filter["type"])
	assert.Equal(t, bson.M{"$in": []int{4, 5}}, filter["starRating"])
	assert.Equal(t, bson.M{"$lte": 200}, filter["pricePerNight"])
}

func TestPredicateFilter_ZeroFieldsImposeNothing(t *testing.T) {
	filter := predicateFilter(models.Predicate{MaxPrice: 150})

	assert.Len(t, filter, 1)
	assert.Contains(t, filter, "pricePerNight")
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "starRating", Value: -1}}, sortSpec(models.SortStarRating))
	assert.Equal(t, bson.D{{Key: "pricePerNight", Value: 1}}, sortSpec(models.SortPricePerNightAsc))
	assert.Equal(t, bson.D{{Key: "pricePerNight", Value: -1}}, sortSpec(models.SortPricePerNightDesc))
	assert.Nil(t, sortSpec(""))
	assert.Nil(t, sortSpec("whatever"))
}
