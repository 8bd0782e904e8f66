package search

import (
	"net/url"
	"testing"

	"staybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPredicate_Empty(t *testing.T) {
	p, err := BuildPredicate(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, models.Predicate{}, p)
}

func TestBuildPredicate_AllFilters(t *testing.T) {
	params := url.Values{
		"destination": {"Paris"},
		"adultCount":  {"2"},
		"childCount":  {"1"},
		"facilities":  {"Free WiFi", "Parking"},
		"types":       {"Boutique", "Budget"},
		"stars":       {"4", "5"},
		"maxPrice":    {"200"},
	}

	p, err := BuildPredicate(params)
	require.NoError(t, err)

	assert.Equal(t, "Paris", p.Destination)
	assert.Equal(t, 2, p.AdultCount)
	assert.Equal(t, 1, p.ChildCount)
	assert.Equal(t, []string{"Free WiFi", "Parking"}, p.Facilities)
	assert.Equal(t, []string{"Boutique", "Budget"}, p.Types)
	assert.Equal(t, []int{4, 5}, p.Stars)
	assert.Equal(t, 200, p.MaxPrice)
}

func TestBuildPredicate_ScalarListFields(t *testing.T) {
	p, err := BuildPredicate(url.Values{"facilities": {"Spa"}, "stars": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Spa"}, p.Facilities)
	assert.Equal(t, []int{3}, p.Stars)
}

func TestBuildPredicate_FailsClosedOnBadInput(t *testing.T) {
	cases := []struct {
		name   string
		params url.Values
		field  string
	}{
		{"adultCount not a number", url.Values{"adultCount": {"two"}}, "adultCount"},
		{"adultCount negative", url.Values{"adultCount": {"-2"}}, "adultCount"},
		{"childCount negative", url.Values{"childCount": {"-1"}}, "childCount"},
		{"maxPrice not a number", url.Values{"maxPrice": {"cheap"}}, "maxPrice"},
		{"maxPrice zero", url.Values{"maxPrice": {"0"}}, "maxPrice"},
		{"maxPrice negative", url.Values{"maxPrice": {"-50"}}, "maxPrice"},
		{"stars not a number", url.Values{"stars": {"4", "lots"}}, "stars"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPredicate(tc.params)
			require.Error(t, err)

			vErr, ok := err.(*models.ValidationError)
			require.True(t, ok, "expected ValidationError, got %T", err)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestBuildPredicate_ZeroCapacityCountsAreValid(t *testing.T) {
	// Capacity filters are >= bounds; a zero value is well-formed and
	// constrains nothing, matching what search forms send by default.
	p, err := BuildPredicate(url.Values{"adultCount": {"0"}, "childCount": {"0"}})
	require.NoError(t, err)
	assert.Zero(t, p.AdultCount)
	assert.Zero(t, p.ChildCount)
}

func TestBuildPredicate_AbsentFieldsStayOpen(t *testing.T) {
	// A filter on one field must leave every other field unconstrained.
	p, err := BuildPredicate(url.Values{"maxPrice": {"150"}})
	require.NoError(t, err)

	assert.Empty(t, p.Destination)
	assert.Zero(t, p.AdultCount)
	assert.Zero(t, p.ChildCount)
	assert.Nil(t, p.Facilities)
	assert.Nil(t, p.Types)
	assert.Nil(t, p.Stars)
	assert.Equal(t, 150, p.MaxPrice)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}
