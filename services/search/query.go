package search

import (
	"net/url"
	"strconv"

	"staybook/models"
)

// BuildPredicate normalizes raw query parameters into a typed predicate.
// Absent parameters impose no constraint. A parameter that is present but
// not parsable as its required type is rejected with a ValidationError
// instead of being dropped: silently ignoring a broken filter would hand the
// caller an unfiltered result set they never asked for.
func BuildPredicate(params url.Values) (models.Predicate, error) {
	var p models.Predicate

	p.Destination = params.Get("destination")

	// Capacity bounds are >= comparisons, so zero is a valid value that
	// constrains nothing.
	adultCount, err := intParam(params, "adultCount", 0)
	if err != nil {
		return models.Predicate{}, err
	}
	p.AdultCount = adultCount

	childCount, err := intParam(params, "childCount", 0)
	if err != nil {
		return models.Predicate{}, err
	}
	p.ChildCount = childCount

	// maxPrice is a <= bound. Zero would coincide with the absent sentinel
	// and return the unfiltered set, so it is rejected as malformed.
	maxPrice, err := intParam(params, "maxPrice", 1)
	if err != nil {
		return models.Predicate{}, err
	}
	p.MaxPrice = maxPrice

	if vs := params["facilities"]; len(vs) > 0 {
		p.Facilities = vs
	}
	if vs := params["types"]; len(vs) > 0 {
		p.Types = vs
	}
	for _, v := range params["stars"] {
		star, err := strconv.Atoi(v)
		if err != nil {
			return models.Predicate{}, &models.ValidationError{Field: "stars", Reason: "must be an integer"}
		}
		p.Stars = append(p.Stars, star)
	}

	return p, nil
}

// intParam parses an optional integer parameter. A present value below min
// is rejected like any other malformed value.
func intParam(params url.Values, field string, min int) (int, error) {
	v := params.Get(field)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		reason := "must be a non-negative integer"
		if min > 0 {
			reason = "must be a positive integer"
		}
		return 0, &models.ValidationError{Field: field, Reason: reason}
	}
	return n, nil
}

// ParsePage resolves the requested page number. Absent or non-numeric values
// default to page 1; anything below 1 is clamped to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
