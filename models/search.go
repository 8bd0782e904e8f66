package models

// Predicate is a normalized, AND-combined set of optional hotel constraints.
// The zero value matches every hotel; each set field narrows the match set.
type Predicate struct {
	Destination string   // case-insensitive substring over city OR country
	AdultCount  int      // hotel adultCount >= this (0 = unconstrained)
	ChildCount  int      // hotel childCount >= this (0 = unconstrained)
	Facilities  []string // hotel facilities must contain ALL of these
	Types       []string // hotel type must be ANY of these
	Stars       []int    // hotel starRating must be ANY of these
	MaxPrice    int      // hotel pricePerNight <= this (0 = unconstrained)
}

// Sort options accepted by the search service. Anything else means no sort.
const (
	SortStarRating        = "starRating"
	SortPricePerNightAsc  = "pricePerNightAsc"
	SortPricePerNightDesc = "pricePerNightDesc"
)

// ValidationError reports a malformed or missing caller-supplied field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
