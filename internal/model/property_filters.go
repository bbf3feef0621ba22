package model

// PropertySearchFilters represents optional filters for property search.
// Zero values mean filter not applied; a present-but-zero value counts as absent.
// City is fuzzy (wrapped with %% automatically).
// Price bounds are dollars; they convert to minor units at bind time.
// This struct lives in model for reuse by repository/service/api layers.

type PropertySearchFilters struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight float64
	MaximumPricePerNight float64
	MinimumRating        float64
}
