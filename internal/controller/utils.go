package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dpletzke/LightBnB/internal/model"
)

type apiError struct {
	Error string `json:"error"`
}

type apiResponse[T any] struct {
	Data T `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseLimit(r *http.Request) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return 0
}

// parseSearchFilters reads the filter query parameters. Absent and
// zero-valued parameters leave their filter unset; a malformed numeric value
// is an error rather than a silently dropped filter.
func parseSearchFilters(r *http.Request) (*model.PropertySearchFilters, error) {
	q := r.URL.Query()
	f := &model.PropertySearchFilters{City: q.Get("city")}
	if s := q.Get("owner_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("owner_id: %w", err)
		}
		f.OwnerID = v
	}
	if s := q.Get("minimum_price_per_night"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("minimum_price_per_night: %w", err)
		}
		f.MinimumPricePerNight = v
	}
	if s := q.Get("maximum_price_per_night"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("maximum_price_per_night: %w", err)
		}
		f.MaximumPricePerNight = v
	}
	if s := q.Get("minimum_rating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("minimum_rating: %w", err)
		}
		f.MinimumRating = v
	}
	return f, nil
}
