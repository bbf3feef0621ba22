package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/dpletzke/LightBnB/internal/model"
)

func TestParseSearchFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/properties?city=van&owner_id=7&minimum_price_per_night=50.5&maximum_price_per_night=200&minimum_rating=4", nil)
	f, err := parseSearchFilters(r)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if f.City != "van" || f.OwnerID != 7 || f.MinimumPricePerNight != 50.5 ||
		f.MaximumPricePerNight != 200 || f.MinimumRating != 4 {
		t.Fatalf("unexpected filters: %+v", f)
	}
}

func TestParseSearchFiltersAbsentParamsStayZero(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/properties", nil)
	f, err := parseSearchFilters(r)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if *f != (model.PropertySearchFilters{}) {
		t.Fatalf("expected zero filters, got %+v", f)
	}
}

func TestParseSearchFiltersRejectsMalformedNumbers(t *testing.T) {
	for _, target := range []string{
		"/api/v1/properties?owner_id=abc",
		"/api/v1/properties?minimum_price_per_night=abc",
		"/api/v1/properties?maximum_price_per_night=abc",
		"/api/v1/properties?minimum_rating=abc",
	} {
		r := httptest.NewRequest("GET", target, nil)
		if _, err := parseSearchFilters(r); err == nil {
			t.Fatalf("expected error for %s", target)
		}
	}
}

func TestParseLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/properties?limit=25", nil)
	if got := parseLimit(r); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	r = httptest.NewRequest("GET", "/api/v1/properties", nil)
	if got := parseLimit(r); got != 0 {
		t.Fatalf("expected 0 for absent limit, got %d", got)
	}
	r = httptest.NewRequest("GET", "/api/v1/properties?limit=abc", nil)
	if got := parseLimit(r); got != 0 {
		t.Fatalf("expected 0 for malformed limit, got %d", got)
	}
}
