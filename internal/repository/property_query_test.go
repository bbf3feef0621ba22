package repository

import (
	"strings"
	"testing"

	"github.com/dpletzke/LightBnB/internal/model"
)

func TestSearchWithoutFiltersHasNoWhere(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{}, 10)
	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got:\n%s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected only the limit argument, got %v", args)
	}
	if args[0] != 10 {
		t.Fatalf("expected limit 10, got %v", args[0])
	}
	for _, clause := range []string{"GROUP BY properties.id", "ORDER BY properties.cost_per_night", "LIMIT $1"} {
		if !strings.Contains(query, clause) {
			t.Fatalf("expected %q in query:\n%s", clause, query)
		}
	}
}

func TestSearchNilFiltersMatchEmptyFilters(t *testing.T) {
	qNil, aNil := buildSearchQuery(nil, 10)
	qEmpty, aEmpty := buildSearchQuery(&model.PropertySearchFilters{}, 10)
	if qNil != qEmpty {
		t.Fatalf("expected identical queries, got:\n%s\nvs:\n%s", qNil, qEmpty)
	}
	if len(aNil) != len(aEmpty) {
		t.Fatalf("expected identical args, got %v vs %v", aNil, aEmpty)
	}
}

func TestSearchSingleFilterBindsFirstPlaceholder(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{City: "van"}, 10)
	if !strings.Contains(query, "properties.city LIKE $1") {
		t.Fatalf("expected city bound to $1, got:\n%s", query)
	}
	if args[0] != "%van%" {
		t.Fatalf("expected wildcard-wrapped city, got %v", args[0])
	}
}

func TestSearchPredicatesKeepFixedOrder(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{
		City:                 "van",
		OwnerID:              7,
		MinimumPricePerNight: 50,
		MaximumPricePerNight: 200,
		MinimumRating:        3,
	}, 10)

	whereStart, groupStart := strings.Index(query, "WHERE"), strings.Index(query, "GROUP BY")
	if whereStart < 0 || groupStart < whereStart {
		t.Fatalf("expected WHERE before GROUP BY, got:\n%s", query)
	}
	wherePart := query[whereStart:groupStart]
	last := -1
	for _, pred := range []string{
		"properties.city LIKE $1",
		"properties.owner_id = $2",
		"properties.cost_per_night >= $3",
		"properties.cost_per_night <= $4",
	} {
		idx := strings.Index(wherePart, pred)
		if idx < 0 {
			t.Fatalf("expected %q in WHERE clause:\n%s", pred, wherePart)
		}
		if idx < last {
			t.Fatalf("predicate %q out of order:\n%s", pred, wherePart)
		}
		last = idx
	}
	if !strings.Contains(query, "HAVING avg(property_reviews.rating) >= $5") {
		t.Fatalf("expected rating bound to $5, got:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $6") {
		t.Fatalf("expected limit bound to $6, got:\n%s", query)
	}

	want := []any{"%van%", int64(7), int64(5000), int64(20000), float64(3), 10}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %#v, got %#v", i, want[i], args[i])
		}
	}
}

func TestSearchPriceDollarsBecomeCents(t *testing.T) {
	_, args := buildSearchQuery(&model.PropertySearchFilters{MinimumPricePerNight: 1.50}, 10)
	if args[0] != int64(150) {
		t.Fatalf("expected 150 cents, got %v", args[0])
	}
	_, args = buildSearchQuery(&model.PropertySearchFilters{MaximumPricePerNight: 99.99}, 10)
	if args[0] != int64(9999) {
		t.Fatalf("expected 9999 cents, got %v", args[0])
	}
}

func TestSearchRatingAloneSkipsWhere(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{MinimumRating: 4.5}, 10)
	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got:\n%s", query)
	}
	if !strings.Contains(query, "HAVING avg(property_reviews.rating) >= $1") {
		t.Fatalf("expected rating bound to $1, got:\n%s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected rating and limit args, got %v", args)
	}
}

func TestSearchCityAndRatingClauseAndArgOrder(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{City: "van", MinimumRating: 4}, 5)

	want := []any{"%van%", float64(4), 5}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %#v, got %#v", i, want[i], args[i])
		}
	}

	last := -1
	for _, kw := range []string{"WHERE", "GROUP BY", "HAVING", "ORDER BY", "LIMIT"} {
		idx := strings.Index(query, kw)
		if idx < 0 {
			t.Fatalf("expected %s clause in query:\n%s", kw, query)
		}
		if idx < last {
			t.Fatalf("clause %s out of order:\n%s", kw, query)
		}
		last = idx
	}
	if !strings.Contains(query, "properties.city LIKE $1") ||
		!strings.Contains(query, "avg(property_reviews.rating) >= $2") ||
		!strings.Contains(query, "LIMIT $3") {
		t.Fatalf("expected placeholders $1..$3 in clause order, got:\n%s", query)
	}
}

func TestSearchZeroValuedFiltersAreAbsent(t *testing.T) {
	query, args := buildSearchQuery(&model.PropertySearchFilters{
		City:                 "",
		OwnerID:              0,
		MinimumPricePerNight: 0,
		MaximumPricePerNight: 0,
		MinimumRating:        0,
	}, 10)
	if strings.Contains(query, "WHERE") || strings.Contains(query, "HAVING") {
		t.Fatalf("expected zero values to add no predicates, got:\n%s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected only the limit argument, got %v", args)
	}
}

func TestSearchOmittedLimitDefaultsToTen(t *testing.T) {
	query, args := buildSearchQuery(nil, 0)
	if !strings.Contains(query, "LIMIT $1") {
		t.Fatalf("expected limit bound to $1, got:\n%s", query)
	}
	if args[len(args)-1] != 10 {
		t.Fatalf("expected default limit 10, got %v", args[len(args)-1])
	}
}

func TestToCentsRounds(t *testing.T) {
	cases := map[float64]int64{
		1.50:   150,
		0.1:    10,
		129.95: 12995,
		10:     1000,
	}
	for in, want := range cases {
		if got := toCents(in); got != want {
			t.Fatalf("toCents(%v): expected %d, got %d", in, want, got)
		}
	}
}
