package repository

import (
	"strings"
	"testing"
)

func TestGuestReservationsBindGuestAndLimit(t *testing.T) {
	query, args := buildGuestReservationsQuery(42, 7)
	if !strings.Contains(query, "reservations.guest_id = $1") {
		t.Fatalf("expected guest id bound to $1, got:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $2") {
		t.Fatalf("expected limit bound to $2, got:\n%s", query)
	}
	want := []any{int64(42), 7}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %#v, got %#v", i, want[i], args[i])
		}
	}
	for _, clause := range []string{
		"JOIN properties ON reservations.property_id = properties.id",
		"JOIN property_reviews ON property_reviews.property_id = properties.id",
		"GROUP BY properties.id, reservations.id",
		"ORDER BY reservations.start_date",
	} {
		if !strings.Contains(query, clause) {
			t.Fatalf("expected %q in query:\n%s", clause, query)
		}
	}
}

func TestGuestReservationsDefaultLimit(t *testing.T) {
	_, args := buildGuestReservationsQuery(42, 0)
	if len(args) != 2 {
		t.Fatalf("expected guest id and limit args, got %v", args)
	}
	if args[1] != 10 {
		t.Fatalf("expected default limit 10, got %v", args[1])
	}
}
