package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dpletzke/LightBnB/internal/model"
)

func TestParseTTL(t *testing.T) {
	if d := parseTTL("90s", time.Minute); d != 90*time.Second {
		t.Fatalf("expected 90s, got %v", d)
	}
	if d := parseTTL("", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback for empty value, got %v", d)
	}
	if d := parseTTL("soon", time.Minute); d != time.Minute {
		t.Fatalf("expected fallback for bad value, got %v", d)
	}
}

func TestKeyDeterministic(t *testing.T) {
	f := &model.PropertySearchFilters{City: "van", MinimumRating: 4}
	if Key(f, 5, 0) != Key(f, 5, 0) {
		t.Fatalf("same inputs produced different keys")
	}
}

func TestKeyVariesByFilterLimitAndEpoch(t *testing.T) {
	base := &model.PropertySearchFilters{City: "van", MinimumRating: 4}
	k := Key(base, 5, 0)

	other := *base
	other.MinimumPricePerNight = 1.5
	if Key(&other, 5, 0) == k {
		t.Fatalf("filter change did not change the key")
	}
	if Key(base, 10, 0) == k {
		t.Fatalf("limit change did not change the key")
	}
	if Key(base, 5, 1) == k {
		t.Fatalf("epoch change did not change the key")
	}
	if Key(nil, 5, 0) == k {
		t.Fatalf("nil filters collided with set filters")
	}
}

func TestLocalOnlyRoundTrip(t *testing.T) {
	c, err := New(Config{Enabled: true})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	f := &model.PropertySearchFilters{City: "van"}
	rows := []*model.Property{{ID: 1, City: "Vancouver"}}

	if _, ok := c.Get(ctx, f, 10); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Set(ctx, f, 10, rows)
	got, ok := c.Get(ctx, f, 10)
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected cached rows: %+v", got)
	}
}

func TestInvalidateMakesEntriesUnreachable(t *testing.T) {
	c, err := New(Config{Enabled: true})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	f := &model.PropertySearchFilters{OwnerID: 7}
	c.Set(ctx, f, 10, []*model.Property{{ID: 2}})

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := c.Get(ctx, f, 10); ok {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *SearchCache
	if c.Enabled() {
		t.Fatalf("nil cache reported enabled")
	}
	if _, ok := c.Get(context.Background(), nil, 10); ok {
		t.Fatalf("nil cache returned a hit")
	}
	c.Set(context.Background(), nil, 10, nil)
	if err := c.Invalidate(context.Background()); err != nil {
		t.Fatalf("nil invalidate: %v", err)
	}
}
