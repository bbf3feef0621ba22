package consumer

import (
	"context"
	"testing"
)

type stubInvalidator struct{ calls int }

func (s *stubInvalidator) Invalidate(ctx context.Context) error { s.calls++; return nil }

func TestHandleInvalidatesOnValidEvent(t *testing.T) {
	inv := &stubInvalidator{}
	c := &Consumer{inv: inv}
	body := []byte(`{"action":"update","property_id":"42"}`)
	if err := c.handle(context.Background(), body); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if inv.calls != 1 {
		t.Fatalf("expected 1 invalidation, got %d", inv.calls)
	}
}

func TestHandleRejectsMalformedEvent(t *testing.T) {
	inv := &stubInvalidator{}
	c := &Consumer{inv: inv}
	if err := c.handle(context.Background(), []byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
	if inv.calls != 0 {
		t.Fatalf("expected no invalidation, got %d", inv.calls)
	}
}
