package cache

import (
	"context"
	"database/sql"
	"testing"

	"trip-planner/internal/domain"

	_ "modernc.org/sqlite"
)

func newTestCache(t *testing.T) *SqlTripCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqlTripCache(db)
}

func TestTripCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	trip := &domain.Trip{
		FormattedTime:   "2 hours",
		DistanceMiles:   120.25,
		FuelUsedGallons: 4.5,
		Legs: []domain.RouteLeg{
			{Maneuvers: []domain.Maneuver{
				{Narrative: "Head west."},
				{Narrative: ""},
			}},
			{Maneuvers: []domain.Maneuver{
				{Narrative: "Arrive at destination."},
			}},
		},
	}

	if err := c.Put(ctx, "A", "B", trip); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "A", "B")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}

	if got.FormattedTime != trip.FormattedTime ||
		got.DistanceMiles != trip.DistanceMiles ||
		got.FuelUsedGallons != trip.FuelUsedGallons {
		t.Fatalf("summary differs: %+v", got)
	}

	if len(got.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(got.Legs))
	}
	if got.Legs[0].Maneuvers[1].Narrative != "" {
		t.Fatalf("empty narrative not preserved: %+v", got.Legs[0])
	}
	if got.Legs[1].Maneuvers[0].Narrative != "Arrive at destination." {
		t.Fatalf("maneuver order not preserved: %+v", got.Legs[1])
	}
}

func TestTripCacheMiss(t *testing.T) {
	c := newTestCache(t)

	got, ok, err := c.Get(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}
}

func TestTripCachePutValidation(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "", "B", &domain.Trip{}); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if err := c.Put(ctx, "A", "B", nil); err == nil {
		t.Fatal("expected error for nil trip")
	}
}

func TestTripCacheOverwrite(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "A", "B", &domain.Trip{FormattedTime: "1 hour"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(ctx, "A", "B", &domain.Trip{FormattedTime: "2 hours"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := c.Get(ctx, "A", "B")
	if err != nil || !ok {
		t.Fatalf("get after overwrite: ok=%v err=%v", ok, err)
	}
	if got.FormattedTime != "2 hours" {
		t.Fatalf("duration = %q, want %q", got.FormattedTime, "2 hours")
	}
}
