package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"trip-planner/internal/adapters/directions"
	"trip-planner/internal/domain"
	"trip-planner/internal/ports"
)

func newTestSession(input string, provider ports.DirectionsProvider, places ports.PlaceRepository) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader(input))
	return NewSession(in, &out, provider, places), &out
}

func TestSessionQuitAtOriginPrompt(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)

	// Casing and surrounding whitespace must not matter.
	session, out := newTestSession("  QUIT  \n", provider, nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 0 {
		t.Fatalf("expected no fetches, got %d", len(provider.Calls))
	}
	if !strings.Contains(out.String(), "Enter the starting location") {
		t.Fatalf("missing origin prompt, got %q", out.String())
	}
	if strings.Contains(out.String(), "Enter the destination") {
		t.Fatalf("destination prompt must not appear after quit at origin, got %q", out.String())
	}
}

func TestSessionQuitAtDestinationPrompt(t *testing.T) {
	provider := directions.NewMockDirectionsProvider(nil)

	session, out := newTestSession("New York, NY\nQuit\n", provider, nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 0 {
		t.Fatalf("expected no fetches, got %d", len(provider.Calls))
	}
	if !strings.Contains(out.String(), "Enter the destination") {
		t.Fatalf("missing destination prompt, got %q", out.String())
	}
}

func TestSessionFetchThenLoop(t *testing.T) {
	trip := &domain.Trip{
		FormattedTime:   "1 hour 5 minutes",
		DistanceMiles:   52.1,
		FuelUsedGallons: 2.4,
		Legs: []domain.RouteLeg{
			{Maneuvers: []domain.Maneuver{{Narrative: "Head north."}}},
		},
	}
	provider := directions.NewMockDirectionsProvider([]directions.MockTrip{
		{From: "A", To: "B", Trip: trip},
	})

	session, out := newTestSession("A\nB\nquit\n", provider, nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 1 || provider.Calls[0] != "A|B" {
		t.Fatalf("calls = %v, want [A|B]", provider.Calls)
	}

	got := out.String()
	if !strings.Contains(got, "Trip Duration: 1 hour 5 minutes") {
		t.Fatalf("missing trip output, got %q", got)
	}
	if !strings.Contains(got, "Head north.") {
		t.Fatalf("missing narrative, got %q", got)
	}

	// The loop must return to the origin prompt after presenting.
	if strings.Count(got, "Enter the starting location") != 2 {
		t.Fatalf("expected two origin prompts, got %q", got)
	}
}

func TestSessionContinuesAfterTransportFailure(t *testing.T) {
	trip := &domain.Trip{FormattedTime: "10 minutes"}
	provider := directions.NewMockDirectionsProvider([]directions.MockTrip{
		{From: "bad", To: "query", Err: &directions.TransportError{Kind: directions.KindTimeout}},
		{From: "C", To: "D", Trip: trip},
	})

	session, out := newTestSession("bad\nquery\nC\nD\nquit\n", provider, nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 2 {
		t.Fatalf("calls = %v, want 2 fetches", provider.Calls)
	}

	got := out.String()
	if !strings.Contains(got, "No data received from API.") {
		t.Fatalf("missing no-data line, got %q", got)
	}
	if !strings.Contains(got, "Trip Duration: 10 minutes") {
		t.Fatalf("session did not continue after failure, got %q", got)
	}
}

type fakePlaces struct {
	m map[string]string
}

func (f *fakePlaces) FindByAlias(ctx context.Context, alias string) (*domain.Place, error) {
	addr, ok := f.m[strings.ToLower(alias)]
	if !ok {
		return nil, ports.ErrPlaceNotFound
	}
	return &domain.Place{Alias: strings.ToLower(alias), Address: addr}, nil
}

func (f *fakePlaces) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return nil, nil
}

func TestSessionResolvesSavedPlaces(t *testing.T) {
	places := &fakePlaces{m: map[string]string{
		"home": "350 5th Ave, New York, NY 10118",
	}}

	trip := &domain.Trip{FormattedTime: "4 hours"}
	provider := directions.NewMockDirectionsProvider([]directions.MockTrip{
		{From: "350 5th Ave, New York, NY 10118", To: "Boston, MA", Trip: trip},
	})

	session, _ := newTestSession("Home\nBoston, MA\nquit\n", provider, places)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 1 || provider.Calls[0] != "350 5th Ave, New York, NY 10118|Boston, MA" {
		t.Fatalf("alias was not resolved, calls = %v", provider.Calls)
	}
}

func TestPromptCredential(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader("  my-api-key  \n"))

	key := PromptCredential(in, &out)
	if key != "my-api-key" {
		t.Fatalf("key = %q, want %q", key, "my-api-key")
	}
	if !strings.Contains(out.String(), "Enter your MapQuest API Key:") {
		t.Fatalf("missing credential prompt, got %q", out.String())
	}
}
