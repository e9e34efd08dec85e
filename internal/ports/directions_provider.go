package ports

import (
	"context"
	"trip-planner/internal/domain"
)

// Contract for retrieving a routed trip between two free-text locations.
type DirectionsProvider interface {
	// Return the parsed trip for origin -> destination.
	// A nil Trip with a non-nil error means the transport layer could not
	// complete the exchange; an application-level routing error is returned
	// as a Trip with a non-zero StatusCode and a nil error.
	GetTrip(ctx context.Context, origin string, destination string) (*domain.Trip, error)
}
