package ports

import (
	"context"
	"errors"

	"trip-planner/internal/domain"
)

// Returned by FindByAlias when no saved place matches the alias.
var ErrPlaceNotFound = errors.New("place not found")

// Port: a boundary for retrieving saved Place entities from a data source.
type PlaceRepository interface {
	// Look up a saved place by its alias (case-insensitive).
	FindByAlias(ctx context.Context, alias string) (*domain.Place, error)
	// Retrieve all saved places, ordered by alias.
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
}
