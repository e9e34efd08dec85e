package directions

import (
	"context"
	"fmt"

	"trip-planner/internal/domain"
)

type MockTrip struct {
	From, To string
	Trip     *domain.Trip
	Err      error
}

// MockDirectionsProvider serves canned trips for tests. Calls records every
// origin/destination pair in request order.
type MockDirectionsProvider struct {
	m     map[string]MockTrip
	Calls []string
}

func NewMockDirectionsProvider(trips []MockTrip) *MockDirectionsProvider {
	m := make(map[string]MockTrip, len(trips))
	for _, t := range trips {
		m[t.From+"|"+t.To] = t
	}
	return &MockDirectionsProvider{m: m}
}

func (p *MockDirectionsProvider) GetTrip(ctx context.Context, origin, destination string) (*domain.Trip, error) {
	p.Calls = append(p.Calls, origin+"|"+destination)

	t, ok := p.m[origin+"|"+destination]
	if !ok {
		return nil, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}
	if t.Err != nil {
		return nil, t.Err
	}

	return t.Trip, nil
}
