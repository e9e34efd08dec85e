package domain

// Represents a parsed directions response for a single origin/destination query.
//
// A Trip is only populated with route data when StatusCode is zero; any other
// status means the remote service rejected the query at the application level,
// and only StatusCode plus RawPayload are meaningful. Transport-level failures
// never produce a Trip at all.
type Trip struct {
	StatusCode int

	// Route summary. FormattedTime is the service's own human-readable
	// duration string and may be empty when the service omits it.
	FormattedTime   string
	DistanceMiles   float64
	FuelUsedGallons float64

	// Legs in response order. Never reordered or filtered.
	Legs []RouteLeg

	// Raw response body, retained for operator diagnostics on non-zero status.
	RawPayload string
}

// One routing segment of a trip, holding its maneuvers in response order.
type RouteLeg struct {
	Maneuvers []Maneuver
}

// A single turn-by-turn instruction. Narrative may be empty when the service
// omits it; substituting a placeholder is the presenter's job.
type Maneuver struct {
	Narrative string
}

// Reports whether route fields (duration, distance, fuel, legs) are valid.
func (t *Trip) OK() bool { return t.StatusCode == 0 }
