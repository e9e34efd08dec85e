package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
)

// SQLite backed cache for routed trips, keyed by normalized
// origin/destination pairs. The composition root opens the backing database
// on ":memory:" so cached queries never outlive the session.
type SqlTripCache struct {
	DB *sql.DB
}

func NewSqlTripCache(db *sql.DB) *SqlTripCache {
	return &SqlTripCache{DB: db}
}

// Serialized cache row. The domain type carries no encoding tags, so the
// cache owns its storage shape.
type cachedTrip struct {
	StatusCode      int        `json:"status_code"`
	FormattedTime   string     `json:"formatted_time"`
	DistanceMiles   float64    `json:"distance_miles"`
	FuelUsedGallons float64    `json:"fuel_used_gallons"`
	Legs            [][]string `json:"legs"`
	RawPayload      string     `json:"raw_payload"`
}

// Create the trip cache table on the given database.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("trip cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS trip_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        trip_json TEXT NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("trip cache: init schema: %w", err)
	}

	return nil
}

// Fetch a cached trip for one origin/destination pair.
// The second return value reports whether the pair was present.
func (s *SqlTripCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ *domain.Trip, _ bool, err error) {
	defer obs.Time("trip.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("trip cache: db is nil")
	}

	if origin == "" || destination == "" {
		return nil, false, nil
	}

	q := `
	SELECT trip_json
    FROM trip_cache
    WHERE origin = ?
        AND destination = ?;
	`

	var payload string
	if err := s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get trip cache: query trip_cache table: %w", err)
	}

	var row cachedTrip
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		return nil, false, fmt.Errorf("get trip cache: decode cached trip: %w", err)
	}

	return row.toDomain(), true, nil
}

// Store one routed trip for an origin/destination pair.
func (s *SqlTripCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	trip *domain.Trip,
) error {
	if s.DB == nil {
		return errors.New("trip cache: db is nil")
	}

	if origin == "" || destination == "" {
		return errors.New("insert trip cache: origin and destination must not be empty")
	}

	if trip == nil {
		return errors.New("insert trip cache: trip must be non-nil")
	}

	payload, err := json.Marshal(fromDomain(trip))
	if err != nil {
		return fmt.Errorf("insert trip cache: encode trip: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO trip_cache (
        origin,
        destination,
        trip_json
    )
    VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, string(payload)); err != nil {
		return fmt.Errorf("insert trip cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}

func fromDomain(trip *domain.Trip) cachedTrip {
	legs := make([][]string, 0, len(trip.Legs))
	for _, leg := range trip.Legs {
		narratives := make([]string, 0, len(leg.Maneuvers))
		for _, mv := range leg.Maneuvers {
			narratives = append(narratives, mv.Narrative)
		}
		legs = append(legs, narratives)
	}

	return cachedTrip{
		StatusCode:      trip.StatusCode,
		FormattedTime:   trip.FormattedTime,
		DistanceMiles:   trip.DistanceMiles,
		FuelUsedGallons: trip.FuelUsedGallons,
		Legs:            legs,
		RawPayload:      trip.RawPayload,
	}
}

func (c cachedTrip) toDomain() *domain.Trip {
	legs := make([]domain.RouteLeg, 0, len(c.Legs))
	for _, narratives := range c.Legs {
		maneuvers := make([]domain.Maneuver, 0, len(narratives))
		for _, n := range narratives {
			maneuvers = append(maneuvers, domain.Maneuver{Narrative: n})
		}
		legs = append(legs, domain.RouteLeg{Maneuvers: maneuvers})
	}

	return &domain.Trip{
		StatusCode:      c.StatusCode,
		FormattedTime:   c.FormattedTime,
		DistanceMiles:   c.DistanceMiles,
		FuelUsedGallons: c.FuelUsedGallons,
		Legs:            legs,
		RawPayload:      c.RawPayload,
	}
}
