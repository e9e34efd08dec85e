package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-planner/internal/adapters/cache"
	"trip-planner/internal/domain"
	"trip-planner/internal/platform/obs"
)

// Default endpoint root for the MapQuest Directions API.
const DefaultBaseURL = "https://www.mapquestapi.com"

// MapQuestProvider implements DirectionsProvider against the MapQuest
// Directions API.
//
// It coordinates:
//   - Location normalization
//   - Session-scoped trip caching
//   - A single external API call per query, bounded by a 10 second timeout
//
// The provider performs no retries: a transport failure is classified,
// logged once, and returned as a TransportError. The provider is safe for
// concurrent use.
type MapQuestProvider struct {
	session   *http.Client
	apiKey    string
	baseURL   string
	tripCache *cache.SqlTripCache
}

// NewMapQuestProvider builds a provider for the given credential. The
// credential is passed through verbatim; whether it is valid is the remote
// service's call. An empty baseURL selects the production endpoint.
func NewMapQuestProvider(apiKey string, baseURL string, tripCache *cache.SqlTripCache) *MapQuestProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &MapQuestProvider{
		session:   &http.Client{Timeout: 10 * time.Second},
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		tripCache: tripCache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (m *MapQuestProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// GetTrip issues one GET to the directions endpoint and returns the parsed
// trip. A nil Trip with a TransportError means no usable data was received;
// a Trip with a non-zero StatusCode means the service rejected the query.
func (m *MapQuestProvider) GetTrip(
	ctx context.Context,
	origin string,
	destination string,
) (_ *domain.Trip, err error) {
	defer obs.Time("mapquest.GetTrip")(&err)

	normOrigin := m.normalize(origin)
	normDestination := m.normalize(destination)

	// Check the session cache before issuing an external API call.
	if m.tripCache != nil {
		trip, ok, cerr := m.tripCache.Get(ctx, normOrigin, normDestination)
		if cerr != nil {
			log.Printf("trip cache read failed: %v", cerr)
		} else if ok {
			return trip, nil
		}
	}

	endpoint := m.baseURL + "/directions/v2/route"

	req, err := m.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("get trip request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", m.apiKey)
	q.Set("from", normOrigin)
	q.Set("to", normDestination)
	req.URL.RawQuery = q.Encode()

	resp, err := m.do(req)
	if err != nil {
		terr := classifyTransport(err)
		// One diagnostic line per failure category; the caller only sees
		// that no data arrived.
		log.Printf("mapquest: %v", terr)
		return nil, terr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := classifyTransport(fmt.Errorf("read response body: %w", err))
		log.Printf("mapquest: %v", terr)
		return nil, terr
	}

	var decoded routeResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		terr := classifyTransport(fmt.Errorf("decode directions response: %w", err))
		log.Printf("mapquest: %v", terr)
		return nil, terr
	}

	trip := decoded.toDomain(raw)

	// Only successfully routed trips are cached; error payloads may depend
	// on transient service state.
	if trip.OK() && m.tripCache != nil {
		if err := m.tripCache.Put(ctx, normOrigin, normDestination, trip); err != nil {
			log.Printf("trip cache write failed: %v", err)
		}
	}

	return trip, nil
}
