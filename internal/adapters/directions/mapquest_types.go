package directions

import (
	"strings"
	"trip-planner/internal/domain"
)

// Wire shape of the MapQuest /directions/v2/route response, narrowed to the
// fields this program reads. Absent numeric fields decode to zero and absent
// strings to ""; defaults are applied here, at the deserialization boundary.
type routeResponse struct {
	Info  infoSection   `json:"info"`
	Route *routeSection `json:"route"`
}

type infoSection struct {
	StatusCode int      `json:"statuscode"`
	Messages   []string `json:"messages"`
}

type routeSection struct {
	FormattedTime string       `json:"formattedTime"`
	Distance      float64      `json:"distance"`
	FuelUsed      float64      `json:"fuelUsed"`
	Legs          []legSection `json:"legs"`
}

type legSection struct {
	Maneuvers []maneuverSection `json:"maneuvers"`
}

type maneuverSection struct {
	Narrative string `json:"narrative"`
}

// toDomain builds a Trip from the decoded response. Route fields are only
// read when the application-level status code is zero; otherwise the Trip
// carries just the status code and the raw payload for diagnostics.
func (r *routeResponse) toDomain(raw []byte) *domain.Trip {
	trip := &domain.Trip{
		StatusCode: r.Info.StatusCode,
		RawPayload: strings.TrimSpace(string(raw)),
	}

	if r.Info.StatusCode != 0 || r.Route == nil {
		return trip
	}

	trip.FormattedTime = r.Route.FormattedTime
	trip.DistanceMiles = r.Route.Distance
	trip.FuelUsedGallons = r.Route.FuelUsed

	trip.Legs = make([]domain.RouteLeg, 0, len(r.Route.Legs))
	for _, leg := range r.Route.Legs {
		maneuvers := make([]domain.Maneuver, 0, len(leg.Maneuvers))
		for _, mv := range leg.Maneuvers {
			maneuvers = append(maneuvers, domain.Maneuver{Narrative: mv.Narrative})
		}
		trip.Legs = append(trip.Legs, domain.RouteLeg{Maneuvers: maneuvers})
	}

	return trip
}
