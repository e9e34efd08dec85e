package cli

import (
	"fmt"
	"io"

	"trip-planner/internal/domain"
)

// Presenter renders a trip (or its absence) to the output writer.
// It is the only component that writes trip data to the console; diagnostic
// logging stays on the logger so the operator-facing output is stable.
type Presenter struct {
	Out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{Out: out}
}

// Show prints the outcome of one query. A nil trip means the transport
// layer produced no usable data. Show never returns an error; a failed
// write to a console stream is not actionable.
func (p *Presenter) Show(trip *domain.Trip) {
	if trip == nil {
		fmt.Fprintln(p.Out, "No data received from API. Check your API key and internet connection.")
		return
	}

	if !trip.OK() {
		fmt.Fprintln(p.Out, "Error: Invalid input or route not found.")
		fmt.Fprintf(p.Out, "Detailed error info: %s\n", trip.RawPayload)
		return
	}

	duration := trip.FormattedTime
	if duration == "" {
		duration = "N/A"
	}

	fmt.Fprintf(p.Out, "Trip Duration: %s\n", duration)
	fmt.Fprintf(p.Out, "Distance: %.2f miles\n", trip.DistanceMiles)
	fmt.Fprintf(p.Out, "Fuel Used: %.2f gallons\n", trip.FuelUsedGallons)

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, "Directions:")

	// Legs and maneuvers print in response order; no reordering or filtering.
	for _, leg := range trip.Legs {
		for _, mv := range leg.Maneuvers {
			narrative := mv.Narrative
			if narrative == "" {
				narrative = "No narrative provided."
			}
			fmt.Fprintln(p.Out, narrative)
		}
	}
}
