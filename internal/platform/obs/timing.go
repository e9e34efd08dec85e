package obs

import (
	"log"
	"time"
)

// Time logs the duration of an operation when the returned func runs,
// including the pointed-to error if one was set by then. Use as:
//
//	defer obs.Time("mapquest.GetTrip")(&err)
func Time(name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
