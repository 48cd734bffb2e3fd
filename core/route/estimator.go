// Package route - deterministic fallback estimator
package route

import "strings"

// averageSpeedKmH derives a duration from an estimated distance
const averageSpeedKmH = 80.0

// defaultDistanceKm covers pairs absent from the known table
const defaultDistanceKm = 500

// knownPair is a literal city-pair distance, matched by substring in
// either direction
type knownPair struct {
	a, b string
	km   int
}

var knownPairs = []knownPair{
	{"paris", "new york", 5850},
	{"paris", "london", 470},
	{"paris", "brussels", 310},
	{"paris", "amsterdam", 500},
	{"paris", "geneva", 540},
	{"paris", "berlin", 1050},
	{"paris", "milan", 850},
	{"paris", "madrid", 1270},
	{"london", "new york", 5570},
	{"brussels", "amsterdam", 210},
}

// Estimate returns a deterministic route estimate for any input pair.
// Known literal pairs match by substring; everything else defaults to
// 500 km. Duration is distance over an 80 km/h average.
func Estimate(origin, destination string) Result {
	o := strings.ToLower(origin)
	d := strings.ToLower(destination)

	km := defaultDistanceKm
	for _, p := range knownPairs {
		if (strings.Contains(o, p.a) && strings.Contains(d, p.b)) ||
			(strings.Contains(o, p.b) && strings.Contains(d, p.a)) {
			km = p.km
			break
		}
	}

	return Result{
		DistanceKm:       km,
		DurationHours:    float64(km) / averageSpeedKmH,
		OriginLabel:      origin,
		DestinationLabel: destination,
		Source:           SourceEstimated,
	}
}
