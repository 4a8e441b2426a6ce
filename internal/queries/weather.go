package queries

import (
	"strings"

	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// GetAverageTemps returns the mean of each location's high and low.
func GetAverageTemps(fx *types.Fixtures) []float64 {
	return relational.Map(fx.Weather, func(w types.Weather) float64 {
		return float64(w.Temperature.High+w.Temperature.Low) / 2
	})
}

// FindSunnySpots describes every location whose weather type mentions sun.
func FindSunnySpots(fx *types.Fixtures) []string {
	return relational.FilterMap(fx.Weather,
		func(w types.Weather) bool { return strings.Contains(w.Type, "sunny") },
		func(w types.Weather) string { return w.Location + " is " + w.Type + "." })
}

// FindHighestHumidity returns the first location with the highest humidity,
// or nil when there is no weather data. The weather collection keeps its
// order.
func FindHighestHumidity(fx *types.Fixtures) *types.Weather {
	w, ok := relational.MaxBy(fx.Weather, func(w types.Weather) int { return w.Humidity })
	if !ok {
		return nil
	}
	return &w
}
