package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// GetParkVisitList splits the park names by whether they have been visited.
func GetParkVisitList(fx *types.Fixtures) types.ParkVisitList {
	seed := types.ParkVisitList{ParksToVisit: []string{}, ParksVisited: []string{}}
	return relational.Reduce(fx.NationalParks, seed,
		func(acc types.ParkVisitList, p types.NationalPark) types.ParkVisitList {
			if p.Visited {
				acc.ParksVisited = append(acc.ParksVisited, p.Name)
			} else {
				acc.ParksToVisit = append(acc.ParksToVisit, p.Name)
			}
			return acc
		})
}

// GetParkInEachState returns one single-entry map per park, from its state to
// its name.
func GetParkInEachState(fx *types.Fixtures) []map[string]string {
	return relational.Map(fx.NationalParks, func(p types.NationalPark) map[string]string {
		return map[string]string{p.Location: p.Name}
	})
}

// GetParkActivities lists every activity once, in the order first seen.
func GetParkActivities(fx *types.Fixtures) []string {
	return relational.Unique(fx.NationalParks, func(p types.NationalPark) []string { return p.Activities })
}
