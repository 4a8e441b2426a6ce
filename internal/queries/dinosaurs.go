package queries

import (
	"math"

	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// CountAwesomeDinosaurs maps each movie title to the number of awesome
// dinosaurs appearing in it.
func CountAwesomeDinosaurs(fx *types.Fixtures) map[string]int {
	dino := dinosaurLookup(fx)
	out := make(map[string]int, len(fx.Movies))
	for _, m := range fx.Movies {
		out[m.Title] = len(relational.Filter(m.Dinos, func(name string) bool { return dino(name).IsAwesome }))
	}
	return out
}

// AverageAgePerMovie maps each director to their movies, and each movie to
// the mean age of its cast in the release year, rounded down. A movie with
// no cast averages to zero.
func AverageAgePerMovie(fx *types.Fixtures) map[string]map[string]int {
	human := humanLookup(fx)
	out := make(map[string]map[string]int)
	for _, m := range fx.Movies {
		cast := m.Cast()
		avg := 0
		if len(cast) > 0 {
			total := relational.SumBy(cast, func(name string) int { return m.YearReleased - human(name).YearBorn })
			avg = int(math.Floor(float64(total) / float64(len(cast))))
		}
		if out[m.Director] == nil {
			out[m.Director] = make(map[string]int)
		}
		out[m.Director][m.Title] = avg
	}
	return out
}

// UncastActors returns the humans who appear in no movie cast, ordered by
// nationality. Humans of the same nationality keep their dataset order.
func UncastActors(fx *types.Fixtures) []types.UncastActor {
	human := humanLookup(fx)
	cast := relational.FlatMap(fx.Movies, movieCast)
	names := relational.Complement(relational.Map(fx.Humans, humanName), cast)
	actors := relational.Map(names, func(name string) types.UncastActor {
		h := human(name)
		return types.UncastActor{Name: h.Name, Nationality: h.Nationality, ImdbStarMeterRating: h.ImdbStarMeterRating}
	})
	return relational.SortStable(actors,
		relational.Ascending(func(a types.UncastActor) string { return a.Nationality }))
}

// ActorsAgesInMovies lists, for every human cast at least once, their age in
// each movie they appear in. Humans keep dataset order and ages follow movie
// order.
func ActorsAgesInMovies(fx *types.Fixtures) []types.ActorAges {
	out := []types.ActorAges{}
	for _, h := range fx.Humans {
		ages := relational.FilterMap(fx.Movies,
			func(m types.Movie) bool { return relational.Contains(m.Cast(), h.Name) },
			func(m types.Movie) int { return m.YearReleased - h.YearBorn })
		if len(ages) > 0 {
			out = append(out, types.ActorAges{Name: h.Name, Ages: ages})
		}
	}
	return out
}
