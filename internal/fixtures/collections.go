package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// collection binds a collection name to its slice in types.Fixtures.
type collection struct {
	name   string
	decode func(fx *types.Fixtures, records []json.RawMessage) error
	encode func(fx *types.Fixtures) ([]json.RawMessage, error)
	count  func(fx *types.Fixtures) int
}

func bind[T any](name string, field func(*types.Fixtures) *[]T) collection {
	return collection{
		name: name,
		decode: func(fx *types.Fixtures, records []json.RawMessage) error {
			out := make([]T, 0, len(records))
			for i, raw := range records {
				var v T
				if err := json.Unmarshal(raw, &v); err != nil {
					return fmt.Errorf("%s record %d: %w: %v", name, i+1, types.ErrInvalidRecord, err)
				}
				out = append(out, v)
			}
			*field(fx) = out
			return nil
		},
		encode: func(fx *types.Fixtures) ([]json.RawMessage, error) {
			src := *field(fx)
			out := make([]json.RawMessage, 0, len(src))
			for i, v := range src {
				raw, err := json.Marshal(v)
				if err != nil {
					return nil, fmt.Errorf("%s record %d: %w", name, i+1, err)
				}
				out = append(out, raw)
			}
			return out, nil
		},
		count: func(fx *types.Fixtures) int { return len(*field(fx)) },
	}
}

// collections is ordered like types.CollectionNames.
var collections = []collection{
	bind(types.CollectionKitties, func(f *types.Fixtures) *[]types.Kitty { return &f.Kitties }),
	bind(types.CollectionClubs, func(f *types.Fixtures) *[]types.Club { return &f.Clubs }),
	bind(types.CollectionMods, func(f *types.Fixtures) *[]types.Mod { return &f.Mods }),
	bind(types.CollectionCakes, func(f *types.Fixtures) *[]types.Cake { return &f.Cakes }),
	bind(types.CollectionClassrooms, func(f *types.Fixtures) *[]types.Classroom { return &f.Classrooms }),
	bind(types.CollectionBooks, func(f *types.Fixtures) *[]types.Book { return &f.Books }),
	bind(types.CollectionWeather, func(f *types.Fixtures) *[]types.Weather { return &f.Weather }),
	bind(types.CollectionNationalParks, func(f *types.Fixtures) *[]types.NationalPark { return &f.NationalParks }),
	bind(types.CollectionBreweries, func(f *types.Fixtures) *[]types.Brewery { return &f.Breweries }),
	bind(types.CollectionInstructors, func(f *types.Fixtures) *[]types.Instructor { return &f.Instructors }),
	bind(types.CollectionCohorts, func(f *types.Fixtures) *[]types.Cohort { return &f.Cohorts }),
	bind(types.CollectionBosses, func(f *types.Fixtures) *[]types.Boss { return &f.Bosses }),
	bind(types.CollectionSidekicks, func(f *types.Fixtures) *[]types.Sidekick { return &f.Sidekicks }),
	bind(types.CollectionConstellations, func(f *types.Fixtures) *[]types.Constellation { return &f.Constellations }),
	bind(types.CollectionStars, func(f *types.Fixtures) *[]types.Star { return &f.Stars }),
	bind(types.CollectionWeapons, func(f *types.Fixtures) *[]types.Weapon { return &f.Weapons }),
	bind(types.CollectionCharacters, func(f *types.Fixtures) *[]types.Character { return &f.Characters }),
	bind(types.CollectionDinosaurs, func(f *types.Fixtures) *[]types.Dinosaur { return &f.Dinosaurs }),
	bind(types.CollectionHumans, func(f *types.Fixtures) *[]types.Human { return &f.Humans }),
	bind(types.CollectionMovies, func(f *types.Fixtures) *[]types.Movie { return &f.Movies }),
}
