package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

func breweryBeers(b types.Brewery) []types.Beer { return b.Beers }

// GetBeerCount counts the beers of every brewery together.
func GetBeerCount(fx *types.Fixtures) int {
	return relational.SumBy(fx.Breweries, func(b types.Brewery) int { return len(b.Beers) })
}

// GetBreweryBeerCount reports the number of beers per brewery.
func GetBreweryBeerCount(fx *types.Fixtures) []types.BreweryBeerCount {
	return relational.Map(fx.Breweries, func(b types.Brewery) types.BreweryBeerCount {
		return types.BreweryBeerCount{Name: b.Name, BeerCount: len(b.Beers)}
	})
}

// FindHighestAbvBeer returns the first beer with the highest ABV across all
// breweries, or nil when there are none.
func FindHighestAbvBeer(fx *types.Fixtures) *types.Beer {
	beers := relational.FlatMap(fx.Breweries, breweryBeers)
	beer, ok := relational.MaxBy(beers, func(b types.Beer) float64 { return b.ABV })
	if !ok {
		return nil
	}
	return &beer
}
