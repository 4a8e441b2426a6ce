package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// StarsInConstellations returns the stars listed by any constellation, in
// star order.
func StarsInConstellations(fx *types.Fixtures) []types.Star {
	members := relational.CountBy(fx.Constellations, constellationStars)
	return relational.Filter(fx.Stars, func(s types.Star) bool { return members[s.Name] > 0 })
}

// StarsByColor groups the stars by color.
func StarsByColor(fx *types.Fixtures) map[string][]types.Star {
	return relational.GroupBy(fx.Stars, func(s types.Star) string { return s.Color })
}

// ConstellationsStarsExistIn returns the constellation of every star, in star
// order. Names repeat when several stars share a constellation.
func ConstellationsStarsExistIn(fx *types.Fixtures) []string {
	return relational.Map(fx.Stars, func(s types.Star) string { return s.Constellation })
}
