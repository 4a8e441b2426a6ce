package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// OrangeKittyNames returns the names of the orange kitties.
func OrangeKittyNames(fx *types.Fixtures) []string {
	return relational.FilterMap(fx.Kitties,
		func(k types.Kitty) bool { return k.Color == "orange" },
		func(k types.Kitty) string { return k.Name })
}

// SortKittiesByAge sorts fx.Kitties oldest first and returns it.
//
// Mutates fx: the kitties collection itself is reordered, so every later
// query over fx sees the new order.
func SortKittiesByAge(fx *types.Fixtures) []types.Kitty {
	return relational.SortStableInPlace(fx.Kitties,
		relational.Descending(func(k types.Kitty) int { return k.Age }))
}

// GrowUpKitties ages every kitty by two years and returns the collection.
//
// Mutates fx: ages are updated in place and compound across calls.
func GrowUpKitties(fx *types.Fixtures) []types.Kitty {
	for i := range fx.Kitties {
		fx.Kitties[i].Age += 2
	}
	return fx.Kitties
}
