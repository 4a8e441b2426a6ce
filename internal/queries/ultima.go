package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// TotalDamage sums the damage of every weapon every character can use. A
// weapon used by two characters counts twice.
func TotalDamage(fx *types.Fixtures) int {
	weapon := weaponLookup(fx)
	used := relational.FlatMap(fx.Characters, characterWeapons)
	return relational.SumBy(used, func(name string) int { return weapon(name).Damage })
}

// CharactersByTotal returns, per character, a single-entry map from the
// character's name to the summed damage and range of its weapons.
func CharactersByTotal(fx *types.Fixtures) []map[string]types.DamageRange {
	weapon := weaponLookup(fx)
	return relational.Map(fx.Characters, func(c types.Character) map[string]types.DamageRange {
		total := relational.Reduce(c.Weapons, types.DamageRange{},
			func(acc types.DamageRange, name string) types.DamageRange {
				w := weapon(name)
				acc.Damage += w.Damage
				acc.Range += w.Range
				return acc
			})
		return map[string]types.DamageRange{c.Name: total}
	})
}
