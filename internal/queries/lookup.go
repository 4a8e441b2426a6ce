package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Keyed collections are resolved through these lookups rather than by
// scanning. A reference to an unknown key resolves to the zero record.

func weaponLookup(fx *types.Fixtures) func(name string) types.Weapon {
	byName := relational.IndexBy(fx.Weapons, func(w types.Weapon) string { return w.Name })
	return func(name string) types.Weapon { return byName[name] }
}

func dinosaurLookup(fx *types.Fixtures) func(name string) types.Dinosaur {
	byName := relational.IndexBy(fx.Dinosaurs, func(d types.Dinosaur) string { return d.Name })
	return func(name string) types.Dinosaur { return byName[name] }
}

func humanLookup(fx *types.Fixtures) func(name string) types.Human {
	byName := relational.IndexBy(fx.Humans, func(h types.Human) string { return h.Name })
	return func(name string) types.Human { return byName[name] }
}

func characterWeapons(c types.Character) []string { return c.Weapons }

func constellationStars(c types.Constellation) []string { return c.Stars }

func humanName(h types.Human) string { return h.Name }

func movieCast(m types.Movie) []string { return m.Cast() }
