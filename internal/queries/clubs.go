package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// MembersBelongingToClubs maps each person to the clubs they belong to, in
// club order.
func MembersBelongingToClubs(fx *types.Fixtures) map[string][]string {
	return relational.GroupAppend(fx.Clubs,
		func(c types.Club) []string { return c.Members },
		func(c types.Club) string { return c.Club })
}

// StudentsPerMod reports the student to instructor ratio of every module.
func StudentsPerMod(fx *types.Fixtures) []types.ModRatio {
	return relational.Map(fx.Mods, func(m types.Mod) types.ModRatio {
		return types.ModRatio{
			Mod:                   m.Mod,
			StudentsPerInstructor: float64(m.Students) / float64(m.Instructors),
		}
	})
}
