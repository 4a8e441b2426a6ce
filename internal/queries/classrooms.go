package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// FEClassrooms returns the front-end classrooms.
func FEClassrooms(fx *types.Fixtures) []types.Classroom {
	return relational.Filter(fx.Classrooms, func(c types.Classroom) bool {
		return c.Program == types.ProgramFrontEnd
	})
}

// TotalCapacities sums capacity per program. Rooms that are not front-end
// count toward the back-end total.
func TotalCapacities(fx *types.Fixtures) types.Capacities {
	return relational.Reduce(fx.Classrooms, types.Capacities{},
		func(acc types.Capacities, c types.Classroom) types.Capacities {
			if c.Program == types.ProgramFrontEnd {
				acc.FECapacity += c.Capacity
			} else {
				acc.BECapacity += c.Capacity
			}
			return acc
		})
}

// SortByCapacity returns the classrooms from least to greatest capacity.
// Rooms of equal capacity keep their dataset order; fx is not modified.
func SortByCapacity(fx *types.Fixtures) []types.Classroom {
	return relational.SortStable(fx.Classrooms,
		relational.Ascending(func(c types.Classroom) int { return c.Capacity }))
}
