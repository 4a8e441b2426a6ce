package sqlite

import (
	"context"
	"fmt"
	"reflect"

	"github.com/mesh-intelligence/prototypes/internal/queries"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Check pairs a Go query with its SQL rendition.
type Check struct {
	Dataset string
	Query   string
	run     func(fx *types.Fixtures) any
	sql     func(ctx context.Context, m *Mirror) (any, error)
}

// Mismatch is a check whose two engines disagree.
type Mismatch struct {
	Dataset string `json:"dataset" yaml:"dataset"`
	Query   string `json:"query" yaml:"query"`
	Go      any    `json:"go" yaml:"go"`
	SQL     any    `json:"sql" yaml:"sql"`
}

// Report summarizes a Verify pass.
type Report struct {
	Checked    []string   `json:"checked" yaml:"checked"`
	Skipped    []string   `json:"skipped" yaml:"skipped"`
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`
}

// OK reports whether every check that ran agreed.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

func check[R any](dataset, query string, run func(*types.Fixtures) R, sql func(*Mirror, context.Context) (R, error)) Check {
	return Check{
		Dataset: dataset,
		Query:   query,
		run:     func(fx *types.Fixtures) any { return run(fx) },
		sql: func(ctx context.Context, m *Mirror) (any, error) {
			return sql(m, ctx)
		},
	}
}

// Checks returns every Go/SQL query pair.
func Checks() []Check {
	return []Check{
		check(types.DatasetBosses, "bossLoyalty", queries.BossLoyalty, (*Mirror).BossLoyalty),
		check(types.DatasetUltima, "totalDamage", queries.TotalDamage, (*Mirror).TotalDamage),
		check(types.DatasetTuring, "studentsForEachInstructor", queries.StudentsForEachInstructor, (*Mirror).StudentsForEachInstructor),
		check(types.DatasetDinosaurs, "uncastActors", queries.UncastActors, (*Mirror).UncastActors),
		check(types.DatasetDinosaurs, "countAwesomeDinosaurs", queries.CountAwesomeDinosaurs, (*Mirror).CountAwesomeDinosaurs),
		check(types.DatasetCakes, "totalInventory", queries.TotalInventory, (*Mirror).TotalInventory),
		check(types.DatasetCakes, "groceryList", queries.GroceryList, (*Mirror).GroceryList),
		check(types.DatasetClassrooms, "totalCapacities", queries.TotalCapacities, (*Mirror).TotalCapacities),
	}
}

// Verify runs every check whose dataset is loaded in fx against both
// engines. The mirror must have been opened over the same fixtures.
func (m *Mirror) Verify(ctx context.Context, fx *types.Fixtures) (Report, error) {
	report := Report{Checked: []string{}, Skipped: []string{}, Mismatches: []Mismatch{}}
	for _, c := range Checks() {
		id := c.Dataset + "/" + c.Query
		missing, err := fx.Missing(c.Dataset)
		if err != nil {
			return report, err
		}
		if len(missing) > 0 {
			report.Skipped = append(report.Skipped, id)
			continue
		}

		want := c.run(fx)
		got, err := c.sql(ctx, m)
		if err != nil {
			return report, fmt.Errorf("%s: %w", id, err)
		}
		report.Checked = append(report.Checked, id)
		if !reflect.DeepEqual(want, got) {
			report.Mismatches = append(report.Mismatches, Mismatch{Dataset: c.Dataset, Query: c.Query, Go: want, SQL: got})
		}
	}
	return report, nil
}
