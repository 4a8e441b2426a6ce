package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

const (
	bossLoyaltySQL = `SELECT b.name, COALESCE(SUM(s.loyalty_to_boss), 0)
FROM bosses b
LEFT JOIN sidekicks s ON s.boss = b.name
GROUP BY b.position
ORDER BY b.position`

	totalDamageSQL = `SELECT COALESCE(SUM(w.damage), 0)
FROM character_weapons cw
JOIN weapons w ON w.name = cw.weapon`

	studentsForEachInstructorSQL = `SELECT i.name, c.student_count
FROM instructors i
JOIN cohorts c ON c.position = i.module - 1
ORDER BY i.position`

	uncastActorsSQL = `SELECT h.name, h.nationality, h.imdb_star_meter_rating
FROM humans h
WHERE h.name NOT IN (SELECT actor FROM movie_cast)
ORDER BY h.nationality, h.position`

	countAwesomeDinosaursSQL = `SELECT m.title, COUNT(d.position)
FROM movies m
LEFT JOIN movie_dinos md ON md.movie_position = m.position
LEFT JOIN dinosaurs d ON d.name = md.dino AND d.is_awesome = 1
GROUP BY m.position
ORDER BY m.position`

	totalInventorySQL = `SELECT COALESCE(SUM(in_stock), 0) FROM cakes`

	groceryListSQL = `SELECT topping, COUNT(*) FROM cake_toppings GROUP BY topping`

	totalCapacitiesSQL = `SELECT
    COALESCE(SUM(CASE WHEN program = 'FE' THEN capacity ELSE 0 END), 0),
    COALESCE(SUM(CASE WHEN program <> 'FE' THEN capacity ELSE 0 END), 0)
FROM classrooms`
)

// BossLoyalty sums sidekick loyalty per boss, in boss order.
func (m *Mirror) BossLoyalty(ctx context.Context) ([]types.BossLoyalty, error) {
	out := []types.BossLoyalty{}
	err := m.each(ctx, bossLoyaltySQL, func(rows *sql.Rows) error {
		var b types.BossLoyalty
		if err := rows.Scan(&b.BossName, &b.SidekickLoyalty); err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	return out, err
}

// TotalDamage sums the damage of every weapon reference.
func (m *Mirror) TotalDamage(ctx context.Context) (int, error) {
	return m.scalar(ctx, totalDamageSQL)
}

// StudentsForEachInstructor joins instructors to the cohort at position
// module-1.
func (m *Mirror) StudentsForEachInstructor(ctx context.Context) ([]types.InstructorStudents, error) {
	out := []types.InstructorStudents{}
	err := m.each(ctx, studentsForEachInstructorSQL, func(rows *sql.Rows) error {
		var s types.InstructorStudents
		if err := rows.Scan(&s.Name, &s.StudentCount); err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

// UncastActors returns the humans missing from every cast, by nationality.
func (m *Mirror) UncastActors(ctx context.Context) ([]types.UncastActor, error) {
	out := []types.UncastActor{}
	err := m.each(ctx, uncastActorsSQL, func(rows *sql.Rows) error {
		var a types.UncastActor
		if err := rows.Scan(&a.Name, &a.Nationality, &a.ImdbStarMeterRating); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}

// CountAwesomeDinosaurs counts awesome dinosaurs per movie title.
func (m *Mirror) CountAwesomeDinosaurs(ctx context.Context) (map[string]int, error) {
	return m.counts(ctx, countAwesomeDinosaursSQL)
}

// TotalInventory sums cake stock.
func (m *Mirror) TotalInventory(ctx context.Context) (int, error) {
	return m.scalar(ctx, totalInventorySQL)
}

// GroceryList counts cakes per topping.
func (m *Mirror) GroceryList(ctx context.Context) (map[string]int, error) {
	return m.counts(ctx, groceryListSQL)
}

// TotalCapacities sums classroom capacity per program.
func (m *Mirror) TotalCapacities(ctx context.Context) (types.Capacities, error) {
	var c types.Capacities
	if err := m.db.QueryRowContext(ctx, totalCapacitiesSQL).Scan(&c.FECapacity, &c.BECapacity); err != nil {
		return types.Capacities{}, fmt.Errorf("querying capacities: %w", err)
	}
	return c, nil
}

func (m *Mirror) scalar(ctx context.Context, query string) (int, error) {
	var n int
	if err := m.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("querying scalar: %w", err)
	}
	return n, nil
}

func (m *Mirror) counts(ctx context.Context, query string) (map[string]int, error) {
	out := make(map[string]int)
	err := m.each(ctx, query, func(rows *sql.Rows) error {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		out[key] = n
		return nil
	})
	return out, err
}

func (m *Mirror) each(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}
