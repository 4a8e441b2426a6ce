package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// rowSet is the rows of one table, in insertion order.
type rowSet struct {
	table   string
	columns []string
	rows    [][]any
}

func (rs *rowSet) add(values ...any) {
	rs.rows = append(rs.rows, values)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rowsFor flattens the mirrored collections of fx into table rows. Parent
// tables come before their link tables.
func rowsFor(fx *types.Fixtures) []*rowSet {
	bosses := &rowSet{table: "bosses", columns: []string{"position", "boss_key", "name"}}
	for i, b := range fx.Bosses {
		bosses.add(i, b.Key, b.Name)
	}
	sidekicks := &rowSet{table: "sidekicks", columns: []string{"position", "name", "boss", "loyalty_to_boss"}}
	for i, s := range fx.Sidekicks {
		sidekicks.add(i, s.Name, s.Boss, s.LoyaltyToBoss)
	}

	weapons := &rowSet{table: "weapons", columns: []string{"position", "name", "damage", "weapon_range"}}
	for i, w := range fx.Weapons {
		weapons.add(i, w.Name, w.Damage, w.Range)
	}
	characters := &rowSet{table: "characters", columns: []string{"position", "name"}}
	characterWeapons := &rowSet{table: "character_weapons", columns: []string{"character_position", "position", "weapon"}}
	for i, c := range fx.Characters {
		characters.add(i, c.Name)
		for j, w := range c.Weapons {
			characterWeapons.add(i, j, w)
		}
	}

	instructors := &rowSet{table: "instructors", columns: []string{"position", "name", "module"}}
	for i, in := range fx.Instructors {
		instructors.add(i, in.Name, in.Module)
	}
	cohorts := &rowSet{table: "cohorts", columns: []string{"position", "cohort", "module", "student_count"}}
	for i, c := range fx.Cohorts {
		cohorts.add(i, c.Cohort, c.Module, c.StudentCount)
	}

	dinosaurs := &rowSet{table: "dinosaurs", columns: []string{"position", "name", "carnivore", "is_awesome"}}
	for i, d := range fx.Dinosaurs {
		dinosaurs.add(i, d.Name, boolInt(d.Carnivore), boolInt(d.IsAwesome))
	}
	humans := &rowSet{table: "humans", columns: []string{"position", "name", "year_born", "nationality", "imdb_star_meter_rating"}}
	for i, h := range fx.Humans {
		humans.add(i, h.Name, h.YearBorn, h.Nationality, h.ImdbStarMeterRating)
	}
	movies := &rowSet{table: "movies", columns: []string{"position", "title", "director", "year_released"}}
	movieCast := &rowSet{table: "movie_cast", columns: []string{"movie_position", "position", "actor", "leading"}}
	movieDinos := &rowSet{table: "movie_dinos", columns: []string{"movie_position", "position", "dino"}}
	for i, m := range fx.Movies {
		movies.add(i, m.Title, m.Director, m.YearReleased)
		for j, actor := range m.LeadingActors {
			movieCast.add(i, j, actor, 1)
		}
		for j, actor := range m.SupportingActors {
			movieCast.add(i, len(m.LeadingActors)+j, actor, 0)
		}
		for j, dino := range m.Dinos {
			movieDinos.add(i, j, dino)
		}
	}

	cakes := &rowSet{table: "cakes", columns: []string{"position", "cake_flavor", "filling", "frosting", "in_stock"}}
	cakeToppings := &rowSet{table: "cake_toppings", columns: []string{"cake_position", "position", "topping"}}
	for i, c := range fx.Cakes {
		var filling any
		if c.Filling != nil {
			filling = *c.Filling
		}
		cakes.add(i, c.CakeFlavor, filling, c.Frosting, c.InStock)
		for j, topping := range c.Toppings {
			cakeToppings.add(i, j, topping)
		}
	}

	classrooms := &rowSet{table: "classrooms", columns: []string{"position", "room_letter", "program", "capacity"}}
	for i, c := range fx.Classrooms {
		classrooms.add(i, c.RoomLetter, c.Program, c.Capacity)
	}

	return []*rowSet{
		bosses, sidekicks,
		weapons, characters, characterWeapons,
		instructors, cohorts,
		dinosaurs, humans, movies, movieCast, movieDinos,
		cakes, cakeToppings,
		classrooms,
	}
}

// loadFixtures inserts the mirrored collections of fx in one transaction.
// Either every row is loaded or the database stays empty.
func loadFixtures(db *sql.DB, fx *types.Fixtures) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rs := range rowsFor(fx) {
		if len(rs.rows) == 0 {
			continue
		}
		if err := insertRows(tx, rs); err != nil {
			return fmt.Errorf("loading %s: %w", rs.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

func insertRows(tx *sql.Tx, rs *rowSet) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(rs.columns)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		rs.table, strings.Join(rs.columns, ", "), placeholders)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rs.rows {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
