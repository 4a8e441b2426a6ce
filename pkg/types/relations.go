package types

// Instructor teaches in one module. Module selects the cohort at position
// Module-1 of the cohorts collection.
type Instructor struct {
	Name    string   `json:"name"`
	Module  int      `json:"module"`
	Teaches []string `json:"teaches"`
}

// Cohort is a class of students in one module.
type Cohort struct {
	Cohort       int      `json:"cohort"`
	Module       int      `json:"module"`
	StudentCount int      `json:"studentCount"`
	Curriculum   []string `json:"curriculum"`
}

// SidekickRef names a sidekick from a Boss record.
type SidekickRef struct {
	Name string `json:"name"`
}

// Boss is a record of the bosses collection, keyed by Key.
type Boss struct {
	Key       string        `json:"key"`
	Name      string        `json:"name"`
	Sidekicks []SidekickRef `json:"sidekicks"`
}

// Sidekick references its boss by Boss.Name.
type Sidekick struct {
	Name          string `json:"name"`
	Boss          string `json:"boss"`
	LoyaltyToBoss int    `json:"loyaltyToBoss"`
}

// Constellation is keyed by Key and lists member stars by name.
type Constellation struct {
	Key   string   `json:"key"`
	Names []string `json:"names"`
	Stars []string `json:"stars"`
}

// Star is a record of the stars collection.
type Star struct {
	Name                string  `json:"name"`
	VisualMagnitude     float64 `json:"visualMagnitude"`
	Constellation       string  `json:"constellation"`
	LightYearsFromEarth float64 `json:"lightYearsFromEarth"`
	Color               string  `json:"color"`
}

// Weapon is keyed by Name; characters reference weapons by that name.
type Weapon struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
	Range  int    `json:"range"`
}

// Character carries the names of the weapons it can use.
type Character struct {
	Name    string   `json:"name"`
	Weapons []string `json:"weapons"`
}

// Dinosaur is keyed by Name.
type Dinosaur struct {
	Name      string `json:"name"`
	Carnivore bool   `json:"carnivore"`
	IsAwesome bool   `json:"isAwesome"`
}

// Human is keyed by Name; movies reference humans in their cast lists.
type Human struct {
	Name                string `json:"name"`
	YearBorn            int    `json:"yearBorn"`
	Nationality         string `json:"nationality"`
	ImdbStarMeterRating int    `json:"imdbStarMeterRating"`
}

// Movie references humans by name in LeadingActors and SupportingActors and
// dinosaurs by name in Dinos.
type Movie struct {
	Title            string   `json:"title"`
	Director         string   `json:"director"`
	LeadingActors    []string `json:"leadingActors"`
	SupportingActors []string `json:"supportingActors"`
	Dinos            []string `json:"dinos"`
	YearReleased     int      `json:"yearReleased"`
}

// Cast returns the leading actors followed by the supporting actors.
func (m Movie) Cast() []string {
	cast := make([]string, 0, len(m.LeadingActors)+len(m.SupportingActors))
	cast = append(cast, m.LeadingActors...)
	return append(cast, m.SupportingActors...)
}
