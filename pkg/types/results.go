package types

// ModRatio is one element of studentsPerMod.
type ModRatio struct {
	Mod                   int     `json:"mod"`
	StudentsPerInstructor float64 `json:"studentsPerInstructor"`
}

// CakeStock is one element of stockPerCake.
type CakeStock struct {
	Flavor  string `json:"flavor"`
	InStock int    `json:"inStock"`
}

// Capacities is the result of totalCapacities.
type Capacities struct {
	FECapacity int `json:"feCapacity"`
	BECapacity int `json:"beCapacity"`
}

// BookYear is one element of getNewBooks.
type BookYear struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// ParkVisitList is the result of getParkVisitList.
type ParkVisitList struct {
	ParksToVisit []string `json:"parksToVisit"`
	ParksVisited []string `json:"parksVisited"`
}

// BreweryBeerCount is one element of getBreweryBeerCount.
type BreweryBeerCount struct {
	Name      string `json:"name"`
	BeerCount int    `json:"beerCount"`
}

// InstructorStudents is one element of studentsForEachInstructor.
type InstructorStudents struct {
	Name         string `json:"name"`
	StudentCount int    `json:"studentCount"`
}

// BossLoyalty is one element of bossLoyalty.
type BossLoyalty struct {
	BossName        string `json:"bossName"`
	SidekickLoyalty int    `json:"sidekickLoyalty"`
}

// DamageRange totals the weapons of one character.
type DamageRange struct {
	Damage int `json:"damage"`
	Range  int `json:"range"`
}

// UncastActor is one element of uncastActors.
type UncastActor struct {
	Name                string `json:"name"`
	Nationality         string `json:"nationality"`
	ImdbStarMeterRating int    `json:"imdbStarMeterRating"`
}

// ActorAges is one element of actorsAgesInMovies.
type ActorAges struct {
	Name string `json:"name"`
	Ages []int  `json:"ages"`
}
