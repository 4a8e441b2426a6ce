package types

// Fixtures holds every collection the queries read. It is built once, before
// any query runs, and passed explicitly to each query. A nil collection means
// the collection was not loaded; an empty one was loaded with no records.
//
// Queries read Fixtures without writing to it, except the few that document
// an in-place mutation. Callers that share one Fixtures across goroutines
// must serialize calls to those.
type Fixtures struct {
	Kitties        []Kitty
	Clubs          []Club
	Mods           []Mod
	Cakes          []Cake
	Classrooms     []Classroom
	Books          []Book
	Weather        []Weather
	NationalParks  []NationalPark
	Breweries      []Brewery
	Instructors    []Instructor
	Cohorts        []Cohort
	Bosses         []Boss
	Sidekicks      []Sidekick
	Constellations []Constellation
	Stars          []Star
	Weapons        []Weapon
	Characters     []Character
	Dinosaurs      []Dinosaur
	Humans         []Human
	Movies         []Movie
}

// Has reports whether the named collection has been loaded.
func (f *Fixtures) Has(collection string) bool {
	if f == nil {
		return false
	}
	switch collection {
	case CollectionKitties:
		return f.Kitties != nil
	case CollectionClubs:
		return f.Clubs != nil
	case CollectionMods:
		return f.Mods != nil
	case CollectionCakes:
		return f.Cakes != nil
	case CollectionClassrooms:
		return f.Classrooms != nil
	case CollectionBooks:
		return f.Books != nil
	case CollectionWeather:
		return f.Weather != nil
	case CollectionNationalParks:
		return f.NationalParks != nil
	case CollectionBreweries:
		return f.Breweries != nil
	case CollectionInstructors:
		return f.Instructors != nil
	case CollectionCohorts:
		return f.Cohorts != nil
	case CollectionBosses:
		return f.Bosses != nil
	case CollectionSidekicks:
		return f.Sidekicks != nil
	case CollectionConstellations:
		return f.Constellations != nil
	case CollectionStars:
		return f.Stars != nil
	case CollectionWeapons:
		return f.Weapons != nil
	case CollectionCharacters:
		return f.Characters != nil
	case CollectionDinosaurs:
		return f.Dinosaurs != nil
	case CollectionHumans:
		return f.Humans != nil
	case CollectionMovies:
		return f.Movies != nil
	default:
		return false
	}
}

// Missing returns the collections of dataset that have not been loaded, in
// declaration order. Returns ErrUnknownDataset for an unrecognized dataset.
func (f *Fixtures) Missing(dataset string) ([]string, error) {
	collections, ok := DatasetCollections[dataset]
	if !ok {
		return nil, ErrUnknownDataset
	}
	var missing []string
	for _, c := range collections {
		if !f.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing, nil
}
