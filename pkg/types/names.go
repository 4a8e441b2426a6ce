package types

// Collection names. Each collection is stored as <name>.jsonl.
const (
	CollectionKitties        = "kitties"
	CollectionClubs          = "clubs"
	CollectionMods           = "mods"
	CollectionCakes          = "cakes"
	CollectionClassrooms     = "classrooms"
	CollectionBooks          = "books"
	CollectionWeather        = "weather"
	CollectionNationalParks  = "nationalParks"
	CollectionBreweries      = "breweries"
	CollectionInstructors    = "instructors"
	CollectionCohorts        = "cohorts"
	CollectionBosses         = "bosses"
	CollectionSidekicks      = "sidekicks"
	CollectionConstellations = "constellations"
	CollectionStars          = "stars"
	CollectionWeapons        = "weapons"
	CollectionCharacters     = "characters"
	CollectionDinosaurs      = "dinosaurs"
	CollectionHumans         = "humans"
	CollectionMovies         = "movies"
)

// CollectionNames lists every collection in load order.
var CollectionNames = []string{
	CollectionKitties,
	CollectionClubs,
	CollectionMods,
	CollectionCakes,
	CollectionClassrooms,
	CollectionBooks,
	CollectionWeather,
	CollectionNationalParks,
	CollectionBreweries,
	CollectionInstructors,
	CollectionCohorts,
	CollectionBosses,
	CollectionSidekicks,
	CollectionConstellations,
	CollectionStars,
	CollectionWeapons,
	CollectionCharacters,
	CollectionDinosaurs,
	CollectionHumans,
	CollectionMovies,
}

// Dataset names. A dataset groups the collections one family of queries reads.
const (
	DatasetKitties       = "kitties"
	DatasetClubs         = "clubs"
	DatasetMods          = "mods"
	DatasetCakes         = "cakes"
	DatasetClassrooms    = "classrooms"
	DatasetBooks         = "books"
	DatasetWeather       = "weather"
	DatasetNationalParks = "nationalParks"
	DatasetBreweries     = "breweries"
	DatasetTuring        = "turing"
	DatasetBosses        = "bosses"
	DatasetAstronomy     = "astronomy"
	DatasetUltima        = "ultima"
	DatasetDinosaurs     = "dinosaurs"
)

// DatasetNames lists every dataset, single-collection datasets first.
var DatasetNames = []string{
	DatasetKitties,
	DatasetClubs,
	DatasetMods,
	DatasetCakes,
	DatasetClassrooms,
	DatasetBooks,
	DatasetWeather,
	DatasetNationalParks,
	DatasetBreweries,
	DatasetTuring,
	DatasetBosses,
	DatasetAstronomy,
	DatasetUltima,
	DatasetDinosaurs,
}

// DatasetCollections maps each dataset to the collections its queries read.
var DatasetCollections = map[string][]string{
	DatasetKitties:       {CollectionKitties},
	DatasetClubs:         {CollectionClubs},
	DatasetMods:          {CollectionMods},
	DatasetCakes:         {CollectionCakes},
	DatasetClassrooms:    {CollectionClassrooms},
	DatasetBooks:         {CollectionBooks},
	DatasetWeather:       {CollectionWeather},
	DatasetNationalParks: {CollectionNationalParks},
	DatasetBreweries:     {CollectionBreweries},
	DatasetTuring:        {CollectionInstructors, CollectionCohorts},
	DatasetBosses:        {CollectionBosses, CollectionSidekicks},
	DatasetAstronomy:     {CollectionConstellations, CollectionStars},
	DatasetUltima:        {CollectionWeapons, CollectionCharacters},
	DatasetDinosaurs:     {CollectionDinosaurs, CollectionHumans, CollectionMovies},
}
