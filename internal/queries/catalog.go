// Package queries implements the relational queries over the dataset
// fixtures and a catalog that runs them by name.
//
// Each query takes the fixtures explicitly and returns a freshly built
// result. Only SortKittiesByAge and GrowUpKitties write to the fixtures;
// their catalog entries are flagged as mutating.
package queries

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Query is one registered query.
type Query struct {
	Dataset string
	Name    string
	Mutates bool
	Run     func(fx *types.Fixtures) any
}

// ID returns "<dataset>/<name>".
func (q Query) ID() string {
	return q.Dataset + "/" + q.Name
}

func query[R any](dataset, name string, fn func(*types.Fixtures) R) Query {
	return Query{
		Dataset: dataset,
		Name:    name,
		Run:     func(fx *types.Fixtures) any { return fn(fx) },
	}
}

func mutating(q Query) Query {
	q.Mutates = true
	return q
}

// Catalog indexes the queries by dataset and name and notifies observers
// around every run.
type Catalog struct {
	queries   []Query
	index     map[string]Query
	observers []Observer
}

// NewCatalog returns a catalog holding every query, registered under its
// dataset and its camelCase name.
func NewCatalog() *Catalog {
	c := &Catalog{index: make(map[string]Query)}
	for _, q := range []Query{
		query(types.DatasetKitties, "orangeKittyNames", OrangeKittyNames),
		mutating(query(types.DatasetKitties, "sortByAge", SortKittiesByAge)),
		mutating(query(types.DatasetKitties, "growUp", GrowUpKitties)),

		query(types.DatasetClubs, "membersBelongingToClubs", MembersBelongingToClubs),

		query(types.DatasetMods, "studentsPerMod", StudentsPerMod),

		query(types.DatasetCakes, "stockPerCake", StockPerCake),
		query(types.DatasetCakes, "onlyInStock", OnlyInStock),
		query(types.DatasetCakes, "totalInventory", TotalInventory),
		query(types.DatasetCakes, "allToppings", AllToppings),
		query(types.DatasetCakes, "groceryList", GroceryList),

		query(types.DatasetClassrooms, "feClassrooms", FEClassrooms),
		query(types.DatasetClassrooms, "totalCapacities", TotalCapacities),
		query(types.DatasetClassrooms, "sortByCapacity", SortByCapacity),

		query(types.DatasetBooks, "removeViolence", RemoveViolence),
		query(types.DatasetBooks, "getNewBooks", GetNewBooks),

		query(types.DatasetWeather, "getAverageTemps", GetAverageTemps),
		query(types.DatasetWeather, "findSunnySpots", FindSunnySpots),
		query(types.DatasetWeather, "findHighestHumidity", FindHighestHumidity),

		query(types.DatasetNationalParks, "getParkVisitList", GetParkVisitList),
		query(types.DatasetNationalParks, "getParkInEachState", GetParkInEachState),
		query(types.DatasetNationalParks, "getParkActivities", GetParkActivities),

		query(types.DatasetBreweries, "getBeerCount", GetBeerCount),
		query(types.DatasetBreweries, "getBreweryBeerCount", GetBreweryBeerCount),
		query(types.DatasetBreweries, "findHighestAbvBeer", FindHighestAbvBeer),

		query(types.DatasetTuring, "studentsForEachInstructor", StudentsForEachInstructor),
		query(types.DatasetTuring, "studentsPerInstructor", StudentsPerInstructor),
		query(types.DatasetTuring, "modulesPerTeacher", ModulesPerTeacher),
		query(types.DatasetTuring, "curriculumPerTeacher", CurriculumPerTeacher),

		query(types.DatasetBosses, "bossLoyalty", BossLoyalty),

		query(types.DatasetAstronomy, "starsInConstellations", StarsInConstellations),
		query(types.DatasetAstronomy, "starsByColor", StarsByColor),
		query(types.DatasetAstronomy, "constellationsStarsExistIn", ConstellationsStarsExistIn),

		query(types.DatasetUltima, "totalDamage", TotalDamage),
		query(types.DatasetUltima, "charactersByTotal", CharactersByTotal),

		query(types.DatasetDinosaurs, "countAwesomeDinosaurs", CountAwesomeDinosaurs),
		query(types.DatasetDinosaurs, "averageAgePerMovie", AverageAgePerMovie),
		query(types.DatasetDinosaurs, "uncastActors", UncastActors),
		query(types.DatasetDinosaurs, "actorsAgesInMovies", ActorsAgesInMovies),
	} {
		c.queries = append(c.queries, q)
		c.index[q.ID()] = q
	}
	return c
}

// Datasets returns every dataset name.
func (c *Catalog) Datasets() []string {
	return append([]string(nil), types.DatasetNames...)
}

// Queries returns the queries of dataset in registration order, or every
// query when dataset is empty.
func (c *Catalog) Queries(dataset string) ([]Query, error) {
	if dataset == "" {
		return append([]Query(nil), c.queries...), nil
	}
	if _, ok := types.DatasetCollections[dataset]; !ok {
		return nil, fmt.Errorf("%q: %w", dataset, types.ErrUnknownDataset)
	}
	var out []Query
	for _, q := range c.queries {
		if q.Dataset == dataset {
			out = append(out, q)
		}
	}
	return out, nil
}

// Lookup returns the query registered as dataset/name.
func (c *Catalog) Lookup(dataset, name string) (Query, error) {
	if _, ok := types.DatasetCollections[dataset]; !ok {
		return Query{}, fmt.Errorf("%q: %w", dataset, types.ErrUnknownDataset)
	}
	q, ok := c.index[dataset+"/"+name]
	if !ok {
		return Query{}, fmt.Errorf("%s/%s: %w", dataset, name, types.ErrUnknownQuery)
	}
	return q, nil
}

// Run executes dataset/name against fx. It fails with ErrFixtureMissing,
// before the query runs, when any collection the dataset needs is not
// loaded.
func (c *Catalog) Run(fx *types.Fixtures, dataset, name string) (any, error) {
	q, err := c.Lookup(dataset, name)
	if err != nil {
		return nil, err
	}
	missing, err := fx.Missing(dataset)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s needs %s: %w", q.ID(), strings.Join(missing, ", "), types.ErrFixtureMissing)
	}

	runID := newRunID()
	start := time.Now()
	c.notify(Event{Type: EventRunStart, RunID: runID, Dataset: q.Dataset, Query: q.Name, Mutates: q.Mutates, Timestamp: start})
	result := q.Run(fx)
	end := time.Now()
	c.notify(Event{Type: EventRunEnd, RunID: runID, Dataset: q.Dataset, Query: q.Name, Mutates: q.Mutates, Timestamp: end, Duration: end.Sub(start)})
	return result, nil
}

// AddObserver registers an observer for run events.
func (c *Catalog) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// RemoveObserver unregisters an observer.
func (c *Catalog) RemoveObserver(o Observer) {
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

func (c *Catalog) notify(event Event) {
	for _, o := range c.observers {
		o.OnEvent(event)
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
