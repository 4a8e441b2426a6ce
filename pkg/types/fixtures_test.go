package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesHas(t *testing.T) {
	fx := &Fixtures{
		Kitties: []Kitty{{Name: "Tiger", Age: 5, Color: "orange"}},
		Clubs:   []Club{},
	}

	assert.True(t, fx.Has(CollectionKitties))
	assert.True(t, fx.Has(CollectionClubs), "empty but loaded collection is present")
	assert.False(t, fx.Has(CollectionMods))
	assert.False(t, fx.Has("nope"))

	var nilFx *Fixtures
	assert.False(t, nilFx.Has(CollectionKitties))
}

func TestFixturesHasCoversEveryCollection(t *testing.T) {
	fx := &Fixtures{
		Kitties:        []Kitty{},
		Clubs:          []Club{},
		Mods:           []Mod{},
		Cakes:          []Cake{},
		Classrooms:     []Classroom{},
		Books:          []Book{},
		Weather:        []Weather{},
		NationalParks:  []NationalPark{},
		Breweries:      []Brewery{},
		Instructors:    []Instructor{},
		Cohorts:        []Cohort{},
		Bosses:         []Boss{},
		Sidekicks:      []Sidekick{},
		Constellations: []Constellation{},
		Stars:          []Star{},
		Weapons:        []Weapon{},
		Characters:     []Character{},
		Dinosaurs:      []Dinosaur{},
		Humans:         []Human{},
		Movies:         []Movie{},
	}
	for _, name := range CollectionNames {
		assert.True(t, fx.Has(name), name)
	}
}

func TestFixturesMissing(t *testing.T) {
	fx := &Fixtures{Instructors: []Instructor{}}

	missing, err := fx.Missing(DatasetTuring)
	require.NoError(t, err)
	assert.Equal(t, []string{CollectionCohorts}, missing)

	fx.Cohorts = []Cohort{}
	missing, err = fx.Missing(DatasetTuring)
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = fx.Missing("unicorns")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestDatasetCollectionsCoverEveryDataset(t *testing.T) {
	seen := map[string]bool{}
	for _, ds := range DatasetNames {
		cols, ok := DatasetCollections[ds]
		require.True(t, ok, ds)
		for _, c := range cols {
			seen[c] = true
		}
	}
	for _, c := range CollectionNames {
		assert.True(t, seen[c], "collection %s belongs to no dataset", c)
	}
}

func TestMovieCast(t *testing.T) {
	m := Movie{
		LeadingActors:    []string{"Sam Neill", "Laura Dern"},
		SupportingActors: []string{"BD Wong"},
	}
	assert.Equal(t, []string{"Sam Neill", "Laura Dern", "BD Wong"}, m.Cast())
	assert.Len(t, m.LeadingActors, 2, "Cast must not alias LeadingActors")

	assert.Empty(t, Movie{}.Cast())
}
