package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

func TestDefaultLoadsEveryCollection(t *testing.T) {
	fx, err := Default()
	require.NoError(t, err)

	want := map[string]int{
		types.CollectionKitties:        4,
		types.CollectionClubs:          4,
		types.CollectionMods:           4,
		types.CollectionCakes:          5,
		types.CollectionClassrooms:     8,
		types.CollectionBooks:          11,
		types.CollectionWeather:        10,
		types.CollectionNationalParks:  6,
		types.CollectionBreweries:      3,
		types.CollectionInstructors:    9,
		types.CollectionCohorts:        4,
		types.CollectionBosses:         3,
		types.CollectionSidekicks:      6,
		types.CollectionConstellations: 3,
		types.CollectionStars:          10,
		types.CollectionWeapons:        10,
		types.CollectionCharacters:     5,
		types.CollectionDinosaurs:      12,
		types.CollectionHumans:         13,
		types.CollectionMovies:         5,
	}
	assert.Equal(t, want, Counts(fx))

	for _, name := range types.DatasetNames {
		missing, err := fx.Missing(name)
		require.NoError(t, err)
		assert.Empty(t, missing, name)
	}
}

func TestDefaultDecodesRecordFields(t *testing.T) {
	fx, err := Default()
	require.NoError(t, err)

	assert.Equal(t, types.Kitty{Name: "Tiger", Age: 5, Color: "orange"}, fx.Kitties[0])

	assert.Nil(t, fx.Cakes[0].Filling, "null filling stays nil")
	require.NotNil(t, fx.Cakes[1].Filling)
	assert.Equal(t, "citrus glaze", *fx.Cakes[1].Filling)

	assert.Equal(t, types.Temperature{High: 50, Low: 30}, fx.Weather[0].Temperature)
	assert.Equal(t, []types.SidekickRef{{Name: "Flotsam"}, {Name: "Jetsam"}}, fx.Bosses[1].Sidekicks)
	assert.Equal(t, "Boötes", fx.Stars[2].Constellation)
	assert.InDelta(t, 10.9, fx.Breweries[0].Beers[2].ABV, 1e-9)

	jp3 := fx.Movies[2]
	assert.Equal(t, "Jurassic Park III", jp3.Title)
	assert.NotNil(t, jp3.SupportingActors)
	assert.Empty(t, jp3.SupportingActors)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)

	a.Kitties[0].Age = 99
	assert.Equal(t, 5, b.Kitties[0].Age)
}

func TestLoadLeavesAbsentCollectionsNil(t *testing.T) {
	fsys := fstest.MapFS{
		"kitties.jsonl": {Data: []byte(`{"name":"Tiger","age":5,"color":"orange"}` + "\n")},
		"movies.jsonl":  {Data: []byte("")},
	}

	fx, err := Load(fsys)
	require.NoError(t, err)

	assert.Len(t, fx.Kitties, 1)
	assert.True(t, fx.Has(types.CollectionMovies), "an empty file is a loaded collection")
	assert.Empty(t, fx.Movies)
	assert.Nil(t, fx.Humans)

	missing, err := fx.Missing(types.DatasetDinosaurs)
	require.NoError(t, err)
	assert.Equal(t, []string{types.CollectionDinosaurs, types.CollectionHumans}, missing)

	assert.Equal(t, map[string]int{types.CollectionKitties: 1, types.CollectionMovies: 0}, Counts(fx))
}

func TestLoadSkipsBlankLines(t *testing.T) {
	fsys := fstest.MapFS{
		"weapons.jsonl": {Data: []byte("\n" + `{"name":"dagger","damage":2,"range":1}` + "\n\n   \n" +
			`{"name":"bow","damage":7,"range":12}` + "\n")},
	}

	fx, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []types.Weapon{{Name: "dagger", Damage: 2, Range: 1}, {Name: "bow", Damage: 7, Range: 12}}, fx.Weapons)
}

func TestLoadRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		wantText string
	}{
		{
			name:     "malformed JSON",
			file:     "kitties.jsonl",
			data:     `{"name":"Tiger","age":5,"color":"orange"}` + "\n" + `{"name":"Max",` + "\n",
			wantText: "kitties.jsonl line 2",
		},
		{
			name:     "missing required field",
			file:     "kitties.jsonl",
			data:     `{"name":"Tiger","color":"orange"}` + "\n",
			wantText: "kitties record 1",
		},
		{
			name:     "unknown program",
			file:     "classrooms.jsonl",
			data:     `{"roomLetter":"A","program":"QA","capacity":3}` + "\n",
			wantText: "classrooms record 1",
		},
		{
			name:     "negative stock",
			file:     "cakes.jsonl",
			data:     `{"cakeFlavor":"x","filling":null,"frosting":"y","toppings":[],"inStock":-1}` + "\n",
			wantText: "cakes record 1",
		},
		{
			name:     "wrong type",
			file:     "weapons.jsonl",
			data:     `{"name":"dagger","damage":"two","range":1}` + "\n",
			wantText: "weapons record 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fstest.MapFS{tt.file: {Data: []byte(tt.data)}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidRecord), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestLoadLongLines(t *testing.T) {
	long := `{"name":"` + strings.Repeat("a", 100*1024) + `","age":1,"color":"orange"}`
	fx, err := Load(fstest.MapFS{"kitties.jsonl": {Data: []byte(long + "\n")}})
	require.NoError(t, err, "lines past the default scanner limit still load")
	require.Len(t, fx.Kitties, 1)
	assert.Len(t, fx.Kitties[0].Name, 100*1024)

	tooLong := `{"name":"` + strings.Repeat("a", maxLineSize) + `","age":1,"color":"orange"}`
	data := `{"name":"Tiger","age":5,"color":"orange"}` + "\n" + tooLong + "\n"
	_, err = Load(fstest.MapFS{"kitties.jsonl": {Data: []byte(data)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "kitties.jsonl line 2")
}

func TestLoadToleratesUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"kitties.jsonl": {Data: []byte(`{"name":"Tiger","age":5,"color":"orange","favoriteToy":"yarn"}` + "\n")},
	}
	fx, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Tiger", fx.Kitties[0].Name)
}

func TestLoadDirOverlaysEmbeddedCollections(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "kitties.jsonl"),
		[]byte(`{"name":"Garfield","age":45,"color":"orange"}`+"\n"), 0o644)
	require.NoError(t, err)

	fx, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []types.Kitty{{Name: "Garfield", Age: 45, Color: "orange"}}, fx.Kitties)
	assert.Len(t, fx.Movies, 5, "collections without an override come from the embedded set")
}

func TestLoadDirEmptyUsesEmbedded(t *testing.T) {
	fx, err := LoadDir("")
	require.NoError(t, err)
	assert.Len(t, fx.Kitties, 4)
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = LoadDir(file)
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.jsonl"), []byte("not json\n"), 0o644))
	_, err = LoadDir(dir)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestExportRoundTrip(t *testing.T) {
	fx, err := Default()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	written, err := Export(fx, dir)
	require.NoError(t, err)
	assert.Len(t, written, len(types.CollectionNames))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}

	back, err := Load(os.DirFS(dir))
	require.NoError(t, err)
	assert.Equal(t, fx, back)
}

func TestExportSkipsUnloadedCollections(t *testing.T) {
	fx := &types.Fixtures{Kitties: []types.Kitty{{Name: "Max", Age: 4, Color: "tuxedo"}}}

	dir := t.TempDir()
	written, err := Export(fx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "kitties.jsonl")}, written)

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Max","age":4,"color":"tuxedo"}`+"\n", string(data))
}

func TestExportOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kitties.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	_, err := Export(&types.Fixtures{Kitties: []types.Kitty{}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestEveryCollectionHasASchema(t *testing.T) {
	schemas, err := compiledSchemas()
	require.NoError(t, err)
	for _, name := range types.CollectionNames {
		assert.Contains(t, schemas, name)
	}
	require.Len(t, collections, len(types.CollectionNames))
	for i, c := range collections {
		assert.Equal(t, types.CollectionNames[i], c.name)
	}
}
