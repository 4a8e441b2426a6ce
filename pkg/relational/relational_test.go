package relational

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cat struct {
	color string
	name  string
}

type room struct {
	letter string
	cap    int
}

type order struct {
	tags []string
}

func TestFilterMap(t *testing.T) {
	src := []cat{{"orange", "Tiger"}, {"grey", "Ash"}}
	isOrange := func(c cat) bool { return c.color == "orange" }

	got := FilterMap(src, isOrange, func(c cat) string { return c.name })
	assert.Equal(t, []string{"Tiger"}, got)

	filtered := Filter(src, isOrange)
	assert.LessOrEqual(t, len(filtered), len(src))
	for _, c := range filtered {
		assert.True(t, isOrange(c))
	}
}

func TestFilterKeepsSourceOrder(t *testing.T) {
	src := []int{5, 2, 8, 1, 9, 4}
	got := Filter(src, func(n int) bool { return n > 3 })
	assert.Equal(t, []int{5, 8, 9, 4}, got)
}

func TestFilterOnEmptyReturnsEmptySlice(t *testing.T) {
	got := Filter([]int(nil), func(int) bool { return true })
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMap(t *testing.T) {
	got := Map([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestReduce(t *testing.T) {
	got := Reduce([]string{"a", "b", "c"}, "", func(acc, s string) string { return acc + s })
	assert.Equal(t, "abc", got)
}

func TestSumByCountsZeroValues(t *testing.T) {
	rooms := []room{{"A", 0}, {"B", 10}, {"C", 0}, {"D", 5}}
	assert.Equal(t, 15, SumBy(rooms, func(r room) int { return r.cap }))
	assert.Equal(t, 0, SumBy([]room{}, func(r room) int { return r.cap }))
	assert.InDelta(t, 1.5, SumBy([]float64{0.5, 1}, func(f float64) float64 { return f }), 1e-9)
}

func TestFlatMap(t *testing.T) {
	src := []order{{[]string{"a", "b"}}, {nil}, {[]string{"b"}}}
	got := FlatMap(src, func(o order) []string { return o.tags })
	assert.Equal(t, []string{"a", "b", "b"}, got)

	empty := FlatMap([]order{}, func(o order) []string { return o.tags })
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUniqueFirstSeenOrder(t *testing.T) {
	src := []order{{[]string{"a", "b"}}, {[]string{"b", "c"}}}
	got := Unique(src, func(o order) []string { return o.tags })
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestUniqueHasNoDuplicates(t *testing.T) {
	src := []order{
		{[]string{"x", "y", "x"}},
		{[]string{"z", "y"}},
		{[]string{}},
		{[]string{"w", "x", "z"}},
	}
	got := Unique(src, func(o order) []string { return o.tags })

	seen := map[string]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %q", v)
		seen[v] = true
	}
	assert.Equal(t, []string{"x", "y", "z", "w"}, got)
}

func TestGroupBy(t *testing.T) {
	src := []cat{{"orange", "Tiger"}, {"grey", "Ash"}, {"orange", "Snickers"}}
	got := GroupBy(src, func(c cat) string { return c.color })

	assert.Equal(t, []cat{{"orange", "Tiger"}, {"orange", "Snickers"}}, got["orange"])
	assert.Equal(t, []cat{{"grey", "Ash"}}, got["grey"])

	total := 0
	for _, group := range got {
		total += len(group)
	}
	assert.Equal(t, len(src), total)
}

func TestGroupAppend(t *testing.T) {
	type club struct {
		name    string
		members []string
	}
	src := []club{
		{"Drama", []string{"Louisa", "Pam"}},
		{"Art", []string{"Pam"}},
		{"Chess", []string{}},
	}
	got := GroupAppend(src,
		func(c club) []string { return c.members },
		func(c club) string { return c.name })

	assert.Equal(t, map[string][]string{
		"Louisa": {"Drama"},
		"Pam":    {"Drama", "Art"},
	}, got)
}

func TestCountBySumsToTotal(t *testing.T) {
	src := []order{{[]string{"a", "b"}}, {[]string{"b", "c"}}, {[]string{"b"}}}
	got := CountBy(src, func(o order) []string { return o.tags })

	assert.Equal(t, map[string]int{"a": 1, "b": 3, "c": 1}, got)

	sum := 0
	for _, n := range got {
		sum += n
	}
	flat := FlatMap(src, func(o order) []string { return o.tags })
	assert.Equal(t, len(flat), sum)
}

func TestSortStableAscending(t *testing.T) {
	src := []room{{"A", 30}, {"B", 10}, {"C", 20}}
	got := SortStable(src, Ascending(func(r room) int { return r.cap }))

	assert.Equal(t, []room{{"B", 10}, {"C", 20}, {"A", 30}}, got)
	assert.Equal(t, []room{{"A", 30}, {"B", 10}, {"C", 20}}, src, "source must be untouched")
}

func TestSortStableKeepsTieOrder(t *testing.T) {
	src := []room{{"A", 2}, {"B", 1}, {"C", 2}, {"D", 1}, {"E", 2}}

	asc := SortStable(src, Ascending(func(r room) int { return r.cap }))
	assert.Equal(t, "BDACE", letters(asc))

	desc := SortStable(src, Descending(func(r room) int { return r.cap }))
	assert.Equal(t, "ACEBD", letters(desc))
}

func TestSortStableInPlaceMutatesSource(t *testing.T) {
	src := []room{{"A", 30}, {"B", 10}, {"C", 20}}
	alias := src

	got := SortStableInPlace(src, Descending(func(r room) int { return r.cap }))

	assert.Equal(t, "ACB", letters(got))
	assert.Equal(t, "ACB", letters(alias), "every holder sees the new order")
}

func TestAscendingStrings(t *testing.T) {
	src := []string{"Martian", "Alien", "Kiwi", "Chinese"}
	got := SortStable(src, Ascending(func(s string) string { return s }))
	assert.Equal(t, []string{"Alien", "Chinese", "Kiwi", "Martian"}, got)
}

func TestMaxByReturnsFirstOfTies(t *testing.T) {
	src := []room{{"A", 5}, {"B", 9}, {"C", 9}}
	got, ok := MaxBy(src, func(r room) int { return r.cap })
	require.True(t, ok)
	assert.Equal(t, "B", got.letter)

	_, ok = MaxBy([]room{}, func(r room) int { return r.cap })
	assert.False(t, ok)
}

func TestIndexBy(t *testing.T) {
	src := []room{{"A", 5}, {"B", 9}}
	got := IndexBy(src, func(r room) string { return r.letter })
	assert.Equal(t, 9, got["B"].cap)
	assert.Len(t, got, 2)
}

func TestJoinByOffsetOneResultPerPrimary(t *testing.T) {
	type instructor struct {
		name   string
		module int
	}
	instructors := []instructor{{"Pam", 2}, {"Travis", 1}, {"Robbie", 2}}
	cohorts := []int{27, 21}

	got := JoinByOffset(instructors, cohorts,
		func(i instructor) int { return i.module - 1 },
		func(i instructor, students int) string { return i.name + ":" + strconv.Itoa(students) })

	assert.Equal(t, []string{"Pam:21", "Travis:27", "Robbie:21"}, got)
	assert.Len(t, got, len(instructors))
}

func TestJoinByOffsetOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() {
		JoinByOffset([]int{3}, []int{1, 2},
			func(p int) int { return p - 1 },
			func(p, s int) int { return p + s })
	})
}

func TestJoinWhere(t *testing.T) {
	type sidekick struct {
		boss    string
		loyalty int
	}
	bosses := []string{"Jafar", "Ursula", "Hades"}
	sidekicks := []sidekick{{"Ursula", 7}, {"Jafar", 3}, {"Ursula", 13}}

	got := JoinWhere(bosses, sidekicks,
		func(b string, s sidekick) bool { return s.boss == b },
		func(b string, related []sidekick) int {
			return SumBy(related, func(s sidekick) int { return s.loyalty })
		})

	assert.Equal(t, []int{3, 20, 0}, got)
}

func TestComplement(t *testing.T) {
	all := []string{"a", "b", "c", "d"}
	referenced := []string{"d", "b", "b"}

	got := Complement(all, referenced)
	assert.Equal(t, []string{"a", "c"}, got)

	union := map[string]bool{}
	for _, k := range got {
		union[k] = true
		assert.NotContains(t, referenced, k)
	}
	for _, k := range referenced {
		union[k] = true
	}
	assert.Len(t, union, len(all))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.True(t, ContainsAny([]string{"a", "b"}, []string{"x", "b"}))
	assert.False(t, ContainsAny([]string{"a", "b"}, []string{}))
}

func TestHelpersAreIdempotent(t *testing.T) {
	src := []order{{[]string{"a", "b"}}, {[]string{"b", "c"}}}
	tags := func(o order) []string { return o.tags }

	assert.Equal(t, Unique(src, tags), Unique(src, tags))
	assert.Equal(t, CountBy(src, tags), CountBy(src, tags))
	assert.Equal(t, FlatMap(src, tags), FlatMap(src, tags))
}

func letters(rooms []room) string {
	var b strings.Builder
	for _, r := range rooms {
		b.WriteString(r.letter)
	}
	return b.String()
}
