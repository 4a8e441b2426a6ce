package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

var violentGenres = []string{"Horror", "True Crime"}

// newBooksSince is the first publication year getNewBooks reports.
const newBooksSince = 1990

// RemoveViolence returns the titles of the books outside the violent genres.
func RemoveViolence(fx *types.Fixtures) []string {
	return relational.FilterMap(fx.Books,
		func(b types.Book) bool { return !relational.Contains(violentGenres, b.Genre) },
		func(b types.Book) string { return b.Title })
}

// GetNewBooks returns the title and year of books published in 1990 or later.
func GetNewBooks(fx *types.Fixtures) []types.BookYear {
	return relational.FilterMap(fx.Books,
		func(b types.Book) bool { return b.Published >= newBooksSince },
		func(b types.Book) types.BookYear { return types.BookYear{Title: b.Title, Year: b.Published} })
}
