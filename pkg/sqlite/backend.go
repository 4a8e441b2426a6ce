// Package sqlite exposes the in-memory SQLite mirror of the fixtures to
// callers outside this module.
package sqlite

import (
	"github.com/mesh-intelligence/prototypes/internal/sqlite"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Mirror is an in-memory SQLite copy of one fixture context.
type Mirror = sqlite.Mirror

// Report summarizes a verification pass of the SQL queries against the Go
// queries.
type Report = sqlite.Report

// Mismatch is one query whose SQL and Go results differ.
type Mismatch = sqlite.Mismatch

// Open builds a mirror of fx. The caller must Close it.
//
// Example:
//
//	fx := &types.Fixtures{
//		Bosses:    []types.Boss{{Key: "jafar", Name: "Jafar"}},
//		Sidekicks: []types.Sidekick{{Name: "Iago", Boss: "Jafar", LoyaltyToBoss: 7}},
//	}
//	m, err := sqlite.Open(fx)
//	if err != nil { ... }
//	defer m.Close()
//	report, err := m.Verify(ctx, fx)
func Open(fx *types.Fixtures) (*Mirror, error) {
	return sqlite.Open(fx)
}
