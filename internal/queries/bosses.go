package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// BossLoyalty sums the loyalty of each boss's sidekicks. A sidekick belongs
// to the boss whose Name equals its Boss field.
func BossLoyalty(fx *types.Fixtures) []types.BossLoyalty {
	return relational.JoinWhere(fx.Bosses, fx.Sidekicks,
		func(b types.Boss, s types.Sidekick) bool { return s.Boss == b.Name },
		func(b types.Boss, sidekicks []types.Sidekick) types.BossLoyalty {
			return types.BossLoyalty{
				BossName:        b.Name,
				SidekickLoyalty: relational.SumBy(sidekicks, func(s types.Sidekick) int { return s.LoyaltyToBoss }),
			}
		})
}
