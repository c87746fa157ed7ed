// Package quest implements quest eligibility and reward claiming.
package quest

import (
	"fmt"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// IsEligible reports whether the player's level meets the quest's requirement.
func IsEligible(quest *domain.Quest, playerLevel int) (bool, error) {
	if quest == nil {
		return false, domain.NewInvalidArgument("quest", nil, "is required")
	}
	if quest.RequiredLevel <= 0 {
		return false, domain.NewInvalidArgument("quest.requiredLevel", quest.RequiredLevel, "must be a positive level")
	}
	if playerLevel <= 0 {
		return false, domain.NewInvalidArgument("playerLevel", playerLevel, "must be a positive level")
	}
	return playerLevel >= quest.RequiredLevel, nil
}

// AvailableQuests filters quests to the subset the player is eligible for,
// preserving input order. A validation failure on any quest aborts the whole
// call.
func AvailableQuests(quests []domain.Quest, playerLevel int) ([]domain.Quest, error) {
	available := make([]domain.Quest, 0, len(quests))
	for i := range quests {
		eligible, err := IsEligible(&quests[i], playerLevel)
		if err != nil {
			return nil, fmt.Errorf("quest at index %d: %w", i, err)
		}
		if eligible {
			available = append(available, quests[i])
		}
	}
	return available, nil
}

// TotalXPReward sums the XP rewards of the given quests.
func TotalXPReward(quests []domain.Quest) (int64, error) {
	var total int64
	for i := range quests {
		if quests[i].XPReward < 0 {
			return 0, domain.NewInvalidArgument(
				fmt.Sprintf("quests[%d].xpReward", i), quests[i].XPReward, "must not be negative")
		}
		total += quests[i].XPReward
	}
	return total, nil
}
