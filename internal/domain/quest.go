package domain

import "time"

// ItemReward is an ingredient payout attached to a quest
type ItemReward struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Quest represents a quest definition. Quests are read-only content data.
type Quest struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	RequiredLevel     int          `json:"required_level"`
	XPReward          int64        `json:"xp_reward"`
	IngredientRewards []ItemReward `json:"ingredient_rewards,omitempty"`
	CosmeticRewards   []string     `json:"cosmetic_rewards,omitempty"`
}

// QuestClaim records that a player has claimed a quest's reward
type QuestClaim struct {
	PlayerID  string    `json:"player_id"`
	QuestID   string    `json:"quest_id"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// QuestClaimResult is the outcome of a successful claim
type QuestClaimResult struct {
	QuestID        string         `json:"quest_id"`
	XPAward        *XPAwardResult `json:"xp_award,omitempty"`
	ItemsGranted   []ItemReward   `json:"items_granted,omitempty"`
	ThemesUnlocked []string       `json:"themes_unlocked,omitempty"`
	SkinsUnlocked  []string       `json:"skins_unlocked,omitempty"`
}
