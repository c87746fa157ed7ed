package domain

import "time"

// Player represents a shopper enrolled in the gamification program
type Player struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	TotalXP   int64     `json:"total_xp"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// XPAwardResult contains the outcome of awarding XP to a player
type XPAwardResult struct {
	PlayerID      string `json:"player_id"`
	XPGained      int64  `json:"xp_gained"`
	NewTotalXP    int64  `json:"new_total_xp"`
	NewLevel      int    `json:"new_level"`
	PreviousLevel int    `json:"previous_level"`
	LeveledUp     bool   `json:"leveled_up"`
}
