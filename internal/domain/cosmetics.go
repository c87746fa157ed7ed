package domain

// Theme represents a storefront theme a player can unlock.
// RequiredQuestID is nil when the theme has no quest gate.
// IsPurchased is tri-state: nil means "not gated on purchase", an explicit
// false means the theme is purchasable but not yet bought.
type Theme struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	RequiredLevel   int     `json:"required_level"`
	RequiredQuestID *string `json:"required_quest_id,omitempty"`
	IsPurchased     *bool   `json:"is_purchased,omitempty"`
}

// TableSkin represents a product-table skin belonging to a theme
type TableSkin struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ThemeID         string  `json:"theme_id"`
	RequiredLevel   int     `json:"required_level"`
	RequiredQuestID *string `json:"required_quest_id,omitempty"`
	IsPurchased     *bool   `json:"is_purchased,omitempty"`
}

// PlayerCosmetics tracks what a player has unlocked and equipped.
// The gamification core only reads it; mutation happens in the service layer.
type PlayerCosmetics struct {
	UnlockedThemes    []string `json:"unlocked_themes"`
	UnlockedSkins     []string `json:"unlocked_skins"`
	ActiveThemeID     *string  `json:"active_theme_id,omitempty"`
	ActiveTableSkinID *string  `json:"active_table_skin_id,omitempty"`
}

// HasTheme reports whether the theme is already unlocked.
func (pc *PlayerCosmetics) HasTheme(themeID string) bool {
	for _, id := range pc.UnlockedThemes {
		if id == themeID {
			return true
		}
	}
	return false
}

// HasSkin reports whether the table skin is already unlocked.
func (pc *PlayerCosmetics) HasSkin(skinID string) bool {
	for _, id := range pc.UnlockedSkins {
		if id == skinID {
			return true
		}
	}
	return false
}
