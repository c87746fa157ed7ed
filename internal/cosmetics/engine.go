// Package cosmetics decides which themes and table skins a player may use.
//
// Gate evaluation order is part of the contract: ownership short-circuits
// everything (an already-unlocked cosmetic stays usable even if the player's
// level later falls below the requirement), then level, then quest gate,
// then the explicit not-purchased flag.
package cosmetics

import (
	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

func validateGateInputs(field string, requiredLevel, playerLevel int, playerCosmetics *domain.PlayerCosmetics) error {
	if playerCosmetics == nil {
		return domain.NewInvalidArgument("playerCosmetics", nil, "is required")
	}
	if playerLevel <= 0 {
		return domain.NewInvalidArgument("playerLevel", playerLevel, "must be a positive level")
	}
	if requiredLevel <= 0 {
		return domain.NewInvalidArgument(field, requiredLevel, "must be a positive level")
	}
	return nil
}

func questCompleted(completedQuestIDs []string, questID string) bool {
	for _, id := range completedQuestIDs {
		if id == questID {
			return true
		}
	}
	return false
}

// CanUseTheme reports whether the player may use the theme.
func CanUseTheme(theme *domain.Theme, playerLevel int, playerCosmetics *domain.PlayerCosmetics, completedQuestIDs []string) (bool, error) {
	if theme == nil {
		return false, domain.NewInvalidArgument("theme", nil, "is required")
	}
	if err := validateGateInputs("theme.requiredLevel", theme.RequiredLevel, playerLevel, playerCosmetics); err != nil {
		return false, err
	}

	if playerCosmetics.HasTheme(theme.ID) {
		return true, nil
	}
	if playerLevel < theme.RequiredLevel {
		return false, nil
	}
	if theme.RequiredQuestID != nil && !questCompleted(completedQuestIDs, *theme.RequiredQuestID) {
		return false, nil
	}
	if theme.IsPurchased != nil && !*theme.IsPurchased {
		return false, nil
	}
	return true, nil
}

// CanUseSkin reports whether the player may use the table skin.
func CanUseSkin(skin *domain.TableSkin, playerLevel int, playerCosmetics *domain.PlayerCosmetics, completedQuestIDs []string) (bool, error) {
	if skin == nil {
		return false, domain.NewInvalidArgument("skin", nil, "is required")
	}
	if err := validateGateInputs("skin.requiredLevel", skin.RequiredLevel, playerLevel, playerCosmetics); err != nil {
		return false, err
	}

	if playerCosmetics.HasSkin(skin.ID) {
		return true, nil
	}
	if playerLevel < skin.RequiredLevel {
		return false, nil
	}
	if skin.RequiredQuestID != nil && !questCompleted(completedQuestIDs, *skin.RequiredQuestID) {
		return false, nil
	}
	if skin.IsPurchased != nil && !*skin.IsPurchased {
		return false, nil
	}
	return true, nil
}

// UnlockableThemes filters themes to those the player may use, preserving
// input order. An empty list is valid and yields an empty result.
func UnlockableThemes(themes []domain.Theme, playerLevel int, playerCosmetics *domain.PlayerCosmetics, completedQuestIDs []string) ([]domain.Theme, error) {
	usable := make([]domain.Theme, 0, len(themes))
	for i := range themes {
		ok, err := CanUseTheme(&themes[i], playerLevel, playerCosmetics, completedQuestIDs)
		if err != nil {
			return nil, err
		}
		if ok {
			usable = append(usable, themes[i])
		}
	}
	return usable, nil
}

// UnlockableSkins filters table skins to those the player may use, preserving
// input order.
func UnlockableSkins(skins []domain.TableSkin, playerLevel int, playerCosmetics *domain.PlayerCosmetics, completedQuestIDs []string) ([]domain.TableSkin, error) {
	usable := make([]domain.TableSkin, 0, len(skins))
	for i := range skins {
		ok, err := CanUseSkin(&skins[i], playerLevel, playerCosmetics, completedQuestIDs)
		if err != nil {
			return nil, err
		}
		if ok {
			usable = append(usable, skins[i])
		}
	}
	return usable, nil
}
