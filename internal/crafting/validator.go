// Package crafting validates and applies crafting recipes.
//
// The validator functions are pure: they never touch storage and return
// freshly constructed values. The Service wraps them in a database
// transaction.
package crafting

import (
	"fmt"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// CraftCheck is the outcome of a feasibility check
type CraftCheck struct {
	CanCraft bool   `json:"can_craft"`
	Reason   string `json:"reason,omitempty"`
}

func validateRecipe(recipe *domain.Recipe) error {
	if recipe == nil {
		return domain.NewInvalidArgument("recipe", nil, "is required")
	}
	for i, ing := range recipe.Ingredients {
		if ing.IngredientID == "" {
			return domain.NewInvalidArgument(fmt.Sprintf("recipe.ingredients[%d].ingredientId", i), nil, "is required")
		}
		if ing.Quantity < 0 {
			return domain.NewInvalidArgument(fmt.Sprintf("recipe.ingredients[%d].quantity", i), ing.Quantity, "must not be negative")
		}
	}
	return nil
}

func validateInventory(inventory *domain.Inventory) error {
	if inventory == nil {
		return domain.NewInvalidArgument("inventory", nil, "is required")
	}
	for i, slot := range inventory.Slots {
		if slot.ItemID == "" {
			return domain.NewInvalidArgument(fmt.Sprintf("inventory.slots[%d].itemId", i), nil, "is required")
		}
		if slot.Quantity < 0 {
			return domain.NewInvalidArgument(fmt.Sprintf("inventory.slots[%d].quantity", i), slot.Quantity, "must not be negative")
		}
	}
	return nil
}

// HasRequiredIngredients reports whether the inventory covers every recipe
// ingredient. Items the recipe does not ask for are ignored; items the
// inventory lacks count as quantity 0.
func HasRequiredIngredients(recipe *domain.Recipe, inventory *domain.Inventory) (bool, error) {
	if err := validateRecipe(recipe); err != nil {
		return false, err
	}
	if err := validateInventory(inventory); err != nil {
		return false, err
	}

	for _, ing := range recipe.Ingredients {
		if inventory.Quantity(ing.IngredientID) < ing.Quantity {
			return false, nil
		}
	}
	return true, nil
}

// MeetsLevelRequirement reports whether the player's level satisfies the
// recipe's required level.
func MeetsLevelRequirement(recipe *domain.Recipe, playerLevel int) (bool, error) {
	if recipe == nil {
		return false, domain.NewInvalidArgument("recipe", nil, "is required")
	}
	if recipe.RequiredLevel <= 0 {
		return false, domain.NewInvalidArgument("recipe.requiredLevel", recipe.RequiredLevel, "must be a positive level")
	}
	if playerLevel <= 0 {
		return false, domain.NewInvalidArgument("playerLevel", playerLevel, "must be a positive level")
	}
	return playerLevel >= recipe.RequiredLevel, nil
}

// CanCraftRecipe runs the full feasibility check: level gate first, then
// ingredients. The Reason string is only set when crafting is refused.
func CanCraftRecipe(recipe *domain.Recipe, playerLevel int, inventory *domain.Inventory) (*CraftCheck, error) {
	meetsLevel, err := MeetsLevelRequirement(recipe, playerLevel)
	if err != nil {
		return nil, err
	}
	if !meetsLevel {
		return &CraftCheck{
			CanCraft: false,
			Reason:   fmt.Sprintf(ReasonLevelRequiredFmt, recipe.RequiredLevel),
		}, nil
	}

	hasIngredients, err := HasRequiredIngredients(recipe, inventory)
	if err != nil {
		return nil, err
	}
	if !hasIngredients {
		return &CraftCheck{CanCraft: false, Reason: ReasonMissingIngredients}, nil
	}

	return &CraftCheck{CanCraft: true}, nil
}

// CraftRecipe applies a recipe to an inventory and returns the new inventory:
// each ingredient's quantity is deducted, slots that reach zero or below are
// dropped, and the result item is incremented (or inserted with quantity 1).
//
// CraftRecipe does NOT re-run CanCraftRecipe - callers validate first.
// Applying against an insufficient inventory drives slots negative in the
// intermediate state and the drop-at-or-below-zero rule then removes them,
// so the apply "succeeds" silently. Flagged to product before hardening.
func CraftRecipe(recipe *domain.Recipe, inventory *domain.Inventory) (*domain.Inventory, error) {
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	if err := validateInventory(inventory); err != nil {
		return nil, err
	}
	if recipe.ResultItemID == "" {
		return nil, domain.NewInvalidArgument("recipe.resultItemId", nil, "is required")
	}

	slots := make([]domain.InventorySlot, len(inventory.Slots))
	copy(slots, inventory.Slots)

	index := make(map[string]int, len(slots))
	for i, slot := range slots {
		index[slot.ItemID] = i
	}

	for _, ing := range recipe.Ingredients {
		if i, ok := index[ing.IngredientID]; ok {
			slots[i].Quantity -= ing.Quantity
		}
	}

	if i, ok := index[recipe.ResultItemID]; ok {
		slots[i].Quantity++
	} else {
		slots = append(slots, domain.InventorySlot{ItemID: recipe.ResultItemID, Quantity: 1})
	}

	result := &domain.Inventory{
		Slots:      make([]domain.InventorySlot, 0, len(slots)),
		LastUpdate: inventory.LastUpdate,
	}
	for _, slot := range slots {
		if slot.Quantity > 0 {
			result.Slots = append(result.Slots, slot)
		}
	}
	return result, nil
}
