package crafting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

func potionRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:            "recipe-potion",
		Name:          "Healing Potion",
		RequiredLevel: 3,
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: "herb", Quantity: 2},
			{IngredientID: "water", Quantity: 1},
		},
		ResultItemID: "potion",
	}
}

func stockedInventory() *domain.Inventory {
	return &domain.Inventory{
		Slots: []domain.InventorySlot{
			{ItemID: "herb", Quantity: 5},
			{ItemID: "water", Quantity: 3},
		},
		LastUpdate: 1700000000,
	}
}

func TestHasRequiredIngredients(t *testing.T) {
	tests := []struct {
		name      string
		recipe    *domain.Recipe
		inventory *domain.Inventory
		want      bool
	}{
		{
			name:      "sufficient inventory",
			recipe:    potionRecipe(),
			inventory: stockedInventory(),
			want:      true,
		},
		{
			name:   "exact quantities",
			recipe: potionRecipe(),
			inventory: &domain.Inventory{Slots: []domain.InventorySlot{
				{ItemID: "herb", Quantity: 2},
				{ItemID: "water", Quantity: 1},
			}},
			want: true,
		},
		{
			name:   "one ingredient short",
			recipe: potionRecipe(),
			inventory: &domain.Inventory{Slots: []domain.InventorySlot{
				{ItemID: "herb", Quantity: 1},
				{ItemID: "water", Quantity: 3},
			}},
			want: false,
		},
		{
			name:      "ingredient entirely missing",
			recipe:    potionRecipe(),
			inventory: &domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "herb", Quantity: 5}}},
			want:      false,
		},
		{
			name: "zero quantity ingredient is always satisfied",
			recipe: &domain.Recipe{
				ID:            "free",
				RequiredLevel: 1,
				Ingredients:   []domain.RecipeIngredient{{IngredientID: "token", Quantity: 0}},
				ResultItemID:  "badge",
			},
			inventory: &domain.Inventory{},
			want:      true,
		},
		{
			name:      "recipe with no ingredients",
			recipe:    &domain.Recipe{ID: "simple", RequiredLevel: 1, ResultItemID: "stick"},
			inventory: &domain.Inventory{},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasRequiredIngredients(tt.recipe, tt.inventory)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasRequiredIngredients_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		recipe    *domain.Recipe
		inventory *domain.Inventory
		field     string
	}{
		{
			name:      "nil recipe",
			recipe:    nil,
			inventory: stockedInventory(),
			field:     "recipe",
		},
		{
			name:      "nil inventory",
			recipe:    potionRecipe(),
			inventory: nil,
			field:     "inventory",
		},
		{
			name: "negative ingredient quantity",
			recipe: &domain.Recipe{
				ID:            "bad",
				RequiredLevel: 1,
				Ingredients:   []domain.RecipeIngredient{{IngredientID: "herb", Quantity: -1}},
				ResultItemID:  "x",
			},
			inventory: stockedInventory(),
			field:     "recipe.ingredients[0].quantity",
		},
		{
			name:   "negative inventory quantity",
			recipe: potionRecipe(),
			inventory: &domain.Inventory{Slots: []domain.InventorySlot{
				{ItemID: "herb", Quantity: -2},
			}},
			field: "inventory.slots[0].quantity",
		},
		{
			name: "empty ingredient id",
			recipe: &domain.Recipe{
				ID:            "bad",
				RequiredLevel: 1,
				Ingredients:   []domain.RecipeIngredient{{IngredientID: "", Quantity: 1}},
				ResultItemID:  "x",
			},
			inventory: stockedInventory(),
			field:     "recipe.ingredients[0].ingredientId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HasRequiredIngredients(tt.recipe, tt.inventory)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

			var invalid *domain.InvalidArgumentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestMeetsLevelRequirement(t *testing.T) {
	tests := []struct {
		name        string
		playerLevel int
		want        bool
	}{
		{name: "below requirement", playerLevel: 2, want: false},
		{name: "at requirement", playerLevel: 3, want: true},
		{name: "above requirement", playerLevel: 10, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MeetsLevelRequirement(potionRecipe(), tt.playerLevel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("zero player level", func(t *testing.T) {
		_, err := MeetsLevelRequirement(potionRecipe(), 0)
		require.Error(t, err)
		var invalid *domain.InvalidArgumentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "playerLevel", invalid.Field)
		assert.Equal(t, 0, invalid.Value)
	})

	t.Run("nil recipe", func(t *testing.T) {
		_, err := MeetsLevelRequirement(nil, 5)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}

func TestCanCraftRecipe(t *testing.T) {
	t.Run("level gate wins over ingredients", func(t *testing.T) {
		// Inventory satisfies the recipe but the player is underleveled:
		// the reason must name the level, not the ingredients.
		check, err := CanCraftRecipe(potionRecipe(), 2, stockedInventory())
		require.NoError(t, err)
		assert.False(t, check.CanCraft)
		assert.Equal(t, "Level 3 required", check.Reason)
	})

	t.Run("missing ingredients", func(t *testing.T) {
		inventory := &domain.Inventory{Slots: []domain.InventorySlot{{ItemID: "herb", Quantity: 1}}}
		check, err := CanCraftRecipe(potionRecipe(), 3, inventory)
		require.NoError(t, err)
		assert.False(t, check.CanCraft)
		assert.Equal(t, "Missing required ingredients", check.Reason)
	})

	t.Run("craftable", func(t *testing.T) {
		check, err := CanCraftRecipe(potionRecipe(), 3, stockedInventory())
		require.NoError(t, err)
		assert.True(t, check.CanCraft)
		assert.Empty(t, check.Reason)
	})

	t.Run("invalid recipe level", func(t *testing.T) {
		recipe := potionRecipe()
		recipe.RequiredLevel = 0
		_, err := CanCraftRecipe(recipe, 3, stockedInventory())
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}

func TestCraftRecipe(t *testing.T) {
	t.Run("deducts ingredients and adds result", func(t *testing.T) {
		inventory := stockedInventory()
		got, err := CraftRecipe(potionRecipe(), inventory)
		require.NoError(t, err)

		assert.Equal(t, 3, got.Quantity("herb"))
		assert.Equal(t, 2, got.Quantity("water"))
		assert.Equal(t, 1, got.Quantity("potion"))

		// input untouched
		assert.Equal(t, 5, inventory.Quantity("herb"))
		assert.Equal(t, 0, inventory.Quantity("potion"))
	})

	t.Run("increments existing result slot", func(t *testing.T) {
		inventory := stockedInventory()
		inventory.Slots = append(inventory.Slots, domain.InventorySlot{ItemID: "potion", Quantity: 4})

		got, err := CraftRecipe(potionRecipe(), inventory)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity("potion"))
	})

	t.Run("drops depleted slots", func(t *testing.T) {
		inventory := &domain.Inventory{Slots: []domain.InventorySlot{
			{ItemID: "herb", Quantity: 2},
			{ItemID: "water", Quantity: 1},
		}}
		got, err := CraftRecipe(potionRecipe(), inventory)
		require.NoError(t, err)

		assert.Len(t, got.Slots, 1)
		assert.Equal(t, "potion", got.Slots[0].ItemID)
	})

	t.Run("preserves last update", func(t *testing.T) {
		inventory := stockedInventory()
		got, err := CraftRecipe(potionRecipe(), inventory)
		require.NoError(t, err)
		assert.Equal(t, inventory.LastUpdate, got.LastUpdate)
	})

	t.Run("missing result item id", func(t *testing.T) {
		recipe := potionRecipe()
		recipe.ResultItemID = ""
		_, err := CraftRecipe(recipe, stockedInventory())
		require.Error(t, err)

		var invalid *domain.InvalidArgumentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "recipe.resultItemId", invalid.Field)
	})

	t.Run("unchecked apply on short inventory drops the slot", func(t *testing.T) {
		inventory := &domain.Inventory{Slots: []domain.InventorySlot{
			{ItemID: "herb", Quantity: 1},
			{ItemID: "water", Quantity: 1},
		}}
		got, err := CraftRecipe(potionRecipe(), inventory)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Quantity("herb"))
		assert.Equal(t, 1, got.Quantity("potion"))
	})
}

// Crafting moves exactly the recipe's quantities: total item count changes by
// one (the result) minus the sum of consumed ingredients, for any inventory
// that genuinely covers the recipe.
func TestCraftRecipe_Conservation(t *testing.T) {
	recipe := potionRecipe()
	consumed := 0
	for _, ing := range recipe.Ingredients {
		consumed += ing.Quantity
	}

	for extraHerb := 2; extraHerb <= 6; extraHerb++ {
		inventory := &domain.Inventory{Slots: []domain.InventorySlot{
			{ItemID: "herb", Quantity: extraHerb},
			{ItemID: "water", Quantity: 2},
			{ItemID: "gem", Quantity: 7},
		}}

		before := totalItems(inventory)
		got, err := CraftRecipe(recipe, inventory)
		require.NoError(t, err, fmt.Sprintf("herb=%d", extraHerb))
		assert.Equal(t, before-consumed+1, totalItems(got))
		assert.Equal(t, 7, got.Quantity("gem"), "untouched items survive")
	}
}

func totalItems(inventory *domain.Inventory) int {
	total := 0
	for _, slot := range inventory.Slots {
		total += slot.Quantity
	}
	return total
}
