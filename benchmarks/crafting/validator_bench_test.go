package crafting_bench

import (
	"fmt"
	"testing"

	"github.com/shopquest/ShopQuest_Go/internal/crafting"
	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// benchFixture builds a recipe with many ingredients against a large inventory
// to exercise the lookup paths under load.
func benchFixture(ingredientCount, inventorySize int) (*domain.Recipe, *domain.Inventory) {
	recipe := &domain.Recipe{
		ID:            "recipe-bench",
		Name:          "Bench Recipe",
		RequiredLevel: 1,
		ResultItemID:  "bench-result",
	}
	for i := 0; i < ingredientCount; i++ {
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{
			IngredientID: fmt.Sprintf("item-%d", i),
			Quantity:     2,
		})
	}

	inventory := &domain.Inventory{}
	for i := 0; i < inventorySize; i++ {
		inventory.Slots = append(inventory.Slots, domain.InventorySlot{
			ItemID:   fmt.Sprintf("item-%d", i),
			Quantity: 10,
		})
	}

	return recipe, inventory
}

// BenchmarkCanCraftRecipe measures the full feasibility check.
func BenchmarkCanCraftRecipe(b *testing.B) {
	recipe, inventory := benchFixture(10, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		check, err := crafting.CanCraftRecipe(recipe, 50, inventory)
		if err != nil {
			b.Fatalf("CanCraftRecipe failed: %v", err)
		}
		if !check.CanCraft {
			b.Fatal("expected craftable fixture")
		}
	}
}

// BenchmarkCraftRecipe measures applying a recipe, including the inventory copy.
func BenchmarkCraftRecipe(b *testing.B) {
	recipe, inventory := benchFixture(10, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := crafting.CraftRecipe(recipe, inventory)
		if err != nil {
			b.Fatalf("CraftRecipe failed: %v", err)
		}
	}
}
