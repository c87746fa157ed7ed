package domain

// RecipeIngredient represents a single material requirement for a recipe
type RecipeIngredient struct {
	IngredientID string `json:"ingredient_id"`
	Quantity     int    `json:"quantity"`
}

// Recipe represents a crafting recipe. Recipes are read-only content data
// loaded from configuration; the service never mutates them.
type Recipe struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	RequiredLevel int                `json:"required_level"`
	Ingredients   []RecipeIngredient `json:"ingredients"`
	ResultItemID  string             `json:"result_item_id"`
}
