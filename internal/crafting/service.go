package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
)

// Repository defines the interface for data access required by the crafting service
type Repository interface {
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	BeginTx(ctx context.Context) (repository.Tx, error)
}

// Content defines the read-only recipe content the service consumes
type Content interface {
	Recipes() []domain.Recipe
	RecipeByID(id string) (*domain.Recipe, bool)
}

// CraftResult is the outcome of a craft attempt. When Check.CanCraft is
// false nothing was persisted and Inventory is nil.
type CraftResult struct {
	RecipeID     string            `json:"recipe_id"`
	Check        CraftCheck        `json:"check"`
	ResultItemID string            `json:"result_item_id,omitempty"`
	Inventory    *domain.Inventory `json:"inventory,omitempty"`
}

// Service defines the interface for crafting operations
type Service interface {
	GetRecipes(ctx context.Context) []domain.Recipe
	CheckCraft(ctx context.Context, username, recipeID string) (*CraftCheck, error)
	Craft(ctx context.Context, username, recipeID string) (*CraftResult, error)
}

type service struct {
	repo      Repository
	content   Content
	publisher event.Bus
}

// NewService creates a new crafting service
func NewService(repo Repository, content Content, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		content:   content,
		publisher: publisher,
	}
}

func (s *service) validatePlayer(ctx context.Context, username string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
	}
	return player, nil
}

func (s *service) lookupRecipe(recipeID string) (*domain.Recipe, error) {
	recipe, ok := s.content.RecipeByID(recipeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, recipeID)
	}
	return recipe, nil
}

// GetRecipes returns all crafting recipes
func (s *service) GetRecipes(ctx context.Context) []domain.Recipe {
	return s.content.Recipes()
}

// CheckCraft runs the feasibility check against the player's current state
// without applying anything.
func (s *service) CheckCraft(ctx context.Context, username, recipeID string) (*CraftCheck, error) {
	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	recipe, err := s.lookupRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inventory, err := tx.GetInventory(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	return CanCraftRecipe(recipe, player.Level, inventory)
}

// Craft validates the recipe against the player's state and, when feasible,
// applies it and persists the new inventory in one transaction.
func (s *service) Craft(ctx context.Context, username, recipeID string) (*CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Craft called", "username", username, "recipe_id", recipeID)

	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	recipe, err := s.lookupRecipe(recipeID)
	if err != nil {
		log.Warn("No recipe found", "recipe_id", recipeID)
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	inventory, err := tx.GetInventory(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	check, err := CanCraftRecipe(recipe, player.Level, inventory)
	if err != nil {
		return nil, err
	}
	if !check.CanCraft {
		log.Warn("Craft refused", "username", username, "recipe_id", recipeID, "reason", check.Reason)
		return &CraftResult{RecipeID: recipeID, Check: *check}, nil
	}

	newInventory, err := CraftRecipe(recipe, inventory)
	if err != nil {
		return nil, err
	}
	newInventory.LastUpdate = time.Now().Unix()

	if err := tx.UpdateInventory(ctx, player.ID, *newInventory); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewItemCraftedEvent(player.ID, recipe.ID, recipe.ResultItemID)); err != nil {
			log.Warn("Failed to publish craft event", "error", err)
		}
	}

	log.Info("Craft succeeded", "username", username, "recipe_id", recipeID, "result_item", recipe.ResultItemID)
	return &CraftResult{
		RecipeID:     recipeID,
		Check:        *check,
		ResultItemID: recipe.ResultItemID,
		Inventory:    newInventory,
	}, nil
}
