package handler

import (
	"net/http"

	"github.com/shopquest/ShopQuest_Go/internal/crafting"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
)

// CraftRequest represents a craft or craft-check request
type CraftRequest struct {
	Username string `json:"username" validate:"required"`
	RecipeID string `json:"recipe_id" validate:"required"`
}

// HandleGetRecipes lists all crafting recipes
func HandleGetRecipes(craftingService crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, craftingService.GetRecipes(r.Context()))
	}
}

// HandleCheckCraft reports craft feasibility without applying anything
func HandleCheckCraft(craftingService crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Check craft"); err != nil {
			return
		}

		check, err := craftingService.CheckCraft(r.Context(), req.Username, req.RecipeID)
		if err != nil {
			log.Warn("Failed to check craft", "error", err, "recipe_id", req.RecipeID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, check)
	}
}

// HandleCraft attempts to craft a recipe for the player. A refused craft is a
// structured 200 with can_craft=false, not an error.
func HandleCraft(craftingService crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}

		result, err := craftingService.Craft(r.Context(), req.Username, req.RecipeID)
		if err != nil {
			log.Error("Failed to craft", "error", err, "recipe_id", req.RecipeID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
