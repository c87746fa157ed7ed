package handler

import (
	"net/http"

	"github.com/shopquest/ShopQuest_Go/internal/cosmetics"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
)

// ActivateThemeRequest represents a theme activation request
type ActivateThemeRequest struct {
	Username string `json:"username" validate:"required"`
	ThemeID  string `json:"theme_id" validate:"required"`
}

// ActivateSkinRequest represents a table skin activation request
type ActivateSkinRequest struct {
	Username string `json:"username" validate:"required"`
	SkinID   string `json:"skin_id" validate:"required"`
}

// HandleGetUsableThemes lists themes the player can currently use
func HandleGetUsableThemes(cosmeticsService cosmetics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := usernameFromQuery(w, r)
		if !ok {
			return
		}

		themes, err := cosmeticsService.GetUsableThemes(r.Context(), username)
		if err != nil {
			log.Warn("Failed to get usable themes", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, themes)
	}
}

// HandleGetUsableSkins lists table skins the player can currently use
func HandleGetUsableSkins(cosmeticsService cosmetics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := usernameFromQuery(w, r)
		if !ok {
			return
		}

		skins, err := cosmeticsService.GetUsableSkins(r.Context(), username)
		if err != nil {
			log.Warn("Failed to get usable skins", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, skins)
	}
}

// HandleActivateTheme makes a theme the player's active theme
func HandleActivateTheme(cosmeticsService cosmetics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ActivateThemeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Activate theme"); err != nil {
			return
		}

		if err := cosmeticsService.ActivateTheme(r.Context(), req.Username, req.ThemeID); err != nil {
			log.Warn("Failed to activate theme", "error", err, "theme_id", req.ThemeID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Theme activated"})
	}
}

// HandleActivateSkin makes a table skin the player's active skin
func HandleActivateSkin(cosmeticsService cosmetics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ActivateSkinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Activate skin"); err != nil {
			return
		}

		if err := cosmeticsService.ActivateSkin(r.Context(), req.Username, req.SkinID); err != nil {
			log.Warn("Failed to activate skin", "error", err, "skin_id", req.SkinID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Table skin activated"})
	}
}
