package handler

import (
	"fmt"
	"net/http"

	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/player"
)

// RegisterPlayerRequest represents the request to register a player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

// AwardXPRequest represents the request to grant (or deduct) XP
type AwardXPRequest struct {
	Username string `json:"username" validate:"required"`
	Amount   int64  `json:"amount"`
	Source   string `json:"source" validate:"max=64"`
}

// usernameFromQuery extracts the username query parameter, writing a 400 when
// missing.
func usernameFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := r.URL.Query().Get("username")
	if username == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "username"))
		return "", false
	}
	return username, true
}

// HandleRegisterPlayer creates a new player account
func HandleRegisterPlayer(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		created, err := playerService.Register(r.Context(), req.Username)
		if err != nil {
			log.Error("Failed to register player", "error", err, "username", req.Username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetProgress reports the player's level progress
func HandleGetProgress(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := usernameFromQuery(w, r)
		if !ok {
			return
		}

		progress, err := playerService.GetProgress(r.Context(), username)
		if err != nil {
			log.Warn("Failed to get progress", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, progress)
	}
}

// HandleGetInventory returns the player's inventory
func HandleGetInventory(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := usernameFromQuery(w, r)
		if !ok {
			return
		}

		inventory, err := playerService.GetInventory(r.Context(), username)
		if err != nil {
			log.Warn("Failed to get inventory", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, inventory)
	}
}

// HandleAwardXP grants an XP delta to a player
func HandleAwardXP(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AwardXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award XP"); err != nil {
			return
		}
		if req.Source == "" {
			req.Source = player.SourceDirect
		}

		result, err := playerService.AwardXP(r.Context(), req.Username, req.Amount, req.Source)
		if err != nil {
			log.Error("Failed to award XP", "error", err, "username", req.Username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
