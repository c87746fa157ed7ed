package handler

import (
	"net/http"

	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/quest"
)

// ClaimQuestRequest represents a quest claim request
type ClaimQuestRequest struct {
	Username string `json:"username" validate:"required"`
	QuestID  string `json:"quest_id" validate:"required"`
}

// HandleGetAvailableQuests lists quests the player can currently claim
func HandleGetAvailableQuests(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := usernameFromQuery(w, r)
		if !ok {
			return
		}

		quests, err := questService.GetAvailableQuests(r.Context(), username)
		if err != nil {
			log.Warn("Failed to get available quests", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, quests)
	}
}

// HandleClaimQuest claims a quest's rewards for the player
func HandleClaimQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim quest"); err != nil {
			return
		}

		result, err := questService.Claim(r.Context(), req.Username, req.QuestID)
		if err != nil {
			log.Warn("Failed to claim quest", "error", err, "quest_id", req.QuestID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
