package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
	"github.com/shopquest/ShopQuest_Go/internal/xp"
)

// Repository defines the interface for data access required by the quest service
type Repository interface {
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error)
	BeginTx(ctx context.Context) (repository.Tx, error)
}

// Content defines the read-only content the service consumes
type Content interface {
	Quests() []domain.Quest
	QuestByID(id string) (*domain.Quest, bool)
	ThemeByID(id string) (*domain.Theme, bool)
	TableSkinByID(id string) (*domain.TableSkin, bool)
}

// Service defines the interface for quest operations
type Service interface {
	GetAvailableQuests(ctx context.Context, username string) ([]domain.Quest, error)
	Claim(ctx context.Context, username, questID string) (*domain.QuestClaimResult, error)
}

type service struct {
	repo      Repository
	content   Content
	publisher event.Bus
}

// NewService creates a new quest service
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

// GetAvailableQuests returns quests the player's level allows, excluding any
// already claimed, in content order.
func (s *service) GetAvailableQuests(ctx context.Context, username string) ([]domain.Quest, error) {
	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	eligible, err := AvailableQuests(s.content.Quests(), player.Level)
	if err != nil {
		return nil, err
	}

	claimedIDs, err := s.repo.GetClaimedQuestIDs(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claimed quests: %w", err)
	}
	claimed := make(map[string]bool, len(claimedIDs))
	for _, id := range claimedIDs {
		claimed[id] = true
	}

	available := make([]domain.Quest, 0, len(eligible))
	for _, q := range eligible {
		if !claimed[q.ID] {
			available = append(available, q)
		}
	}
	return available, nil
}

// Claim grants a quest's rewards to the player: XP, ingredient items, and
// cosmetic unlocks, all inside one transaction. A quest can be claimed once.
func (s *service) Claim(ctx context.Context, username, questID string) (*domain.QuestClaimResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Claim called", "username", username, "quest_id", questID)

	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	quest, ok := s.content.QuestByID(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestNotFound, questID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Re-read the player under lock; level and XP may have moved
	current, err := tx.GetPlayerForUpdate(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}

	claimedIDs, err := tx.GetClaimedQuestIDs(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claimed quests: %w", err)
	}
	for _, id := range claimedIDs {
		if id == questID {
			return nil, fmt.Errorf("%w: %s", domain.ErrQuestAlreadyClaimed, questID)
		}
	}

	eligible, err := IsEligible(quest, current.Level)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, fmt.Errorf("%w: level %d required", domain.ErrQuestNotEligible, quest.RequiredLevel)
	}

	result := &domain.QuestClaimResult{QuestID: questID}

	if quest.XPReward > 0 {
		addResult, err := xp.Add(current.TotalXP, quest.XPReward)
		if err != nil {
			return nil, fmt.Errorf("failed to apply XP reward: %w", err)
		}
		if err := tx.UpdatePlayerXP(ctx, current.ID, addResult.NewTotalXP, addResult.NewLevel); err != nil {
			return nil, fmt.Errorf("failed to update player XP: %w", err)
		}
		result.XPAward = &domain.XPAwardResult{
			PlayerID:      current.ID,
			XPGained:      quest.XPReward,
			NewTotalXP:    addResult.NewTotalXP,
			NewLevel:      addResult.NewLevel,
			PreviousLevel: addResult.PreviousLevel,
			LeveledUp:     addResult.LeveledUp,
		}
	}

	if len(quest.IngredientRewards) > 0 {
		inventory, err := tx.GetInventory(ctx, current.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get inventory: %w", err)
		}
		granted := grantItems(inventory, quest.IngredientRewards)
		granted.LastUpdate = time.Now().Unix()
		if err := tx.UpdateInventory(ctx, current.ID, *granted); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
		result.ItemsGranted = quest.IngredientRewards
	}

	if len(quest.CosmeticRewards) > 0 {
		themes, skins, err := s.unlockCosmetics(ctx, tx, current.ID, quest.CosmeticRewards)
		if err != nil {
			return nil, err
		}
		result.ThemesUnlocked = themes
		result.SkinsUnlocked = skins
	}

	if err := tx.MarkQuestClaimed(ctx, current.ID, questID); err != nil {
		return nil, fmt.Errorf("failed to mark quest claimed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishClaimEvents(ctx, current.ID, quest, result)

	log.Info("Quest claimed", "username", username, "quest_id", questID, "xp_reward", quest.XPReward)
	return result, nil
}

// grantItems returns a new inventory with the rewards merged in.
func grantItems(inventory *domain.Inventory, rewards []domain.ItemReward) *domain.Inventory {
	result := &domain.Inventory{
		Slots:      make([]domain.InventorySlot, len(inventory.Slots)),
		LastUpdate: inventory.LastUpdate,
	}
	copy(result.Slots, inventory.Slots)

	for _, reward := range rewards {
		found := false
		for i := range result.Slots {
			if result.Slots[i].ItemID == reward.ItemID {
				result.Slots[i].Quantity += reward.Quantity
				found = true
				break
			}
		}
		if !found {
			result.Slots = append(result.Slots, domain.InventorySlot{
				ItemID:   reward.ItemID,
				Quantity: reward.Quantity,
			})
		}
	}
	return result
}

// unlockCosmetics sorts cosmetic reward IDs into theme and skin unlocks and
// persists the updated cosmetics record. Unknown IDs are logged and skipped.
func (s *service) unlockCosmetics(ctx context.Context, tx repository.Tx, playerID string, rewardIDs []string) (themes, skins []string, err error) {
	log := logger.FromContext(ctx)

	cosmetics, err := tx.GetCosmetics(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cosmetics: %w", err)
	}

	for _, id := range rewardIDs {
		switch {
		case themeExists(s.content, id):
			if !cosmetics.HasTheme(id) {
				cosmetics.UnlockedThemes = append(cosmetics.UnlockedThemes, id)
				themes = append(themes, id)
			}
		case skinExists(s.content, id):
			if !cosmetics.HasSkin(id) {
				cosmetics.UnlockedSkins = append(cosmetics.UnlockedSkins, id)
				skins = append(skins, id)
			}
		default:
			log.Warn("Quest rewards unknown cosmetic, skipping", "cosmetic_id", id)
		}
	}

	if len(themes) > 0 || len(skins) > 0 {
		if err := tx.UpdateCosmetics(ctx, playerID, *cosmetics); err != nil {
			return nil, nil, fmt.Errorf("failed to update cosmetics: %w", err)
		}
	}
	return themes, skins, nil
}

func themeExists(content Content, id string) bool {
	_, ok := content.ThemeByID(id)
	return ok
}

func skinExists(content Content, id string) bool {
	_, ok := content.TableSkinByID(id)
	return ok
}

func (s *service) publishClaimEvents(ctx context.Context, playerID string, quest *domain.Quest, result *domain.QuestClaimResult) {
	if s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)

	if err := s.publisher.Publish(ctx, event.NewQuestClaimedEvent(playerID, quest.ID, quest.XPReward)); err != nil {
		log.Warn("Failed to publish quest claimed event", "error", err)
	}

	if result.XPAward != nil && result.XPAward.LeveledUp {
		levelUp := event.NewPlayerLeveledUpEvent(playerID, result.XPAward.PreviousLevel, result.XPAward.NewLevel, result.XPAward.NewTotalXP)
		if err := s.publisher.Publish(ctx, levelUp); err != nil {
			log.Warn("Failed to publish level up event", "error", err)
		}
	}
}
