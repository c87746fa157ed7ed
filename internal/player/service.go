// Package player manages player lifecycle and XP progression state.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
	"github.com/shopquest/ShopQuest_Go/internal/xp"
)

// Service defines the interface for player operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, username string) (*domain.Player, error)
	GetProgress(ctx context.Context, username string) (*xp.LevelProgress, error)
	GetInventory(ctx context.Context, username string) (*domain.Inventory, error)
	AwardXP(ctx context.Context, username string, amount int64, source string) (*domain.XPAwardResult, error)
}

type service struct {
	repo      repository.Player
	publisher event.Bus
	cache     *playerCache
}

// NewService creates a new player service
func NewService(repo repository.Player, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     newPlayerCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func validateUsername(username string) error {
	if username == "" {
		return domain.NewInvalidArgument("username", nil, "is required")
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return domain.NewInvalidArgument("username", username,
			fmt.Sprintf("must be %d-%d characters", MinUsernameLength, MaxUsernameLength))
	}
	return nil
}

// Register creates a new player at level 1 with zero XP.
func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if err := validateUsername(username); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerAlreadyExists, username)
	}

	now := time.Now()
	player := &domain.Player{
		ID:        uuid.New().String(),
		Username:  username,
		TotalXP:   0,
		Level:     xp.MinLevel,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info("Player registered", "username", username, "player_id", player.ID)
	return player, nil
}

// GetPlayer looks up a player by username, serving repeated lookups from the
// cache.
func (s *service) GetPlayer(ctx context.Context, username string) (*domain.Player, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(username); ok {
		return cached, nil
	}

	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
	}

	s.cache.Set(username, player)
	return player, nil
}

// GetProgress reports where the player sits within their current level.
func (s *service) GetProgress(ctx context.Context, username string) (*xp.LevelProgress, error) {
	player, err := s.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	return xp.ProgressFor(player.TotalXP)
}

// GetInventory returns the player's inventory.
func (s *service) GetInventory(ctx context.Context, username string) (*domain.Inventory, error) {
	player, err := s.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	inventory, err := s.repo.GetInventory(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inventory, nil
}

// AwardXP applies an XP delta to the player inside a transaction. Negative
// amounts are valid; the stored total never goes below zero.
func (s *service) AwardXP(ctx context.Context, username string, amount int64, source string) (*domain.XPAwardResult, error) {
	log := logger.FromContext(ctx)
	log.Info("AwardXP called", "username", username, "amount", amount, "source", source)

	if err := validateUsername(username); err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Re-read under lock; the cached value may be stale
	current, err := tx.GetPlayerForUpdate(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}

	addResult, err := xp.Add(current.TotalXP, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdatePlayerXP(ctx, current.ID, addResult.NewTotalXP, addResult.NewLevel); err != nil {
		return nil, fmt.Errorf("failed to update player XP: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Invalidate(username)

	result := &domain.XPAwardResult{
		PlayerID:      current.ID,
		XPGained:      amount,
		NewTotalXP:    addResult.NewTotalXP,
		NewLevel:      addResult.NewLevel,
		PreviousLevel: addResult.PreviousLevel,
		LeveledUp:     addResult.LeveledUp,
	}

	s.publishAwardEvents(ctx, result, source)

	if result.LeveledUp {
		log.Info("Player leveled up", "username", username,
			"previous_level", result.PreviousLevel, "new_level", result.NewLevel)
	}
	return result, nil
}

func (s *service) publishAwardEvents(ctx context.Context, result *domain.XPAwardResult, source string) {
	if s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)

	if err := s.publisher.Publish(ctx, event.NewPlayerXPAwardedEvent(result.PlayerID, result.XPGained, source)); err != nil {
		log.Warn("Failed to publish XP awarded event", "error", err)
	}

	if result.LeveledUp {
		levelUp := event.NewPlayerLeveledUpEvent(result.PlayerID, result.PreviousLevel, result.NewLevel, result.NewTotalXP)
		if err := s.publisher.Publish(ctx, levelUp); err != nil {
			log.Warn("Failed to publish level up event", "error", err)
		}
	}
}
