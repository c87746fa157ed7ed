package repository

import (
	"context"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// Tx defines the interface for transactional operations against player state.
// Claim and craft flows read, transform and write inside one transaction so
// the caller-visible "validate then apply" contract is atomic.
type Tx interface {
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayerXP(ctx context.Context, playerID string, totalXP int64, level int) error
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, playerID string, inventory domain.Inventory) error
	GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error)
	UpdateCosmetics(ctx context.Context, playerID string, cosmetics domain.PlayerCosmetics) error
	GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error)
	MarkQuestClaimed(ctx context.Context, playerID, questID string) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
