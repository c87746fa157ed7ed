package repository

import (
	"context"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// Player defines the data access surface for player state
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayerByID(ctx context.Context, id string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
	GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error)
	GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error)
	BeginTx(ctx context.Context) (Tx, error)
}
