package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// playerTx implements repository.Tx over a pgx transaction
type playerTx struct {
	tx pgx.Tx
}

// GetPlayerForUpdate reads the player row with a row lock, so concurrent
// claim and award flows serialize per player.
func (t *playerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return scanPlayer(t.tx.QueryRow(ctx, `
		SELECT player_id, username, total_xp, level, created_at, updated_at
		FROM players WHERE player_id = $1
		FOR UPDATE
	`, playerUUID))
}

func (t *playerTx) UpdatePlayerXP(ctx context.Context, playerID string, totalXP int64, level int) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, `
		UPDATE players SET total_xp = $1, level = $2, updated_at = $3
		WHERE player_id = $4
	`, totalXP, level, time.Now(), playerUUID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayerXP, err)
	}
	return nil
}

func (t *playerTx) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return getInventory(ctx, t.tx, playerID, true)
}

func (t *playerTx) UpdateInventory(ctx context.Context, playerID string, inventory domain.Inventory) error {
	return updateInventory(ctx, t.tx, playerID, inventory)
}

func (t *playerTx) GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error) {
	return getCosmetics(ctx, t.tx, playerID, true)
}

func (t *playerTx) UpdateCosmetics(ctx context.Context, playerID string, cosmetics domain.PlayerCosmetics) error {
	return updateCosmetics(ctx, t.tx, playerID, cosmetics)
}

func (t *playerTx) GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error) {
	return getClaimedQuestIDs(ctx, t.tx, playerID)
}

func (t *playerTx) MarkQuestClaimed(ctx context.Context, playerID, questID string) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, `
		INSERT INTO player_quest_claims (player_id, quest_id)
		VALUES ($1, $2)
	`, playerUUID, questID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkQuestClaimed, err)
	}
	return nil
}

func (t *playerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *playerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
