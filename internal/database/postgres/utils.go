package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// getInventory reads the JSONB inventory document. An absent row maps to an
// empty inventory rather than an error.
func getInventory(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.Inventory, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT inventory_data FROM player_inventories WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var data []byte
	if err := q.QueryRow(ctx, query, playerUUID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Inventory{Slots: []domain.InventorySlot{}}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	var inventory domain.Inventory
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalInventory, err)
	}
	if inventory.Slots == nil {
		inventory.Slots = []domain.InventorySlot{}
	}
	return &inventory, nil
}

func updateInventory(ctx context.Context, q querier, playerID string, inventory domain.Inventory) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}

	query := `
		INSERT INTO player_inventories (player_id, inventory_data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE
		SET inventory_data = EXCLUDED.inventory_data, updated_at = EXCLUDED.updated_at
	`
	if _, err := q.Exec(ctx, query, playerUUID, data, time.Now()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}
	return nil
}

// getCosmetics reads the JSONB cosmetics document. An absent row maps to an
// empty record.
func getCosmetics(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.PlayerCosmetics, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT cosmetics_data FROM player_cosmetics WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var data []byte
	if err := q.QueryRow(ctx, query, playerUUID).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.PlayerCosmetics{UnlockedThemes: []string{}, UnlockedSkins: []string{}}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCosmetics, err)
	}

	var cosmetics domain.PlayerCosmetics
	if err := json.Unmarshal(data, &cosmetics); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalCosmetics, err)
	}
	if cosmetics.UnlockedThemes == nil {
		cosmetics.UnlockedThemes = []string{}
	}
	if cosmetics.UnlockedSkins == nil {
		cosmetics.UnlockedSkins = []string{}
	}
	return &cosmetics, nil
}

func updateCosmetics(ctx context.Context, q querier, playerID string, cosmetics domain.PlayerCosmetics) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(cosmetics)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCosmetics, err)
	}

	query := `
		INSERT INTO player_cosmetics (player_id, cosmetics_data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE
		SET cosmetics_data = EXCLUDED.cosmetics_data, updated_at = EXCLUDED.updated_at
	`
	if _, err := q.Exec(ctx, query, playerUUID, data, time.Now()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCosmetics, err)
	}
	return nil
}

func getClaimedQuestIDs(ctx context.Context, q querier, playerID string) ([]string, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, `
		SELECT quest_id FROM player_quest_claims
		WHERE player_id = $1
		ORDER BY claimed_at
	`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuestClaims, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuestClaims, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuestClaims, err)
	}
	return ids, nil
}
