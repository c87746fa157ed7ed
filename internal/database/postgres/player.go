// Package postgres implements the repository interfaces against PostgreSQL.
//
// Player rows hold the progression state; inventories and cosmetics are
// stored as JSONB documents keyed by player, matching the shape the domain
// types marshal to.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgInvalidPlayerID, err)
	}
	return u, nil
}

// CreatePlayer inserts a new player row alongside empty inventory and
// cosmetics documents.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	playerUUID, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO players (player_id, username, total_xp, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, query, playerUUID, player.Username, player.TotalXP, player.Level, player.CreatedAt, player.UpdatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO player_inventories (player_id, inventory_data) VALUES ($1, $2)`,
		playerUUID, []byte(EmptyInventoryJSON)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateInventory, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO player_cosmetics (player_id, cosmetics_data) VALUES ($1, $2)`,
		playerUUID, []byte(`{"unlocked_themes": [], "unlocked_skins": []}`)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCosmetics, err)
	}

	return tx.Commit(ctx)
}

// GetPlayerByID returns the player with the given id, or nil when absent.
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, id string) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(id)
	if err != nil {
		return nil, err
	}
	return scanPlayer(r.db.QueryRow(ctx, `
		SELECT player_id, username, total_xp, level, created_at, updated_at
		FROM players WHERE player_id = $1
	`, playerUUID))
}

// GetPlayerByUsername returns the player with the given username, or nil when
// absent.
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return scanPlayer(r.db.QueryRow(ctx, `
		SELECT player_id, username, total_xp, level, created_at, updated_at
		FROM players WHERE username = $1
	`, username))
}

// GetInventory returns the player's inventory; an absent row is an empty
// inventory.
func (r *PlayerRepository) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return getInventory(ctx, r.db, playerID, false)
}

// GetCosmetics returns the player's cosmetics state; an absent row is an
// empty record.
func (r *PlayerRepository) GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error) {
	return getCosmetics(ctx, r.db, playerID, false)
}

// GetClaimedQuestIDs returns the ids of quests the player has claimed.
func (r *PlayerRepository) GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error) {
	return getClaimedQuestIDs(ctx, r.db, playerID)
}

// BeginTx starts a repository transaction.
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &playerTx{tx: tx}, nil
}

// querier abstracts pgxpool.Pool and pgx.Tx for the shared helpers
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		player     domain.Player
		playerUUID uuid.UUID
	)
	err := row.Scan(&playerUUID, &player.Username, &player.TotalXP, &player.Level, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	player.ID = playerUUID.String()
	return &player, nil
}
