package cosmetics

import (
	"context"
	"fmt"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/logger"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
)

// Cosmetic kind labels used in events and logs
const (
	KindTheme     = "theme"
	KindTableSkin = "table_skin"
)

// Repository defines the interface for data access required by the cosmetics service
type Repository interface {
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error)
	GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error)
	BeginTx(ctx context.Context) (repository.Tx, error)
}

// Content defines the read-only cosmetic content the service consumes
type Content interface {
	Themes() []domain.Theme
	TableSkins() []domain.TableSkin
	ThemeByID(id string) (*domain.Theme, bool)
	TableSkinByID(id string) (*domain.TableSkin, bool)
}

// Service defines the interface for cosmetics operations
type Service interface {
	GetUsableThemes(ctx context.Context, username string) ([]domain.Theme, error)
	GetUsableSkins(ctx context.Context, username string) ([]domain.TableSkin, error)
	ActivateTheme(ctx context.Context, username, themeID string) error
	ActivateSkin(ctx context.Context, username, skinID string) error
}

type service struct {
	repo      Repository
	content   Content
	publisher event.Bus
}

// NewService creates a new cosmetics service
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

func (s *service) playerGateState(ctx context.Context, playerID string) (*domain.PlayerCosmetics, []string, error) {
	cosmetics, err := s.repo.GetCosmetics(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cosmetics: %w", err)
	}
	completed, err := s.repo.GetClaimedQuestIDs(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get claimed quests: %w", err)
	}
	return cosmetics, completed, nil
}

// GetUsableThemes returns every theme the player may currently use.
func (s *service) GetUsableThemes(ctx context.Context, username string) ([]domain.Theme, error) {
	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	cosmetics, completed, err := s.playerGateState(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	return UnlockableThemes(s.content.Themes(), player.Level, cosmetics, completed)
}

// GetUsableSkins returns every table skin the player may currently use.
func (s *service) GetUsableSkins(ctx context.Context, username string) ([]domain.TableSkin, error) {
	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	cosmetics, completed, err := s.playerGateState(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	return UnlockableSkins(s.content.TableSkins(), player.Level, cosmetics, completed)
}

// ActivateTheme makes a theme the player's active theme. The theme must pass
// the usability gates; a newly used theme is recorded as unlocked.
func (s *service) ActivateTheme(ctx context.Context, username, themeID string) error {
	log := logger.FromContext(ctx)

	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return err
	}

	theme, ok := s.content.ThemeByID(themeID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrThemeNotFound, themeID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	cosmetics, err := tx.GetCosmetics(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to get cosmetics: %w", err)
	}
	completed, err := tx.GetClaimedQuestIDs(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to get claimed quests: %w", err)
	}

	usable, err := CanUseTheme(theme, player.Level, cosmetics, completed)
	if err != nil {
		return err
	}
	if !usable {
		log.Warn("Theme activation refused", "username", username, "theme_id", themeID)
		return fmt.Errorf("%w: theme %s", domain.ErrCosmeticLocked, themeID)
	}

	if !cosmetics.HasTheme(themeID) {
		cosmetics.UnlockedThemes = append(cosmetics.UnlockedThemes, themeID)
	}
	cosmetics.ActiveThemeID = &themeID

	if err := tx.UpdateCosmetics(ctx, player.ID, *cosmetics); err != nil {
		return fmt.Errorf("failed to update cosmetics: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishActivated(ctx, player.ID, themeID, KindTheme)
	return nil
}

// ActivateSkin makes a table skin the player's active skin, with the same
// gate rules as ActivateTheme.
func (s *service) ActivateSkin(ctx context.Context, username, skinID string) error {
	log := logger.FromContext(ctx)

	player, err := s.validatePlayer(ctx, username)
	if err != nil {
		return err
	}

	skin, ok := s.content.TableSkinByID(skinID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSkinNotFound, skinID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	cosmetics, err := tx.GetCosmetics(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to get cosmetics: %w", err)
	}
	completed, err := tx.GetClaimedQuestIDs(ctx, player.ID)
	if err != nil {
		return fmt.Errorf("failed to get claimed quests: %w", err)
	}

	usable, err := CanUseSkin(skin, player.Level, cosmetics, completed)
	if err != nil {
		return err
	}
	if !usable {
		log.Warn("Skin activation refused", "username", username, "skin_id", skinID)
		return fmt.Errorf("%w: table skin %s", domain.ErrCosmeticLocked, skinID)
	}

	if !cosmetics.HasSkin(skinID) {
		cosmetics.UnlockedSkins = append(cosmetics.UnlockedSkins, skinID)
	}
	cosmetics.ActiveTableSkinID = &skinID

	if err := tx.UpdateCosmetics(ctx, player.ID, *cosmetics); err != nil {
		return fmt.Errorf("failed to update cosmetics: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publishActivated(ctx, player.ID, skinID, KindTableSkin)
	return nil
}

func (s *service) publishActivated(ctx context.Context, playerID, cosmeticID, kind string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event.NewCosmeticActivatedEvent(playerID, cosmeticID, kind)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish cosmetic activated event", "error", err)
	}
}
