package cosmetics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/repository"
)

type fakeStore struct {
	player    *domain.Player
	cosmetics *domain.PlayerCosmetics
	claimed   []string
}

type fakeTx struct {
	store     *fakeStore
	cosmetics *domain.PlayerCosmetics
	committed bool
}

func (t *fakeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	p := *t.store.player
	return &p, nil
}

func (t *fakeTx) UpdatePlayerXP(ctx context.Context, playerID string, totalXP int64, level int) error {
	return errors.New("not implemented")
}

func (t *fakeTx) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) UpdateInventory(ctx context.Context, playerID string, inventory domain.Inventory) error {
	return errors.New("not implemented")
}

func (t *fakeTx) GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error) {
	c := *t.store.cosmetics
	return &c, nil
}

func (t *fakeTx) UpdateCosmetics(ctx context.Context, playerID string, cosmetics domain.PlayerCosmetics) error {
	t.cosmetics = &cosmetics
	return nil
}

func (t *fakeTx) GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error) {
	return t.store.claimed, nil
}

func (t *fakeTx) MarkQuestClaimed(ctx context.Context, playerID, questID string) error {
	return errors.New("not implemented")
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	if t.cosmetics != nil {
		t.store.cosmetics = t.cosmetics
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	return nil
}

type fakeRepo struct {
	store  *fakeStore
	lastTx *fakeTx
}

func (r *fakeRepo) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	if r.store.player != nil && r.store.player.Username == username {
		p := *r.store.player
		return &p, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetCosmetics(ctx context.Context, playerID string) (*domain.PlayerCosmetics, error) {
	c := *r.store.cosmetics
	return &c, nil
}

func (r *fakeRepo) GetClaimedQuestIDs(ctx context.Context, playerID string) ([]string, error) {
	return r.store.claimed, nil
}

func (r *fakeRepo) BeginTx(ctx context.Context) (repository.Tx, error) {
	r.lastTx = &fakeTx{store: r.store}
	return r.lastTx, nil
}

type fakeContent struct {
	themes []domain.Theme
	skins  []domain.TableSkin
}

func (c *fakeContent) Themes() []domain.Theme         { return c.themes }
func (c *fakeContent) TableSkins() []domain.TableSkin { return c.skins }

func (c *fakeContent) ThemeByID(id string) (*domain.Theme, bool) {
	for i := range c.themes {
		if c.themes[i].ID == id {
			return &c.themes[i], true
		}
	}
	return nil, false
}

func (c *fakeContent) TableSkinByID(id string) (*domain.TableSkin, bool) {
	for i := range c.skins {
		if c.skins[i].ID == id {
			return &c.skins[i], true
		}
	}
	return nil, false
}

func newCosmeticsFixture(level int, content *fakeContent) (Service, *fakeRepo) {
	store := &fakeStore{
		player:    &domain.Player{ID: "p1", Username: "alice", Level: level},
		cosmetics: &domain.PlayerCosmetics{},
	}
	repo := &fakeRepo{store: store}
	return NewService(repo, content, event.NewMemoryBus()), repo
}

func TestGetUsableThemes(t *testing.T) {
	content := &fakeContent{themes: []domain.Theme{
		{ID: "theme-starter", RequiredLevel: 1},
		{ID: "theme-veteran", RequiredLevel: 10},
	}}
	svc, _ := newCosmeticsFixture(5, content)

	got, err := svc.GetUsableThemes(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "theme-starter", got[0].ID)
}

func TestGetUsableThemes_UnknownPlayer(t *testing.T) {
	svc, _ := newCosmeticsFixture(5, &fakeContent{})

	_, err := svc.GetUsableThemes(context.Background(), "nobody")
	assert.True(t, errors.Is(err, domain.ErrPlayerNotFound))
}

func TestActivateTheme(t *testing.T) {
	content := &fakeContent{themes: []domain.Theme{
		{ID: "theme-starter", RequiredLevel: 1},
	}}
	svc, repo := newCosmeticsFixture(5, content)

	err := svc.ActivateTheme(context.Background(), "alice", "theme-starter")
	require.NoError(t, err)

	assert.True(t, repo.lastTx.committed)
	assert.True(t, repo.store.cosmetics.HasTheme("theme-starter"))
	require.NotNil(t, repo.store.cosmetics.ActiveThemeID)
	assert.Equal(t, "theme-starter", *repo.store.cosmetics.ActiveThemeID)
}

func TestActivateTheme_Locked(t *testing.T) {
	content := &fakeContent{themes: []domain.Theme{
		{ID: "theme-veteran", RequiredLevel: 10},
	}}
	svc, repo := newCosmeticsFixture(5, content)

	err := svc.ActivateTheme(context.Background(), "alice", "theme-veteran")
	assert.True(t, errors.Is(err, domain.ErrCosmeticLocked))
	assert.False(t, repo.lastTx.committed)
	assert.Nil(t, repo.store.cosmetics.ActiveThemeID)
}

func TestActivateTheme_Unknown(t *testing.T) {
	svc, _ := newCosmeticsFixture(5, &fakeContent{})

	err := svc.ActivateTheme(context.Background(), "alice", "theme-missing")
	assert.True(t, errors.Is(err, domain.ErrThemeNotFound))
}

func TestActivateTheme_AlreadyUnlockedIgnoresGates(t *testing.T) {
	content := &fakeContent{themes: []domain.Theme{
		{ID: "theme-rare", RequiredLevel: 50},
	}}
	svc, repo := newCosmeticsFixture(5, content)
	repo.store.cosmetics.UnlockedThemes = []string{"theme-rare"}

	err := svc.ActivateTheme(context.Background(), "alice", "theme-rare")
	require.NoError(t, err)

	// stays unlocked exactly once
	assert.Equal(t, []string{"theme-rare"}, repo.store.cosmetics.UnlockedThemes)
	require.NotNil(t, repo.store.cosmetics.ActiveThemeID)
	assert.Equal(t, "theme-rare", *repo.store.cosmetics.ActiveThemeID)
}

func TestActivateSkin(t *testing.T) {
	content := &fakeContent{skins: []domain.TableSkin{
		{ID: "skin-wood", ThemeID: "theme-starter", RequiredLevel: 1},
	}}
	svc, repo := newCosmeticsFixture(3, content)

	err := svc.ActivateSkin(context.Background(), "alice", "skin-wood")
	require.NoError(t, err)

	assert.True(t, repo.store.cosmetics.HasSkin("skin-wood"))
	require.NotNil(t, repo.store.cosmetics.ActiveTableSkinID)
	assert.Equal(t, "skin-wood", *repo.store.cosmetics.ActiveTableSkinID)
}

func TestActivateSkin_QuestGated(t *testing.T) {
	questID := "quest-hero"
	content := &fakeContent{skins: []domain.TableSkin{
		{ID: "skin-epic", ThemeID: "t", RequiredLevel: 1, RequiredQuestID: &questID},
	}}
	svc, repo := newCosmeticsFixture(20, content)

	err := svc.ActivateSkin(context.Background(), "alice", "skin-epic")
	assert.True(t, errors.Is(err, domain.ErrCosmeticLocked))

	repo.store.claimed = []string{questID}
	err = svc.ActivateSkin(context.Background(), "alice", "skin-epic")
	require.NoError(t, err)
	assert.True(t, repo.store.cosmetics.HasSkin("skin-epic"))
}
