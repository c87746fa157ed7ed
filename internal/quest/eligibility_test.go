package quest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

func TestIsEligible(t *testing.T) {
	quest := &domain.Quest{ID: "q1", RequiredLevel: 5, XPReward: 100}

	tests := []struct {
		name        string
		playerLevel int
		want        bool
	}{
		{name: "below requirement", playerLevel: 4, want: false},
		{name: "at requirement", playerLevel: 5, want: true},
		{name: "above requirement", playerLevel: 50, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsEligible(quest, tt.playerLevel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEligible_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		quest       *domain.Quest
		playerLevel int
		field       string
	}{
		{name: "nil quest", quest: nil, playerLevel: 5, field: "quest"},
		{name: "zero required level", quest: &domain.Quest{ID: "q", RequiredLevel: 0}, playerLevel: 5, field: "quest.requiredLevel"},
		{name: "zero player level", quest: &domain.Quest{ID: "q", RequiredLevel: 1}, playerLevel: 0, field: "playerLevel"},
		{name: "negative player level", quest: &domain.Quest{ID: "q", RequiredLevel: 1}, playerLevel: -3, field: "playerLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IsEligible(tt.quest, tt.playerLevel)
			require.Error(t, err)

			var invalid *domain.InvalidArgumentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestAvailableQuests(t *testing.T) {
	questLvl1 := domain.Quest{ID: "quest-lvl-1", RequiredLevel: 1, XPReward: 50}
	questLvl3 := domain.Quest{ID: "quest-lvl-3", RequiredLevel: 3, XPReward: 150}
	questLvl10 := domain.Quest{ID: "quest-lvl-10", RequiredLevel: 10, XPReward: 1000}

	t.Run("filters by level preserving order", func(t *testing.T) {
		got, err := AvailableQuests([]domain.Quest{questLvl1, questLvl3, questLvl10}, 5)
		require.NoError(t, err)
		assert.Equal(t, []domain.Quest{questLvl1, questLvl3}, got)
	})

	t.Run("order follows input even when unsorted", func(t *testing.T) {
		got, err := AvailableQuests([]domain.Quest{questLvl3, questLvl1}, 5)
		require.NoError(t, err)
		assert.Equal(t, []domain.Quest{questLvl3, questLvl1}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := AvailableQuests(nil, 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("none eligible", func(t *testing.T) {
		got, err := AvailableQuests([]domain.Quest{questLvl10}, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid quest aborts the whole call", func(t *testing.T) {
		bad := domain.Quest{ID: "bad", RequiredLevel: 0}
		_, err := AvailableQuests([]domain.Quest{questLvl1, bad}, 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "index 1")
	})
}

func TestTotalXPReward(t *testing.T) {
	t.Run("sums rewards", func(t *testing.T) {
		quests := []domain.Quest{
			{ID: "a", RequiredLevel: 1, XPReward: 50},
			{ID: "b", RequiredLevel: 1, XPReward: 150},
			{ID: "c", RequiredLevel: 1, XPReward: 0},
		}
		total, err := TotalXPReward(quests)
		require.NoError(t, err)
		assert.Equal(t, int64(200), total)
	})

	t.Run("empty list", func(t *testing.T) {
		total, err := TotalXPReward(nil)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("negative reward rejected", func(t *testing.T) {
		quests := []domain.Quest{
			{ID: "a", RequiredLevel: 1, XPReward: 50},
			{ID: "b", RequiredLevel: 1, XPReward: -10},
		}
		_, err := TotalXPReward(quests)
		require.Error(t, err)

		var invalid *domain.InvalidArgumentError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "quests[1].xpReward", invalid.Field)
		assert.Equal(t, int64(-10), invalid.Value)
	})
}
