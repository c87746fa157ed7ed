package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// MockQuestService mocks quest.Service
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) GetAvailableQuests(ctx context.Context, username string) ([]domain.Quest, error) {
	args := m.Called(ctx, username)
	if q := args.Get(0); q != nil {
		return q.([]domain.Quest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestService) Claim(ctx context.Context, username, questID string) (*domain.QuestClaimResult, error) {
	args := m.Called(ctx, username, questID)
	if r := args.Get(0); r != nil {
		return r.(*domain.QuestClaimResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandleGetAvailableQuests(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockQuestService{}
		svc.On("GetAvailableQuests", mock.Anything, "alice").
			Return([]domain.Quest{{ID: "quest-lvl-1", RequiredLevel: 1, XPReward: 50}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/quests/available?username=alice", nil)
		w := httptest.NewRecorder()
		HandleGetAvailableQuests(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quest-lvl-1"`)
	})

	t.Run("missing username", func(t *testing.T) {
		svc := &MockQuestService{}

		req := httptest.NewRequest("GET", "/api/v1/quests/available", nil)
		w := httptest.NewRecorder()
		HandleGetAvailableQuests(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleClaimQuest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockQuestService{}
		svc.On("Claim", mock.Anything, "alice", "quest-welcome").
			Return(&domain.QuestClaimResult{QuestID: "quest-welcome"}, nil)

		w := postJSON(HandleClaimQuest(svc), "/api/v1/quests/claim", `{"username":"alice","quest_id":"quest-welcome"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quest-welcome"`)
	})

	t.Run("already claimed", func(t *testing.T) {
		svc := &MockQuestService{}
		svc.On("Claim", mock.Anything, "alice", "quest-welcome").
			Return(nil, fmt.Errorf("%w: quest-welcome", domain.ErrQuestAlreadyClaimed))

		w := postJSON(HandleClaimQuest(svc), "/api/v1/quests/claim", `{"username":"alice","quest_id":"quest-welcome"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestAlreadyClaimed)
	})

	t.Run("not eligible", func(t *testing.T) {
		svc := &MockQuestService{}
		svc.On("Claim", mock.Anything, "alice", "quest-elite").
			Return(nil, fmt.Errorf("%w: level 10 required", domain.ErrQuestNotEligible))

		w := postJSON(HandleClaimQuest(svc), "/api/v1/quests/claim", `{"username":"alice","quest_id":"quest-elite"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuestNotEligible)
	})
}
