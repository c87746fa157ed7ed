package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	PlayerLeveledUp   Type = "player.leveled_up"
	PlayerXPAwarded   Type = "player.xp_awarded"
	QuestClaimed      Type = "quest.claimed"
	ItemCrafted       Type = "item.crafted"
	CosmeticActivated Type = "cosmetic.activated"
)

// Typed event payloads for type safety

// PlayerLeveledUpPayloadV1 is the typed payload for level-up events
type PlayerLeveledUpPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	PreviousLevel int    `json:"previous_level"`
	NewLevel      int    `json:"new_level"`
	TotalXP       int64  `json:"total_xp"`
	Timestamp     int64  `json:"timestamp"`
}

// PlayerXPAwardedPayloadV1 is the typed payload for XP award events
type PlayerXPAwardedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Amount    int64  `json:"amount"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// QuestClaimedPayloadV1 is the typed payload for quest claim events
type QuestClaimedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	QuestID   string `json:"quest_id"`
	XPReward  int64  `json:"xp_reward"`
	Timestamp int64  `json:"timestamp"`
}

// ItemCraftedPayloadV1 is the typed payload for craft events
type ItemCraftedPayloadV1 struct {
	PlayerID     string `json:"player_id"`
	RecipeID     string `json:"recipe_id"`
	ResultItemID string `json:"result_item_id"`
	Timestamp    int64  `json:"timestamp"`
}

// CosmeticActivatedPayloadV1 is the typed payload for cosmetic activation events
type CosmeticActivatedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	CosmeticID string `json:"cosmetic_id"`
	Kind       string `json:"kind"` // "theme" or "table_skin"
	Timestamp  int64  `json:"timestamp"`
}

// NewPlayerLeveledUpEvent builds a v1 level-up event
func NewPlayerLeveledUpEvent(playerID string, previousLevel, newLevel int, totalXP int64) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PlayerLeveledUp,
		Payload: PlayerLeveledUpPayloadV1{
			PlayerID:      playerID,
			PreviousLevel: previousLevel,
			NewLevel:      newLevel,
			TotalXP:       totalXP,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewPlayerXPAwardedEvent builds a v1 XP award event
func NewPlayerXPAwardedEvent(playerID string, amount int64, source string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    PlayerXPAwarded,
		Payload: PlayerXPAwardedPayloadV1{
			PlayerID:  playerID,
			Amount:    amount,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewQuestClaimedEvent builds a v1 quest claim event
func NewQuestClaimedEvent(playerID, questID string, xpReward int64) Event {
	return Event{
		Version: SchemaVersion,
		Type:    QuestClaimed,
		Payload: QuestClaimedPayloadV1{
			PlayerID:  playerID,
			QuestID:   questID,
			XPReward:  xpReward,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemCraftedEvent builds a v1 craft event
func NewItemCraftedEvent(playerID, recipeID, resultItemID string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    ItemCrafted,
		Payload: ItemCraftedPayloadV1{
			PlayerID:     playerID,
			RecipeID:     recipeID,
			ResultItemID: resultItemID,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewCosmeticActivatedEvent builds a v1 cosmetic activation event
func NewCosmeticActivatedEvent(playerID, cosmeticID, kind string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    CosmeticActivated,
		Payload: CosmeticActivatedPayloadV1{
			PlayerID:   playerID,
			CosmeticID: cosmeticID,
			Kind:       kind,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
