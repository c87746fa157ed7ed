package metrics

import (
	"context"

	"github.com/shopquest/ShopQuest_Go/internal/event"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to every event type it records
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PlayerXPAwarded,
		event.PlayerLeveledUp,
		event.ItemCrafted,
		event.QuestClaimed,
		event.CosmeticActivated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent records metrics from the typed event payloads
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.PlayerXPAwardedPayloadV1:
		if payload.Amount > 0 {
			XPAwarded.WithLabelValues(payload.Source).Add(float64(payload.Amount))
		}
	case event.PlayerLeveledUpPayloadV1:
		LevelUps.Inc()
	case event.ItemCraftedPayloadV1:
		ItemsCrafted.WithLabelValues(payload.RecipeID).Inc()
	case event.QuestClaimedPayloadV1:
		QuestsClaimed.WithLabelValues(payload.QuestID).Inc()
	case event.CosmeticActivatedPayloadV1:
		CosmeticsActivated.WithLabelValues(payload.Kind).Inc()
	}

	return nil
}
