package event

import "time"

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// ResilientPublisher defaults
const (
	DefaultMaxRetries     = 3
	DefaultRetryDelay     = 500 * time.Millisecond
	DefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)
