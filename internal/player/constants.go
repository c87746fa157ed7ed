package player

import "time"

// Cache sizing for username lookups
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)

// Username constraints enforced at registration
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

// XP award sources recorded on events
const (
	SourceDirect = "direct"
	SourceQuest  = "quest"
)
