package xp

// XP formula constants
const (
	// BaseXP is the base XP value used in level calculations
	BaseXP = 100.0

	// LevelExponent is the exponent used in the XP formula: XP = BaseXP * (Level ^ LevelExponent)
	LevelExponent = 1.5

	// MinLevel is the lowest valid player level
	MinLevel = 1

	// MaxLevel is the highest supported level; keeps curve computation bounded
	MaxLevel = 1000

	// MaxTotalXP is the largest accepted total XP value (2^53 - 1).
	// Totals beyond this lose integer precision in IEEE-754 doubles, which the
	// curve arithmetic depends on.
	MaxTotalXP int64 = 1<<53 - 1
)
