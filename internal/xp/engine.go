// Package xp implements the leveling curve for the gamification program.
//
// All functions are pure computations over integers: no I/O, no shared state.
// The curve is deliberately inverted by iteration rather than a closed form.
// XP costs use a non-integer exponent, so a closed-form inverse would need
// floating-point pow with rounding risk right at level boundaries; iterating
// with the same per-level cost function guarantees ForLevel, TotalForLevel
// and LevelFromTotal always classify a boundary value into the same level.
package xp

import (
	"math"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// LevelProgress describes where a total XP value sits within its level
type LevelProgress struct {
	CurrentLevel    int     `json:"current_level"`
	XPInLevel       int64   `json:"xp_in_level"`
	XPForNextLevel  int64   `json:"xp_for_next_level"`
	ProgressPercent float64 `json:"progress_percent"`
}

// AddResult is the outcome of applying an XP delta
type AddResult struct {
	NewTotalXP    int64 `json:"new_total_xp"`
	NewLevel      int   `json:"new_level"`
	PreviousLevel int   `json:"previous_level"`
	LeveledUp     bool  `json:"leveled_up"`
}

// costForLevel is the unvalidated per-level cost: floor(BaseXP * level^1.5).
// Level 1 (and below) costs nothing - players start there.
// Must stay IEEE-754 double then truncate; an integer-sqrt variant would
// shift thresholds at some levels.
func costForLevel(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	return int64(BaseXP * math.Pow(float64(level), LevelExponent))
}

func validateLevel(field string, level int) error {
	if level < MinLevel {
		return domain.NewInvalidArgument(field, level, "must be a positive level")
	}
	if level > MaxLevel {
		return domain.NewInvalidArgument(field, level, "exceeds the maximum supported level")
	}
	return nil
}

func validateTotalXP(field string, totalXP int64) error {
	if totalXP < 0 {
		return domain.NewInvalidArgument(field, totalXP, "must not be negative")
	}
	if totalXP > MaxTotalXP {
		return domain.NewInvalidArgument(field, totalXP, "exceeds the maximum safe XP magnitude")
	}
	return nil
}

// ForLevel returns the XP required to advance from level-1 to level.
func ForLevel(level int) (int64, error) {
	if err := validateLevel("level", level); err != nil {
		return 0, err
	}
	return costForLevel(level), nil
}

// TotalForLevel returns the cumulative XP needed to reach level from zero.
func TotalForLevel(level int) (int64, error) {
	if err := validateLevel("level", level); err != nil {
		return 0, err
	}

	cumulative := int64(0)
	for i := 2; i <= level; i++ {
		cumulative += costForLevel(i)
	}
	return cumulative, nil
}

// LevelFromTotal returns the highest level whose cumulative XP threshold does
// not exceed totalXP. Monotonic: more XP never yields a lower level.
func LevelFromTotal(totalXP int64) (int, error) {
	if err := validateTotalXP("totalXP", totalXP); err != nil {
		return 0, err
	}
	level, _ := levelAndAccumulated(totalXP)
	return level, nil
}

// levelAndAccumulated walks the curve upward, returning the level for totalXP
// and the cumulative XP threshold of that level. Shared by LevelFromTotal and
// ProgressFor so both classify boundary values identically.
func levelAndAccumulated(totalXP int64) (int, int64) {
	level := MinLevel
	cumulative := int64(0)

	for level < MaxLevel {
		cost := costForLevel(level + 1)
		if cumulative+cost > totalXP {
			break
		}
		cumulative += cost
		level++
	}
	return level, cumulative
}

// ProgressFor breaks a total XP value into its within-level progress.
// At MaxLevel there is no next level: XPForNextLevel is 0 and the bar is full.
func ProgressFor(totalXP int64) (*LevelProgress, error) {
	if err := validateTotalXP("totalXP", totalXP); err != nil {
		return nil, err
	}

	level, threshold := levelAndAccumulated(totalXP)
	xpInLevel := totalXP - threshold

	if level == MaxLevel {
		return &LevelProgress{
			CurrentLevel:    level,
			XPInLevel:       xpInLevel,
			XPForNextLevel:  0,
			ProgressPercent: 100,
		}, nil
	}

	xpForNext := costForLevel(level + 1)
	return &LevelProgress{
		CurrentLevel:    level,
		XPInLevel:       xpInLevel,
		XPForNextLevel:  xpForNext,
		ProgressPercent: 100 * float64(xpInLevel) / float64(xpForNext),
	}, nil
}

// Add applies an XP delta to a running total. Negative deltas are allowed
// (penalties), but the result must stay within [0, MaxTotalXP].
func Add(currentTotalXP, xpToAdd int64) (*AddResult, error) {
	if err := validateTotalXP("currentTotalXP", currentTotalXP); err != nil {
		return nil, err
	}

	newTotal := currentTotalXP + xpToAdd
	if newTotal < 0 {
		return nil, domain.NewInvalidArgument("xpToAdd", xpToAdd, "would drive total XP negative")
	}
	if newTotal > MaxTotalXP {
		return nil, domain.NewInvalidArgument("xpToAdd", xpToAdd, "would exceed the maximum safe XP magnitude")
	}

	previousLevel, _ := levelAndAccumulated(currentTotalXP)
	newLevel, _ := levelAndAccumulated(newTotal)

	return &AddResult{
		NewTotalXP:    newTotal,
		NewLevel:      newLevel,
		PreviousLevel: previousLevel,
		LeveledUp:     newLevel > previousLevel,
	}, nil
}
