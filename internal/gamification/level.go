// Package gamification derives progression signals (levels, streaks, badges,
// periodic statistics) from session history. Every function is pure: callers
// pass the sessions, the XP accumulator and the evaluation time.
package gamification

import "github.com/renato0307/pomo/internal/domain"

// XPPerCompletion is awarded the first time a session is completed
const XPPerCompletion int64 = 10

// Requirement returns the XP needed to advance from level to level+1
func Requirement(level int) int64 {
	return 100 + int64(level-1)*50
}

// LevelOf walks the requirement staircase starting at level 1
func LevelOf(totalXP int64) domain.LevelInfo {
	level := 1
	remaining := max(totalXP, 0)

	for remaining >= Requirement(level) {
		remaining -= Requirement(level)
		level++
	}

	return domain.LevelInfo{
		CurrentXP: remaining,
		Level:     level,
		TotalXP:   totalXP,
		XPToNext:  Requirement(level),
	}
}

// IsLevelUp reports whether moving from before to after crosses a level boundary
func IsLevelUp(before, after int64) bool {
	return LevelOf(before).Level < LevelOf(after).Level
}
