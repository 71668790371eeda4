// Package treehouse maps completed-task counts to an ASCII treehouse.
//
// The treehouse grows through six levels. Each level above zero unlocks
// one more tier of art stacked under the tiers already earned, so the
// rendering is strictly additive: completing more tasks never removes
// anything already built. Level zero shows a lone seedling instead.
package treehouse

import "strings"

// MaxLevel is the highest treehouse level.
const MaxLevel = 5

// Level returns the treehouse level for a completed-task count.
//
// Thresholds: level 0 at zero completed, then level 1 from 1, level 2
// from 5, level 3 from 10, level 4 from 15, and level 5 from 20.
func Level(completed int) int {
	switch {
	case completed >= 20:
		return 5
	case completed >= 15:
		return 4
	case completed >= 10:
		return 3
	case completed >= 5:
		return 2
	case completed >= 1:
		return 1
	default:
		return 0
	}
}

const seedling = `  (No tasks completed yet!)
        🌱 A tiny seedling sits alone...`

// tiers[n] is the art unlocked at level n+1.
var tiers = [MaxLevel]string{
	`          🌳
         🌳🌳
          🌳      A small platform is starting to form!
          ||
          ||
          ||`,
	`        _______
       /       \   The platform is now sturdy!
       |_______|`,
	`         /||\       A ladder, walls, and railings added!
        / || \
       /  ||  \`,
	`       [__||__]      A cozy rooftop and some decorations!
          ||
          ||`,
	`      ~~~~~~~~~~     Lights, furniture, and a hanging swing!
      ~  BONUS ~     It's a dream come true!
      ~~~~~~~~~~`,
}

// Render returns the treehouse art for a level, without a trailing
// newline. Levels at or below zero render the seedling; levels above
// MaxLevel render the full treehouse.
func Render(level int) string {
	if level <= 0 {
		return seedling
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return strings.Join(tiers[:level], "\n")
}
