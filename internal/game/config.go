package game

import "github.com/samdwyer/gravewalk/internal/anim"

// DefaultHalfSize is used when Config.HalfSize is zero.
const DefaultHalfSize = 10

// Config holds session options.
type Config struct {
	// Seed for random number generation. Used for reproducible spawns.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// HalfSize is H; the grid spans [-H, H] on both axes.
	HalfSize int

	// Animations overrides transition durations. Nil uses anim.DefaultDurations.
	Animations anim.Durations
}
