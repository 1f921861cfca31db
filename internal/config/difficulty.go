package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the opponent's skill. It is fixed for a session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyImpossible
	difficultyCount
)

// DifficultyProfile holds the tuning derived from a difficulty.
type DifficultyProfile struct {
	// OffsetFraction scales the paddle height into the maximum random
	// error added to the opponent's predicted target.
	OffsetFraction float64
	// SpeedMultiplier scales the opponent's paddle speed.
	SpeedMultiplier float64
	// Retarget enables one extra prediction per approach.
	Retarget bool
	// SpeedUpPerPoint makes the ball faster after every point.
	SpeedUpPerPoint bool
}

var difficultyProfiles = [difficultyCount]DifficultyProfile{
	DifficultyEasy:       {OffsetFraction: 1, SpeedMultiplier: 0.5},
	DifficultyNormal:     {OffsetFraction: 0.5, SpeedMultiplier: 1},
	DifficultyHard:       {OffsetFraction: 0.25, SpeedMultiplier: 1, Retarget: true, SpeedUpPerPoint: true},
	DifficultyImpossible: {OffsetFraction: 0, SpeedMultiplier: 2, Retarget: true, SpeedUpPerPoint: true},
}

var difficultyNames = [difficultyCount]string{"easy", "normal", "hard", "impossible"}

// Difficulties lists every difficulty in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyImpossible}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d < difficultyCount
}

// Profile returns the tuning for d. Unknown values fall back to Easy.
func (d Difficulty) Profile() DifficultyProfile {
	if !d.Valid() {
		return difficultyProfiles[DifficultyEasy]
	}
	return difficultyProfiles[d]
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return difficultyNames[d]
}

// ParseDifficulty accepts a difficulty name or its menu digit.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name || s == fmt.Sprint(i+1) {
			return Difficulty(i), nil
		}
	}
	return DifficultyEasy, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or impossible)", s)
}

// DifficultyForKey maps a title-screen key to a difficulty.
// Keys "1" to "4" select a difficulty; anything else means Easy.
func DifficultyForKey(key string) Difficulty {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '4' {
		return Difficulty(key[0] - '1')
	}
	return DifficultyEasy
}
