// Package audio synthesizes and plays the game's sound effects through beep.
package audio

import "context"

// SoundID names a sound effect.
type SoundID int

const (
	SoundBounce SoundID = iota
	SoundScoreLeft
	SoundScoreRight
	SoundWin
	SoundLose
	SoundGameOver
	SoundStartup
	soundCount
)

var soundNames = [soundCount]string{
	SoundBounce:     "bounce",
	SoundScoreLeft:  "score-left",
	SoundScoreRight: "score-right",
	SoundWin:        "win",
	SoundLose:       "lose",
	SoundGameOver:   "gameover",
	SoundStartup:    "startup",
}

// Sounds lists every sound effect.
func Sounds() []SoundID {
	ids := make([]SoundID, 0, soundCount)
	for id := SoundBounce; id < soundCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id SoundID) valid() bool {
	return id >= 0 && id < soundCount
}

func (id SoundID) String() string {
	if !id.valid() {
		return "unknown"
	}
	return soundNames[id]
}

// Player starts a sound and returns immediately.
type Player interface {
	PlayOnce(id SoundID)
}

// Sequencer can also block until a sound has finished.
type Sequencer interface {
	Player
	PlayAndWait(ctx context.Context, id SoundID) error
}

// Silent discards every sound. Used when audio is muted.
type Silent struct{}

// PlayOnce does nothing.
func (Silent) PlayOnce(SoundID) {}

// PlayAndWait returns at once.
func (Silent) PlayAndWait(ctx context.Context, _ SoundID) error {
	return ctx.Err()
}
