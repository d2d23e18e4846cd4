// internal/game/types.go
//
// Core type definitions for the worder game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Record: one scored guess in a round's history.
//   - UsedLetters: best-known status of every guessed letter.
//   - State: coarse round state (playing/won/lost).
//   - Round: state for a single in-progress or finished round.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the (remaining) answer at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// rank orders marks by how much they reveal; unknown marks rank lowest.
func (m Mark) rank() int {
	switch m {
	case MarkMiss:
		return 1
	case MarkPresent:
		return 2
	case MarkHit:
		return 3
	default:
		return 0
	}
}

// State is the coarse state of a round.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Record is a guess together with its marks. Records are never mutated
// once appended to a round's history.
type Record struct {
	Guess string
	Marks []Mark
}

// UsedLetters maps a lowercase letter to the best mark seen for it so far.
// Letters that were never guessed are absent from the map.
type UsedLetters map[byte]Mark

// Round holds the state of a single round.
type Round struct {
	Answer   string      // The secret word (always lowercase).
	Rows     int         // Maximum number of guesses allowed (6).
	Cols     int         // Number of letters per word.
	History  []Record    // Scored guesses, in order.
	Letters  UsedLetters // Best-known status per guessed letter.
	Finished bool        // True once the round is over (won or lost).
	Won      bool        // True if the round was finished with a win.
}
