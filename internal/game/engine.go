// internal/game/engine.go
//
// Core game engine for a single worder round.
// Responsibilities:
//   - Create new rounds for a given secret word (6 attempts).
//   - Validate shape and apply guesses (length, alphabetic).
//   - Score guesses using the two-pass Wordle algorithm.
//   - Track used letters and state transitions: playing → won/lost.
//
// Dictionary membership is checked by the caller (see package words); the
// engine only guards the preconditions the scorer relies on.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// MaxAttempts is the number of valid guesses a round allows.
const MaxAttempts = 6

var (
	ErrFinished      = errors.New("round finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrInvalidAnswer = errors.New("invalid answer")
)

// CheckAnswer reports whether answer can be played: non-empty and all
// lowercase a–z.
func CheckAnswer(answer string) error {
	if answer == "" || !isAlpha(answer) {
		return fmt.Errorf("%w: %q", ErrInvalidAnswer, answer)
	}
	return nil
}

// New constructs a round for answer. The answer is lowercased; use
// CheckAnswer on the result before playing it.
func New(answer string) *Round {
	ans := strings.ToLower(answer)
	return &Round{
		Answer:  ans,
		Rows:    MaxAttempts,
		Cols:    len(ans),
		History: []Record{},
		Letters: UsedLetters{},
	}
}

// ApplyGuess scores a guess and records it, mutating the round state.
// Returns the per-letter marks and the new state, or an error.
//
// A rejected guess leaves the round untouched.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches r.Rows → Finished = true (loss).
func (r *Round) ApplyGuess(guess string) ([]Mark, State, error) {
	if r.Finished {
		return nil, r.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != r.Cols || !isAlpha(guess) {
		return nil, r.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	marks := Score(guess, r.Answer)
	r.History = append(r.History, Record{Guess: guess, Marks: marks})
	r.Letters.Update(guess, marks)

	if allHit(marks) {
		r.Finished, r.Won = true, true
	} else if len(r.History) >= r.Rows {
		r.Finished = true
	}
	return marks, r.State(), nil
}

// State reports the current round state.
func (r *Round) State() State {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempts is the number of valid guesses made so far.
func (r *Round) Attempts() int { return len(r.History) }

// Remaining is the number of guesses left before the round is lost.
func (r *Round) Remaining() int { return r.Rows - len(r.History) }

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter, left to right: if there is remaining
//     count for that letter, mark Present and consume one; otherwise Miss.
//
// Hits and presents for a letter never exceed its count in the answer.
// guess and answer must be the same length and lowercase a–z.
func Score(guess, answer string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if j := idx(answer[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// Update folds the marks of one scored guess into u. A letter's status is
// only ever upgraded, so a letter marked Miss in one position keeps a
// Present or Hit it earned elsewhere.
func (u UsedLetters) Update(guess string, marks []Mark) {
	for i := 0; i < len(guess) && i < len(marks); i++ {
		c := guess[i]
		if marks[i].rank() > u[c].rank() {
			u[c] = marks[i]
		}
	}
}

// Absent reports whether c is known not to occur in the answer.
func (u UsedLetters) Absent(c byte) bool { return u[c] == MarkMiss }

// Unused returns the letters a–z not known to be absent, in order.
func (u UsedLetters) Unused() []byte {
	out := make([]byte, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		if !u.Absent(c) {
			out = append(out, c)
		}
	}
	return out
}

var winMessages = [...]string{
	"This... can't... be... happening...",
	"You win! You were incredibly lucky!",
	"By luck and skill, you win!",
	"Terrific!",
	"Nicely done!",
	"You win, but you can do better than that!",
	"You barely made it, yikes!",
	"?",
}

// FinalMessage returns the closing line for a finished round. Wins are
// indexed by the number of attempts used; out of range counts map to "?".
func FinalMessage(won bool, attempts int, answer string) string {
	if !won {
		return fmt.Sprintf(`You lost. The word was "%s".`, answer)
	}
	if attempts < 0 || attempts >= len(winMessages) {
		return winMessages[len(winMessages)-1]
	}
	return winMessages[attempts]
}

// Message is FinalMessage for r.
func (r *Round) Message() string {
	return FinalMessage(r.Won, r.Attempts(), r.Answer)
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(c byte) int { return int(c) - 'a' }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allHit returns true if all marks are MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}
