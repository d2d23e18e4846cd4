// internal/play/play.go
//
// Interactive play over a line-oriented terminal.
//   - Controller.PlayRound runs one round: prompt, validate, score, render,
//     until the round is won or lost.
//   - Session.Run repeats rounds while the player answers "y".
//
// Input is read a line at a time and blocks until the player types
// something. Invalid guesses are reported and re-prompted without using an
// attempt. End of input ends the session.

package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/worder/internal/game"
	"github.com/robalobadob/worder/internal/render"
)

// WordSource supplies secret words and judges guesses.
type WordSource interface {
	// RandomWord returns a secret word.
	RandomWord() (string, error)
	// Validate returns why a guess is not playable, or nil.
	Validate(candidate string) error
	// IsValid reports whether a guess is playable, writing the reason
	// to w when it is not.
	IsValid(candidate string, w io.Writer) bool
}

// Controller runs rounds against a WordSource.
type Controller struct {
	Words    WordSource
	In       *bufio.Reader
	Out      io.Writer
	Renderer render.Renderer
}

// NewController reads guesses from in and writes prompts and boards to out.
func NewController(ws WordSource, in io.Reader, out io.Writer, r render.Renderer) *Controller {
	return &Controller{Words: ws, In: bufio.NewReader(in), Out: out, Renderer: r}
}

// PlayRound draws a secret word and plays a round to completion. The
// finished round is returned; io.EOF is returned if input runs out first.
func (c *Controller) PlayRound() (*game.Round, error) {
	answer, err := c.Words.RandomWord()
	if err != nil {
		return nil, err
	}
	return c.Play(game.New(answer))
}

// Play plays r until it is finished. A round whose answer is not all
// a–z is rejected with game.ErrInvalidAnswer.
func (c *Controller) Play(r *game.Round) (*game.Round, error) {
	if err := game.CheckAnswer(r.Answer); err != nil {
		return r, err
	}
	log.Debug().Int("length", r.Cols).Int("attempts", r.Rows).Msg("round started")
	for !r.Finished {
		guess, err := c.readGuess(r.Attempts() + 1)
		if err != nil {
			return r, err
		}
		_, state, err := r.ApplyGuess(guess)
		if err != nil {
			return r, err
		}
		log.Debug().Str("state", string(state)).Int("remaining", r.Remaining()).Msg("guess scored")
		fmt.Fprint(c.Out, c.Renderer.History(r.History))
		fmt.Fprintln(c.Out, c.Renderer.Legend(r.Letters))
	}
	fmt.Fprintln(c.Out, r.Message())
	log.Debug().Str("state", string(r.State())).Int("attempts", r.Attempts()).Msg("round finished")
	return r, nil
}

// readGuess prompts until the player enters a valid guess.
func (c *Controller) readGuess(n int) (string, error) {
	for {
		line, err := c.prompt(fmt.Sprintf("Guess #%d? ", n))
		if err != nil {
			return "", err
		}
		guess := strings.ToLower(line)
		if c.Words.IsValid(guess, c.Out) {
			return guess, nil
		}
		log.Debug().Err(c.Words.Validate(guess)).Str("guess", guess).Msg("guess rejected")
	}
}

// prompt writes p and returns the next input line without its newline.
// A final line lacking a newline is still returned; io.EOF is only
// reported once nothing is left.
func (c *Controller) prompt(p string) (string, error) {
	fmt.Fprint(c.Out, p)
	line, err := c.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Session repeats rounds until the player declines another.
type Session struct {
	*Controller
	// Rounds counts completed rounds.
	Rounds int
	// Wins counts completed rounds that were won.
	Wins int
}

// NewSession wraps a controller.
func NewSession(c *Controller) *Session { return &Session{Controller: c} }

// Run plays rounds until the player answers anything but "y" (any case)
// to the play-again prompt, or input ends. Running out of input is not an
// error.
func (s *Session) Run() error {
	for {
		r, err := s.PlayRound()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if err != nil {
			return err
		}
		s.Rounds++
		if r.Won {
			s.Wins++
		}

		again, err := s.prompt("One more (y/n)? ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			log.Debug().Int("rounds", s.Rounds).Int("wins", s.Wins).Msg("session over")
			return nil
		}
	}
}
