// Package cli implements the worder command.
//
// The command has a single flag, -l/--length, selecting which word<N> list
// is played. It prints the banner and hands over to a play.Session.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/worder/internal/config"
	"github.com/robalobadob/worder/internal/game"
	"github.com/robalobadob/worder/internal/play"
	"github.com/robalobadob/worder/internal/render"
	"github.com/robalobadob/worder/internal/words"
)

// DefaultLength is the word length played when -l is not given.
const DefaultLength = 5

// Options wires the command to its environment.
type Options struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Color  bool
}

// NewRootCommand creates the worder command.
func NewRootCommand(opts Options) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "worder",
		Short: "Word guessing game.",
		Long: fmt.Sprintf(`Guess the secret word in %d tries. After each guess every letter is
marked as in the right place, in the word but elsewhere, or not in the word.`, game.MaxAttempts),
		Example:       "  worder\n  worder -l 6",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, length)
		},
	}
	cmd.SetIn(opts.In)
	cmd.SetOut(opts.Out)
	cmd.Flags().IntVarP(&length, "length", "l", DefaultLength, "number of letters in the secret word")
	return cmd
}

func run(opts Options, length int) error {
	if length <= 0 {
		return fmt.Errorf("length must be positive, got %d", length)
	}
	dict, err := words.Load(opts.Config.WordsDir, length)
	if err != nil {
		return err
	}
	log.Info().Str("path", dict.Source()).Int("words", dict.Len()).Msg("word list ready")

	fmt.Fprintf(opts.Out, "Guess a %d-letter word in %d tries.\n", dict.Length(), game.MaxAttempts)
	c := play.NewController(dict, opts.In, opts.Out, render.Renderer{Color: opts.Color})
	return play.NewSession(c).Run()
}

// ColorEnabled reports whether tiles written to f should be colored.
func ColorEnabled(cfg *config.Config, f *os.File) bool {
	if cfg.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
