// internal/render/render.go
//
// Terminal formatting for a round.
//   - Tile:    one letter styled by its mark (ANSI background tiers).
//   - Row:     one scored guess from the history.
//   - Legend:  letters not yet known to be absent, sorted.
//
// Every function here is pure; the only knob is whether ANSI color is used.
// Without color the first-generation text format is used instead: hits in
// uppercase, presents in lowercase, misses as ".".

package render

import (
	"strings"

	"github.com/robalobadob/worder/internal/game"
)

const (
	hitStyle     = "\033[30m\033[102m" // black on bright green
	presentStyle = "\033[30m\033[103m" // black on bright yellow
	missStyle    = "\033[37m"          // grey
	reset        = "\033[0m"

	rowIndent = "        "
)

// Renderer formats rounds for the terminal.
type Renderer struct {
	Color bool
}

// Tile styles an uppercase letter by mark. A zero mark renders unstyled,
// which is how unguessed letters appear in the legend.
func Tile(c byte, m game.Mark) string {
	s := strings.ToUpper(string(c))
	switch m {
	case game.MarkHit:
		return hitStyle + s + reset
	case game.MarkPresent:
		return presentStyle + s + reset
	case game.MarkMiss:
		return missStyle + s + reset
	default:
		return s
	}
}

// Plain is the uncolored form of Tile.
func Plain(c byte, m game.Mark) string {
	switch m {
	case game.MarkHit:
		return strings.ToUpper(string(c))
	case game.MarkPresent:
		return strings.ToLower(string(c))
	default:
		return "."
	}
}

// Row renders one history entry.
func (r Renderer) Row(rec game.Record) string {
	var b strings.Builder
	b.WriteString(rowIndent + "| ")
	if r.Color {
		for i := 0; i < len(rec.Guess); i++ {
			b.WriteString(Tile(rec.Guess[i], rec.Marks[i]))
			b.WriteByte(' ')
		}
		b.WriteString("|")
		return b.String()
	}
	b.WriteString(rec.Guess + " | ")
	for i := 0; i < len(rec.Guess); i++ {
		b.WriteString(Plain(rec.Guess[i], rec.Marks[i]))
	}
	b.WriteString(" |")
	return b.String()
}

// History renders every row, one per line.
func (r Renderer) History(hist []game.Record) string {
	var b strings.Builder
	for _, rec := range hist {
		b.WriteString(r.Row(rec))
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend renders the letters not known to be absent in alphabetical order.
// With color each letter carries its best-known mark.
func (r Renderer) Legend(used game.UsedLetters) string {
	letters := used.Unused()
	parts := make([]string, 0, len(letters))
	for _, c := range letters {
		if r.Color {
			parts = append(parts, Tile(c, used[c]))
		} else {
			parts = append(parts, strings.ToUpper(string(c)))
		}
	}
	return strings.Join(parts, " ")
}
