package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/worder/internal/game"
)

func TestTile(t *testing.T) {
	tests := []struct {
		mark game.Mark
		want string
	}{
		{game.MarkHit, "\033[30m\033[102mS\033[0m"},
		{game.MarkPresent, "\033[30m\033[103mS\033[0m"},
		{game.MarkMiss, "\033[37mS\033[0m"},
		{"", "S"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mark), func(t *testing.T) {
			assert.Equal(t, tt.want, Tile('s', tt.mark))
		})
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "S", Plain('s', game.MarkHit))
	assert.Equal(t, "s", Plain('s', game.MarkPresent))
	assert.Equal(t, ".", Plain('s', game.MarkMiss))
}

func TestRow_Plain(t *testing.T) {
	rec := game.Record{Guess: "speed", Marks: game.Score("speed", "sheep")}
	assert.Equal(t, "        | speed | SpEE. |", Renderer{}.Row(rec))
}

func TestRow_Color(t *testing.T) {
	rec := game.Record{Guess: "ab", Marks: []game.Mark{game.MarkHit, game.MarkMiss}}
	want := "        | " + Tile('a', game.MarkHit) + " " + Tile('b', game.MarkMiss) + " |"
	assert.Equal(t, want, Renderer{Color: true}.Row(rec))
}

func TestHistory(t *testing.T) {
	r := game.New("sheep")
	_, _, _ = r.ApplyGuess("crane")
	_, _, _ = r.ApplyGuess("speed")

	out := Renderer{}.History(r.History)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{
		"        | crane | ....e |",
		"        | speed | SpEE. |",
	}, lines)
}

func TestLegend(t *testing.T) {
	used := game.UsedLetters{}
	used.Update("crane", game.Score("crane", "sheep"))

	assert.Equal(t, "B D E F G H I J K L M O P Q S T U V W X Y Z", Renderer{}.Legend(used))

	colored := Renderer{Color: true}.Legend(used)
	assert.True(t, strings.HasPrefix(colored, "B "+Tile('d', "")+" "+Tile('e', game.MarkPresent)))
	assert.NotContains(t, colored, "A")
}
