package uci

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"id name Stockfish 16", Event{Type: EventID, Key: "name", Value: "Stockfish 16", Raw: "id name Stockfish 16"}},
		{"uciok", Event{Type: EventUCIOK, Raw: "uciok"}},
		{"  readyok  ", Event{Type: EventReadyOK, Raw: "readyok"}},
		{"bestmove e2e4", Event{Type: EventBestMove, Move: "e2e4", Raw: "bestmove e2e4"}},
		{"bestmove e7e8q ponder a2a1", Event{Type: EventBestMove, Move: "e7e8q", Ponder: "a2a1", Raw: "bestmove e7e8q ponder a2a1"}},
		{"info depth 3 score cp 12", Event{Type: EventInfo, Raw: "info depth 3 score cp 12"}},
		{"option name Hash type spin", Event{Type: EventUnknown, Raw: "option name Hash type spin"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "   ", "id name", "bestmove"} {
		_, err := ParseLine(bad)
		assert.Error(t, err, "ParseLine(%q)", bad)
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	r := NewReader(strings.NewReader("\nuciok\n\n\nreadyok\n"))
	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, EventUCIOK, ev.Type)
	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, EventReadyOK, ev.Type)
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseInfoScore(t *testing.T) {
	tests := []struct {
		line string
		want Score
		ok   bool
	}{
		{"info depth 10 score cp -42 nodes 1000", Score{Kind: Centipawns, Value: -42}, true},
		{"info depth 20 score mate 3 pv h5f7", Score{Kind: Mate, Value: 3}, true},
		{"info depth 1 score mate 0", Score{Kind: Mate, Value: -1}, true},
		{"info depth 5 score lowerbound 3", Score{}, false},
		{"info string hello", Score{}, false},
	}
	for _, tt := range tests {
		got, ok := parseInfoScore(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestWinPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, Score{Kind: Centipawns}.WinPercentage(), 1e-9)
	assert.InDelta(t, 62.2459, Score{Kind: Centipawns, Value: 100}.WinPercentage(), 1e-3)
	assert.InDelta(t, 37.7541, Score{Kind: Centipawns, Value: -100}.WinPercentage(), 1e-3)
	assert.Equal(t, 99.0, Score{Kind: Centipawns, Value: 5000}.WinPercentage())
	assert.Equal(t, 1.0, Score{Kind: Centipawns, Value: -5000}.WinPercentage())
	assert.Equal(t, 99.0, Score{Kind: Mate, Value: 2}.WinPercentage())
	assert.Equal(t, 1.0, Score{Kind: Mate, Value: -2}.WinPercentage())
	assert.Equal(t, "cp 15", Score{Kind: Centipawns, Value: 15}.String())
	assert.Equal(t, "mate -2", Score{Kind: Mate, Value: -2}.String())
}
