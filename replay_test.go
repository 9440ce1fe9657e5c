package chess

import (
	"errors"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplayOneSnapshotPerToken(t *testing.T) {
	tokens := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	h := Replay(tokens, StartingPosition())

	require.Equal(t, len(tokens), h.Len())
	require.True(t, h.Completed())
	require.NoError(t, h.Err())

	seen := make(map[Position]bool)
	for _, pos := range h.Positions() {
		seen[pos] = true
	}
	assert.Len(t, seen, len(tokens), "every snapshot must be distinct")

	last := h.Last()
	assert.Equal(t, WhiteBishop, last.Piece(NewSquare(3, 1)))
	assert.False(t, last.Occupied(F1))
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", last.String())
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}, h.UCI())
	assert.Equal(t, tokens, h.Tokens())
}

func TestReplayStopsAtFirstBadToken(t *testing.T) {
	tokens := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "Zx9"}
	h := Replay(tokens, StartingPosition())

	require.Equal(t, 5, h.Len())
	require.False(t, h.Completed())

	var moveErr *MoveError
	require.True(t, errors.As(h.Err(), &moveErr))
	assert.Equal(t, 5, moveErr.Ply)
	assert.Equal(t, "Zx9", moveErr.Token)
	assert.True(t, errors.Is(h.Err(), ErrInvalidSAN))
}

func TestReplayStopsAtUnresolvedMove(t *testing.T) {
	h := Replay([]string{"e4", "e5", "Ke3", "Nc6"}, StartingPosition())

	assert.Equal(t, 2, h.Len())
	assert.ErrorIs(t, h.Err(), ErrUnresolvedSource)
	assert.Contains(t, h.Err().Error(), "move 3 (Ke3)")
}

func TestReplayIsDeterministic(t *testing.T) {
	tokens := TokenList(SplitMoveText(readFixture(t, "opera_game.pgn")))
	first := Replay(tokens, StartingPosition())
	second := Replay(tokens, StartingPosition())

	assert.Equal(t, first.Positions(), second.Positions())
	assert.Equal(t, first.Moves(), second.Moves())
}

func TestReplayEmpty(t *testing.T) {
	h := Replay(nil, StartingPosition())
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Completed())
	assert.Equal(t, StartingPosition(), h.Last())
}

func TestReplayWithStart(t *testing.T) {
	pos := NewPosition(map[Square]Piece{E1: WhiteKing, E8: BlackKing, D2: BlackPawn})
	r := NewReplayer(WithStart(pos, Black))
	h := r.Replay(slices.Values([]string{"d1=Q", "Kxd1"}))

	require.Equal(t, 2, h.Len(), "replay stopped: %v", h.Err())
	assert.Equal(t, Black, h.StartTurn())
	assert.Equal(t, WhiteKing, h.Last().Piece(D1))
	assert.Equal(t, 2, h.Last().Len())
	assert.Equal(t, []string{"d2d1q", "e1d1"}, h.UCI())
}

func TestReplayLogsWhereItStopped(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewReplayer(WithLogger(zap.New(core)))
	r.ReplayMoveText("1. e4 e5 2. Ke3 Nc6")

	entries := logs.FilterMessage("replay stopped").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["ply"])
	assert.Equal(t, "unresolved", fields["status"])
}

func TestStepStatuses(t *testing.T) {
	pos := StartingPosition()

	res := Step(pos, White, "Nf3")
	assert.Equal(t, StepApplied, res.Status)
	assert.NoError(t, res.Err)
	assert.Equal(t, Move{From: G1, To: F3, Promotion: NoPieceType}, res.Move)

	res = Step(pos, White, "Zx9")
	assert.Equal(t, StepParseFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrInvalidSAN)
	assert.Equal(t, pos, res.Position)

	res = Step(pos, White, "Nd4")
	assert.Equal(t, StepUnresolved, res.Status)
	assert.ErrorIs(t, res.Err, ErrUnresolvedSource)
	assert.Equal(t, pos, res.Position)
}

func TestReplayEnPassantIsNotResolved(t *testing.T) {
	h := NewReplayer().ReplayMoveText(SplitMoveText(readFixture(t, "en_passant.pgn")))

	assert.Equal(t, 4, h.Len())
	var moveErr *MoveError
	require.ErrorAs(t, h.Err(), &moveErr)
	assert.Equal(t, "exd6", moveErr.Token)
	assert.Equal(t, 4, moveErr.Ply)
}

// The Opera Game only contains moves that geometry alone resolves
// correctly, so a full move generator must agree with every snapshot.
func TestReplayAgreesWithMoveGenerators(t *testing.T) {
	tokens := TokenList(SplitMoveText(readFixture(t, "opera_game.pgn")))
	require.Len(t, tokens, 33)

	h := Replay(tokens, StartingPosition())
	require.True(t, h.Completed(), "replay stopped: %v", h.Err())

	ref := nchess.NewGame()
	board := dragontoothmg.ParseFen(StartFEN)
	for i, tok := range tokens {
		uci := h.Moves()[i].String()

		m, err := nchess.UCINotation{}.Decode(ref.Position(), uci)
		require.NoError(t, err, "reference rejected %s (%s)", uci, tok)
		require.NoError(t, ref.Move(m), "reference rejected %s (%s)", uci, tok)
		want := strings.Fields(ref.FEN())[0]
		assert.Equal(t, want, h.At(i).String(), "position after %s", tok)

		legal := board.GenerateLegalMoves()
		idx := slices.IndexFunc(legal, func(m dragontoothmg.Move) bool { return m.String() == uci })
		require.NotEqual(t, -1, idx, "%s (%s) is not a legal move", uci, tok)
		board.Apply(legal[idx])
	}
	assert.Equal(t, WhiteRook, h.Last().Piece(D8))
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("fixtures/pgns/" + name)
	require.NoError(t, err)
	s, err := DecodePGN(b)
	require.NoError(t, err)
	return s
}
