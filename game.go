package chess

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// A Outcome is the result of a game as recorded in its Result tag.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Game is a game record together with the history of positions replayed
// from its movetext.
type Game struct {
	tagPairs TagPairs
	startFEN string // empty for the standard starting position
	start    Position
	turn     Color
	moveText string
	history  *History
	logger   *zap.Logger
}

// NewGame returns a game replayed from the given options. Without options
// it is an empty game in the standard starting position.
//
// Example:
//
//	// Game from movetext
//	game := NewGame(MoveText("1. e4 e5 2. Nf3 Nc6"))
//
//	// Game from FEN
//	opt, _ := FEN("8/4P3/8/8/8/8/8/k6K w - - 0 1")
//	game := NewGame(opt, MoveText("e8=Q"))
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		tagPairs: make(TagPairs),
		start:    StartingPosition(),
		turn:     White,
		logger:   zap.NewNop(),
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	r := NewReplayer(WithStart(g.start, g.turn), WithLogger(g.logger))
	g.history = r.ReplayMoveText(g.moveText)
	return g
}

// PGN reads a single PGN game and returns a function that loads its tag
// pairs and movetext into a game. A FEN tag, when present, sets the initial
// position. The returned function is designed to be used in the NewGame
// constructor.
//
// Tagless movetext such as "1. e4 e5 *" is accepted. An error is returned
// if nothing resembling a game is found or the FEN tag is invalid.
func PGN(r io.Reader) (func(*Game), error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content, err := DecodePGN(raw)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == string(NoOutcome) {
		return func(*Game) {}, nil
	}

	var tags TagPairs
	moveText := content
	if ValidPGN(content) {
		tags = ParseTagPairs(content)
		moveText = tagPairRe.ReplaceAllString(SplitMoveText(content), " ")
	} else if len(TokenList(content)) == 0 {
		return nil, ErrNoGameFound
	}

	var fenOpt func(*Game)
	if v, ok := tags["FEN"]; ok {
		if fenOpt, err = FEN(v); err != nil {
			return nil, fmt.Errorf("FEN tag: %w", err)
		}
	}

	return func(g *Game) {
		if fenOpt != nil {
			fenOpt(g)
		}
		maps.Copy(g.tagPairs, tags)
		g.moveText = moveText
	}, nil
}

// FEN takes a string and returns a function that sets the game's initial
// position and side to move. The returned function is designed to be used
// in the NewGame constructor.
func FEN(fen string) (func(*Game), error) {
	pos, turn, err := DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.start = pos
		g.turn = turn
		g.startFEN = strings.Join(strings.Fields(fen), " ")
	}, nil
}

// MoveText returns a Game option that sets the movetext to replay.
func MoveText(movetext string) func(*Game) {
	return func(g *Game) {
		g.moveText = movetext
	}
}

// WithGameLogger returns a Game option that sets the logger used while
// replaying.
func WithGameLogger(logger *zap.Logger) func(*Game) {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// History returns the replayed history.
func (g *Game) History() *History {
	return g.history
}

// Cursor returns a new cursor over the game's history.
func (g *Game) Cursor() *Cursor {
	return g.history.Cursor()
}

// StartFEN returns the FEN the game started from, or "" for the standard
// starting position.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// TagPairs returns a copy of the game's tag pairs.
func (g *Game) TagPairs() TagPairs {
	return g.tagPairs.Clone()
}

// GetTagPair returns the tag pair for the given key or "" if it is not present.
func (g *Game) GetTagPair(k string) string {
	return g.tagPairs[k]
}

// Info returns the display summary of the game's tags.
func (g *Game) Info() GameInfo {
	return g.tagPairs.Info()
}

// Outcome returns the result recorded in the Result tag, or NoOutcome.
func (g *Game) Outcome() Outcome {
	switch o := Outcome(g.tagPairs["Result"]); o {
	case WhiteWon, BlackWon, Draw:
		return o
	}
	return NoOutcome
}
