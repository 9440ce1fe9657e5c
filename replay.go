package chess

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// StepStatus is the outcome of applying one token.
type StepStatus uint8

const (
	// StepApplied means the token was parsed, resolved and played.
	StepApplied StepStatus = iota
	// StepParseFailed means the token is not valid SAN.
	StepParseFailed
	// StepUnresolved means no piece could be found to make the move.
	StepUnresolved
)

func (s StepStatus) String() string {
	switch s {
	case StepApplied:
		return "applied"
	case StepParseFailed:
		return "parse failed"
	case StepUnresolved:
		return "unresolved"
	}
	return "unknown"
}

// StepResult is the explicit result of playing one token. The replay driver
// inspects Status to decide whether to continue.
type StepResult struct {
	Status   StepStatus
	SAN      SANMove
	Move     Move     // valid when Status is StepApplied
	Position Position // position after the move, or the input position on failure
	Err      error    // nil when Status is StepApplied
}

// Step plays a single SAN token for turn on pos. It never panics on bad
// input; failures are reported through the result's Status and Err.
func Step(pos Position, turn Color, token string) StepResult {
	m, err := ParseSAN(token)
	if err != nil {
		return StepResult{Status: StepParseFailed, Position: pos, Err: err}
	}
	if m.Castle != NoCastle {
		return StepResult{
			Status:   StepApplied,
			SAN:      m,
			Move:     castlingMove(m.Castle, turn),
			Position: Castling(pos, m.Castle, turn),
		}
	}
	from, err := ResolveSource(m, pos, turn)
	if err != nil {
		return StepResult{Status: StepUnresolved, SAN: m, Position: pos, Err: err}
	}
	return StepResult{
		Status:   StepApplied,
		SAN:      m,
		Move:     Move{From: from, To: m.To, Promotion: m.Promotion},
		Position: Apply(pos, m, from, turn),
	}
}

// Replayer reconstructs position histories from SAN token streams.
// A Replayer holds only configuration and may be shared between goroutines.
type Replayer struct {
	start  Position
	turn   Color
	logger *zap.Logger
}

// NewReplayer returns a replayer that starts from the standard starting
// position with white to move unless options say otherwise.
//
// Example:
//
//	r := NewReplayer(WithStart(pos, Black), WithLogger(logger))
//	h := r.Replay(Tokens(movetext))
func NewReplayer(options ...func(*Replayer)) *Replayer {
	r := &Replayer{
		start:  StartingPosition(),
		turn:   White,
		logger: zap.NewNop(),
	}
	for _, f := range options {
		if f != nil {
			f(r)
		}
	}
	return r
}

// WithStart sets the initial position and side to move.
func WithStart(pos Position, turn Color) func(*Replayer) {
	return func(r *Replayer) {
		r.start = pos
		if turn == White || turn == Black {
			r.turn = turn
		}
	}
}

// WithLogger sets the logger used to report where a replay stopped.
func WithLogger(logger *zap.Logger) func(*Replayer) {
	return func(r *Replayer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Replay plays tokens in order and returns the history of positions reached.
// Replay stops at the first token that cannot be parsed or resolved and
// returns what was built up to that point; the reason is available from
// History.Err. It never returns an error of its own.
func (r *Replayer) Replay(tokens iter.Seq[string]) *History {
	h := &History{initial: r.start, startTurn: r.turn}
	pos, turn := r.start, r.turn
	ply := 0
	for token := range tokens {
		res := Step(pos, turn, token)
		if res.Status != StepApplied {
			h.err = &MoveError{Ply: ply, Token: token, Err: res.Err}
			r.logger.Info("replay stopped",
				zap.Int("ply", ply+1),
				zap.String("token", token),
				zap.Stringer("status", res.Status),
				zap.Error(res.Err),
			)
			break
		}
		h.positions = append(h.positions, res.Position)
		h.moves = append(h.moves, res.Move)
		h.tokens = append(h.tokens, token)
		pos, turn = res.Position, turn.Other()
		ply++
	}
	r.logger.Debug("replay finished",
		zap.Int("plies", h.Len()),
		zap.Bool("completed", h.Completed()),
	)
	return h
}

// ReplayMoveText tokenizes movetext and replays it.
func (r *Replayer) ReplayMoveText(movetext string) *History {
	return r.Replay(Tokens(movetext))
}

// Replay replays tokens from initial with white to move.
//
// Example:
//
//	h := Replay([]string{"e4", "e5", "Nf3"}, StartingPosition())
//	fmt.Println(h.Len()) // 3
func Replay(tokens []string, initial Position) *History {
	return NewReplayer(WithStart(initial, White)).Replay(slices.Values(tokens))
}
