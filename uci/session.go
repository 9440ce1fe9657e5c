package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var errStdoutClosed = errors.New("uci: engine stdout closed")

// Options are the engine options set during the handshake. Zero values
// leave the engine defaults alone.
type Options struct {
	Threads int
	Hash    int // MB
}

// Limits bound a search. When both are zero the search runs for one second.
type Limits struct {
	Depth    int
	MoveTime int // milliseconds
}

func (l Limits) goCommand() string {
	var sb strings.Builder
	sb.WriteString("go")
	if l.Depth > 0 {
		fmt.Fprintf(&sb, " depth %d", l.Depth)
	}
	if l.MoveTime > 0 {
		fmt.Fprintf(&sb, " movetime %d", l.MoveTime)
	}
	if l.Depth <= 0 && l.MoveTime <= 0 {
		sb.WriteString(" movetime 1000")
	}
	return sb.String()
}

// Position is the position an engine is asked to search: a start FEN, or
// the standard starting position when FEN is empty, followed by moves in
// coordinate notation.
type Position struct {
	FEN   string
	Moves []string
}

// Command returns the "position" command for p.
func (p Position) Command() string {
	return PositionCommand(p.FEN, p.Moves)
}

// WhiteToMove reports whether white is to move after all of p's moves.
func (p Position) WhiteToMove() bool {
	white := true
	if fields := strings.Fields(p.FEN); len(fields) >= 2 {
		white = fields[1] != "b"
	}
	if len(p.Moves)%2 == 1 {
		white = !white
	}
	return white
}

// PositionCommand builds a "position startpos|fen ... moves ..." command.
func PositionCommand(startFEN string, moves []string) string {
	var sb strings.Builder
	sb.WriteString("position ")
	if startFEN == "" {
		sb.WriteString("startpos")
	} else {
		sb.WriteString("fen ")
		sb.WriteString(startFEN)
	}
	if len(moves) > 0 {
		sb.WriteString(" moves ")
		sb.WriteString(strings.Join(moves, " "))
	}
	return sb.String()
}

// Evaluation is the outcome of a search.
type Evaluation struct {
	Score    Score // from white's point of view
	BestMove string
	Ponder   string
}

// stopTimeout bounds how long a cancelled search may take to report its
// best move after "stop".
const stopTimeout = 2 * time.Second

// Session runs searches on an engine. It serves one caller at a time; the
// caller serialises Handshake and Evaluate.
type Session struct {
	engine *Engine
	events chan Event
	err    error // set before events is closed
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger

	// searching is set between "go" and the matching bestmove. A search
	// still running when Evaluate starts is finished off first so its
	// output is not mistaken for the new one.
	searching bool
}

// StartSession launches a UCI engine and starts reading its output.
func StartSession(ctx context.Context, path string, args ...string) (*Session, error) {
	engine, err := Start(ctx, path, args...)
	if err != nil {
		return nil, err
	}
	return newSession(engine), nil
}

// NewSession runs a session over an arbitrary pair of streams: commands are
// written to w and engine output is read from r.
func NewSession(w io.Writer, r io.Reader) *Session {
	return newSession(&Engine{in: w, out: r})
}

func newSession(engine *Engine) *Session {
	s := &Session{
		engine: engine,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
		logger: zap.NewNop(),
	}
	go s.pump(engine.Reader())
	return s
}

// pump forwards engine output to s.events until the output ends or the
// session is closed.
func (s *Session) pump(r *Reader) {
	defer close(s.events)
	for {
		event, err := r.Next()
		if err != nil {
			s.err = err
			return
		}
		select {
		case s.events <- event:
		case <-s.done:
			return
		}
	}
}

// SetLogger sets the logger used to trace the conversation with the engine.
func (s *Session) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Close terminates the engine and stops reading its output.
func (s *Session) Close() error {
	if s == nil || s.engine == nil {
		return nil
	}
	s.once.Do(func() { close(s.done) })
	return s.engine.Close()
}

// Stderr returns the engine's stderr reader for diagnostics.
func (s *Session) Stderr() io.Reader {
	if s == nil || s.engine == nil {
		return nil
	}
	return s.engine.Stderr()
}

func (s *Session) send(format string, args ...any) error {
	cmd := fmt.Sprintf(format, args...)
	s.logger.Debug("uci send", zap.String("cmd", cmd))
	return s.engine.Send(cmd)
}

// Handshake runs the standard UCI handshake and applies opts.
func (s *Session) Handshake(ctx context.Context, opts Options) error {
	if err := s.send("uci"); err != nil {
		return err
	}
	if _, err := s.waitFor(ctx, EventUCIOK); err != nil {
		return fmt.Errorf("waiting for uciok: %w", err)
	}
	if opts.Threads > 0 {
		if err := s.send("setoption name Threads value %d", opts.Threads); err != nil {
			return err
		}
	}
	if opts.Hash > 0 {
		if err := s.send("setoption name Hash value %d", opts.Hash); err != nil {
			return err
		}
	}
	if err := s.send("isready"); err != nil {
		return err
	}
	if _, err := s.waitFor(ctx, EventReadyOK); err != nil {
		return fmt.Errorf("waiting for readyok: %w", err)
	}
	return nil
}

// Evaluate searches pos within limits and returns the last reported score,
// normalised to white's point of view, together with the best move. When
// ctx ends first the search is stopped and its remaining output discarded.
func (s *Session) Evaluate(ctx context.Context, pos Position, limits Limits) (Evaluation, error) {
	if s.searching {
		if err := s.finishSearch(ctx); err != nil {
			return Evaluation{}, fmt.Errorf("previous search: %w", err)
		}
	}
	if err := s.send("%s", pos.Command()); err != nil {
		return Evaluation{}, err
	}
	if err := s.send("%s", limits.goCommand()); err != nil {
		return Evaluation{}, err
	}
	s.searching = true

	var last *Score
	for {
		event, err := s.next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.stopSearch()
			}
			return Evaluation{}, err
		}
		if event.Type == EventInfo {
			if score, ok := parseInfoScore(event.Raw); ok {
				last = &score
			}
			continue
		}
		if event.Type != EventBestMove {
			continue
		}
		s.searching = false
		if last == nil {
			return Evaluation{BestMove: event.Move}, errors.New("uci: no score in engine output")
		}
		ev := Evaluation{Score: *last, BestMove: event.Move, Ponder: event.Ponder}
		if !pos.WhiteToMove() {
			ev.Score = ev.Score.flip()
		}
		s.logger.Debug("uci evaluation",
			zap.Stringer("score", ev.Score),
			zap.String("bestmove", ev.BestMove),
		)
		return ev, nil
	}
}

// stopSearch interrupts the running search and consumes its output up to
// the bestmove that ends it. If the engine does not answer in time the
// search stays marked as running and the next Evaluate finishes it.
func (s *Session) stopSearch() {
	if err := s.send("stop"); err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := s.finishSearch(ctx); err != nil {
		s.logger.Warn("uci search did not stop", zap.Error(err))
	}
}

func (s *Session) finishSearch(ctx context.Context) error {
	if _, err := s.waitFor(ctx, EventBestMove); err != nil {
		return err
	}
	s.searching = false
	return nil
}

func (s *Session) waitFor(ctx context.Context, want EventType) (Event, error) {
	for {
		event, err := s.next(ctx)
		if err != nil || event.Type == want {
			return event, err
		}
	}
}

func (s *Session) next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case <-s.done:
		return Event{}, ErrEngineClosed
	case event, ok := <-s.events:
		if ok {
			return event, nil
		}
		if s.err != nil && !errors.Is(s.err, io.EOF) {
			return Event{}, s.err
		}
		return Event{}, errStdoutClosed
	}
}
