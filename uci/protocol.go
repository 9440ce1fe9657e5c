package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EventType classifies a line of engine output.
type EventType int

const (
	EventUnknown EventType = iota
	EventID
	EventUCIOK
	EventReadyOK
	EventInfo
	EventBestMove
)

var eventNames = [...]string{
	EventUnknown:  "unknown",
	EventID:       "id",
	EventUCIOK:    "uciok",
	EventReadyOK:  "readyok",
	EventInfo:     "info",
	EventBestMove: "bestmove",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return eventNames[EventUnknown]
	}
	return eventNames[t]
}

// Event is one line of engine output. Raw always holds the trimmed line.
type Event struct {
	Type   EventType
	Key    string // id name or id author
	Value  string
	Move   string // best move in coordinate notation
	Ponder string
	Raw    string
}

// ParseLine classifies a line of engine output. Lines with an unknown
// keyword are returned as EventUnknown rather than rejected, since engines
// print options and free text during the handshake.
func ParseLine(line string) (Event, error) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Event{}, errors.New("uci: empty line")
	}
	keyword, rest, _ := strings.Cut(raw, " ")
	rest = strings.TrimSpace(rest)

	ev := Event{Type: EventUnknown, Raw: raw}
	switch keyword {
	case "uciok":
		ev.Type = EventUCIOK
	case "readyok":
		ev.Type = EventReadyOK
	case "info":
		ev.Type = EventInfo
	case "id":
		key, value, ok := strings.Cut(rest, " ")
		if !ok {
			return Event{}, fmt.Errorf("uci: id without value: %q", raw)
		}
		ev.Type, ev.Key, ev.Value = EventID, key, strings.TrimSpace(value)
	case "bestmove":
		args := strings.Fields(rest)
		if len(args) == 0 {
			return Event{}, fmt.Errorf("uci: bestmove without move: %q", raw)
		}
		ev.Type, ev.Move = EventBestMove, args[0]
		if len(args) > 2 && args[1] == "ponder" {
			ev.Ponder = args[2]
		}
	}
	return ev, nil
}

// Reader turns engine output into events, one line at a time.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r, typically the engine's stdout.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the event for the next non-blank line. It blocks until one
// is available and returns io.EOF once the output ends.
func (r *Reader) Next() (Event, error) {
	for {
		line, err := r.br.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			return ParseLine(line)
		}
		if err != nil {
			return Event{}, err
		}
	}
}
