package uci

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Score kinds reported by engines.
const (
	Centipawns = "cp"
	Mate       = "mate"
)

// Score is an engine evaluation. Value is in centipawns for Centipawns and
// in moves for Mate.
type Score struct {
	Kind  string
	Value int
}

// String returns a stable text representation for comments and logging.
func (s Score) String() string {
	switch s.Kind {
	case Centipawns:
		return fmt.Sprintf("cp %d", s.Value)
	case Mate:
		return fmt.Sprintf("mate %d", s.Value)
	}
	return "unknown"
}

// WinPercentage converts the score into the chance, in percent, that the
// side it favours wins. It is always within [1, 99].
func (s Score) WinPercentage() float64 {
	var p float64
	switch s.Kind {
	case Mate:
		if s.Value > 0 {
			p = 99
		} else {
			p = 1
		}
	case Centipawns:
		p = 50 + 50*(2/(1+math.Exp(-0.5*float64(s.Value)/100))-1)
	default:
		p = 50
	}
	return math.Max(1, math.Min(99, p))
}

func (s Score) flip() Score {
	s.Value = -s.Value
	return s
}

// parseInfoScore reads the "score cp|mate N" part of an info line. Bound
// scores ("lowerbound", "upperbound") and lines without a score report false.
func parseInfoScore(line string) (Score, bool) {
	fields := strings.Fields(line)
	at := slices.Index(fields, "score")
	if at < 0 || at+2 >= len(fields) {
		return Score{}, false
	}
	kind := fields[at+1]
	if kind != Centipawns && kind != Mate {
		return Score{}, false
	}
	value, err := strconv.Atoi(fields[at+2])
	if err != nil {
		return Score{}, false
	}
	// mate 0: the side to move is already mated.
	if kind == Mate && value == 0 {
		value = -1
	}
	return Score{Kind: kind, Value: value}, true
}
