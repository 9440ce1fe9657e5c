/*
Package chess replays chess game records written in Standard Algebraic
Notation (SAN) into a sequence of board positions. It resolves which piece
moved from geometry and occupancy alone, without generating legal moves,
which makes it tolerant of non-standard records.

Example usage:

	// Load a game from PGN
	opt, err := PGN(file)
	if err != nil {
	    log.Fatal(err)
	}
	game := NewGame(opt)

	// Walk the positions
	cur := game.Cursor()
	for cur.Next() {
	    fmt.Println(cur.Label(), cur.Position())
	}
*/
package chess

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	tagPresenceRe = regexp.MustCompile(`\[.+]`)
	moveNumberRe  = regexp.MustCompile(`\d+\.`)
	tagPairRe     = regexp.MustCompile(`\[([A-Za-z0-9_]+)\s+"((?:[^"\\]|\\.)*)"\s*\]`)
)

// ValidPGN reports whether content looks like a PGN game: it needs at least
// one tag pair and one move number.
func ValidPGN(content string) bool {
	return tagPresenceRe.MatchString(content) && moveNumberRe.MatchString(content)
}

// SplitMoveText returns the movetext section of a PGN game, which follows
// the first blank line. Content without a blank line is returned unchanged.
func SplitMoveText(content string) string {
	if _, after, found := strings.Cut(content, "\n\n"); found {
		return after
	}
	return content
}

// DecodePGN converts raw PGN bytes to a string. UTF-8 input (with or without
// a byte order mark) is used as is; anything else is read as Windows-1252,
// the usual encoding of older PGN databases. Line endings are normalised to
// "\n".
func DecodePGN(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(data) {
		reader := transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
		decoded, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("chess: decode PGN: %w", err)
		}
		data = decoded
	}
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n"), nil
}

// TagPairs represents a collection of PGN tag pairs.
type TagPairs map[string]string

// ParseTagPairs collects every [Key "Value"] pair in content. Later
// duplicates overwrite earlier ones.
func ParseTagPairs(content string) TagPairs {
	tags := make(TagPairs)
	for _, m := range tagPairRe.FindAllStringSubmatch(content, -1) {
		tags[m[1]] = strings.ReplaceAll(m[2], `\"`, `"`)
	}
	return tags
}

// Clone returns a copy of the tag pairs.
func (t TagPairs) Clone() TagPairs {
	if t == nil {
		return make(TagPairs)
	}
	return maps.Clone(t)
}

const notAvailable = "N/A"

// GameInfo is the summary shown alongside a replayed game.
type GameInfo struct {
	White    string `json:"white"`
	WhiteElo string `json:"white_elo"`
	Black    string `json:"black"`
	BlackElo string `json:"black_elo"`
	Date     string `json:"date"`
	Event    string `json:"event"`
	Winner   string `json:"winner"`
}

// Info extracts the GameInfo from the tag pairs. Missing values are "N/A".
// Player names are shortened to their first three words with commas
// removed, since name formatting in PGN files varies wildly.
func (t TagPairs) Info() GameInfo {
	info := GameInfo{
		White:    notAvailable,
		WhiteElo: notAvailable,
		Black:    notAvailable,
		BlackElo: notAvailable,
		Date:     notAvailable,
		Event:    notAvailable,
		Winner:   notAvailable,
	}
	if v, ok := t["White"]; ok {
		info.White = shortName(v)
	}
	if v, ok := t["Black"]; ok {
		info.Black = shortName(v)
	}
	if v, ok := t["WhiteElo"]; ok {
		info.WhiteElo = v
	}
	if v, ok := t["BlackElo"]; ok {
		info.BlackElo = v
	}
	if v, ok := t["Date"]; ok {
		info.Date = v
	}
	if v, ok := t["Event"]; ok {
		info.Event = v
	}
	if v, ok := t["Result"]; ok {
		switch Outcome(v) {
		case WhiteWon:
			info.Winner = "White"
		case BlackWon:
			info.Winner = "Black"
		case Draw:
			info.Winner = "Draw"
		default:
			info.Winner = "Unknown"
		}
	}
	return info
}

func shortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, ",", "")
	}
	return strings.Join(parts, " ")
}
