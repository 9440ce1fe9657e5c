package chess

import (
	"iter"
	"regexp"
	"strings"
)

var (
	commentRe     = regexp.MustCompile(`\{[^}]*\}`)
	lineCommentRe = regexp.MustCompile(`;[^\n]*`)
	variationRe   = regexp.MustCompile(`\([^()]*\)`)
	resultRe      = regexp.MustCompile(`1-0|0-1|1/2-1/2|\*`)
	sanTokenRe    = regexp.MustCompile(`(?:\d+\.+\s*)?([KQRBNP]?[a-h]?[1-8]?x?[a-h][1-8](?:=[QRBN])?|O-O(?:-O)?)`)
)

// Tokens extracts the SAN tokens of a movetext in the order they appear.
// Comments, variations (including nested ones), move numbers and game
// termination markers are dropped. The returned sequence is lazy and may be
// ranged over any number of times; malformed movetext simply yields fewer
// tokens.
//
// Example:
//
//	for tok := range Tokens("1. e4 {best by test} e5 2. Nf3 (2. f4) Nc6 1-0") {
//	    fmt.Println(tok) // e4, e5, Nf3, Nc6
//	}
func Tokens(movetext string) iter.Seq[string] {
	text := stripMoveText(movetext)
	return func(yield func(string) bool) {
		rest := text
		for {
			loc := sanTokenRe.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}
			tok := strings.TrimSpace(rest[loc[2]:loc[3]])
			rest = rest[loc[1]:]
			if tok == "" {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// TokenList collects Tokens into a slice.
func TokenList(movetext string) []string {
	var tokens []string
	for tok := range Tokens(movetext) {
		tokens = append(tokens, tok)
	}
	return tokens
}

func stripMoveText(s string) string {
	s = commentRe.ReplaceAllString(s, " ")
	s = lineCommentRe.ReplaceAllString(s, " ")
	// Innermost variations go first so that nested ones disappear whole.
	for variationRe.MatchString(s) {
		s = variationRe.ReplaceAllString(s, " ")
	}
	return resultRe.ReplaceAllString(s, " ")
}
