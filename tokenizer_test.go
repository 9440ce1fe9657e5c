package chess

import (
	"slices"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		movetext string
		want     []string
	}{
		{
			name:     "plain movetext",
			movetext: "1. e4 e5 2. Nf3 Nc6 3. Bb5",
			want:     []string{"e4", "e5", "Nf3", "Nc6", "Bb5"},
		},
		{
			name:     "numbers glued to moves",
			movetext: "1.e4 e5 2.Nf3 2...Nc6",
			want:     []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:     "comments and results are dropped",
			movetext: "1. e4 {the king's pawn} e5 ; a line comment Nf6\n2. Qh5 1-0",
			want:     []string{"e4", "e5", "Qh5"},
		},
		{
			name:     "nested variations are dropped whole",
			movetext: "1. e4 (1. d4 d5 (1... Nf6 2. c4)) 1... c5 *",
			want:     []string{"e4", "c5"},
		},
		{
			name:     "check marks and promotions",
			movetext: "1. exd8=Q+ Kxd8 2. O-O-O+ O-O 3. Nbd2# 1/2-1/2",
			want:     []string{"exd8=Q", "Kxd8", "O-O-O", "O-O", "Nbd2"},
		},
		{
			name:     "comment between moves keeps them apart",
			movetext: "e4{x}e5",
			want:     []string{"e4", "e5"},
		},
		{
			name:     "nothing to extract",
			movetext: "{only a comment} 0-1",
			want:     nil,
		},
		{
			name:     "empty",
			movetext: "",
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenList(tt.movetext)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("TokenList(%q) = %q, want %q", tt.movetext, got, tt.want)
			}
		})
	}
}

func TestTokensIsRestartable(t *testing.T) {
	seq := Tokens("1. e4 e5 2. Nf3 Nc6")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) || len(first) != 4 {
		t.Fatalf("expected the same 4 tokens twice, got %q and %q", first, second)
	}
}

func TestTokensStopsEarly(t *testing.T) {
	n := 0
	for range Tokens("1. e4 e5 2. Nf3 Nc6") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2 tokens, got %d", n)
	}
}
