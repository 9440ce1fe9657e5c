package chess

import (
	"errors"
	"testing"
)

func TestValidFEN(t *testing.T) {
	valid := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"4k3/P7/8/8/8/8/8/4K2R w K - 0 1",
		"8/8/8/8/8/8/8/k6K w - - 12 40",
		"r3k2r/8/8/8/8/8/8/R3K2R b Qk - 3 20",
	}
	for _, fen := range valid {
		if !ValidFEN(fen) {
			t.Errorf("expected %q to be valid", fen)
		}
	}

	invalid := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w kqKQ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKqq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i3 0 1",
	}
	for _, fen := range invalid {
		if ValidFEN(fen) {
			t.Errorf("expected %q to be invalid", fen)
		}
	}
}

func TestDecodeFEN(t *testing.T) {
	pos, turn, err := DecodeFEN("4k3/P7/8/8/8/8/8/4K2R b K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if turn != Black {
		t.Fatalf("expected black to move but got %s", turn.Name())
	}
	want := map[Square]Piece{E8: BlackKing, A7: WhitePawn, E1: WhiteKing, H1: WhiteRook}
	for sq, p := range want {
		if pos.Piece(sq) != p {
			t.Errorf("expected %s on %s but got %s", p, sq, pos.Piece(sq))
		}
	}
	if pos.Len() != len(want) {
		t.Fatalf("expected %d pieces but got %d", len(want), pos.Len())
	}

	start, turn, err := DecodeFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	if start != StartingPosition() || turn != White {
		t.Fatalf("start FEN decoded to %s %s", start, turn)
	}
}

func TestDecodeFENRejectsInvalid(t *testing.T) {
	_, _, err := DecodeFEN("not a fen")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Fatalf("expected ErrInvalidFEN but got %v", err)
	}
}

func TestEncodeFEN(t *testing.T) {
	h := Replay([]string{"e4"}, StartingPosition())
	got := EncodeFEN(h.Last(), h.TurnAt(0))
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got != want {
		t.Fatalf("expected %q but got %q", want, got)
	}
	if !ValidFEN(got) {
		t.Fatalf("encoded FEN %q does not validate", got)
	}
}
