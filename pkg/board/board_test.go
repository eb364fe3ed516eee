package board

import "testing"

func TestNewLayout(t *testing.T) {
	b := New()

	kinds := []Kind{Rook, Knight, Bishop, Queen, King, Empty, Empty, Empty}
	for file, kind := range kinds {
		black, _ := b.Get(Coordinate{Rank: 0, File: file})
		white, _ := b.Get(Coordinate{Rank: 7, File: file})

		if black.Kind != kind || white.Kind != kind {
			t.Fatalf("file %d: expected %s on both back ranks but got %s and %s", file, kind, black.Kind, white.Kind)
		}

		if kind != Empty && (black.Side != Black || white.Side != White) {
			t.Fatalf("file %d: expected black on rank 0 and white on rank 7 but got %s and %s", file, black.Side, white.Side)
		}
	}

	for rank := 1; rank < Size-1; rank++ {
		for file := 0; file < Size; file++ {
			if p, _ := b.Get(Coordinate{Rank: rank, File: file}); !p.IsEmpty() {
				t.Fatalf("square (%d,%d) expected empty but holds %s", rank, file, p)
			}
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	b := New()
	for _, c := range []Coordinate{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {9, 9}} {
		p, ok := b.Get(c)
		if ok || p != NoPiece {
			t.Fatalf("Get%s: expected (%s, false) but got (%s, %t)", c, NoPiece, p, ok)
		}
	}
}

func TestEachOrder(t *testing.T) {
	b := New()

	i := 0
	b.Each(func(c Coordinate, p Piece) {
		if c.Rank != i/Size || c.File != i%Size {
			t.Fatalf("square %d: expected (%d,%d) but got %s", i, i/Size, i%Size, c)
		}

		if expected, _ := b.Get(c); p != expected {
			t.Fatalf("square %s: expected %s but got %s", c, expected, p)
		}

		i++
	})

	if i != Size*Size {
		t.Fatalf("expected %d squares but visited %d", Size*Size, i)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	const start = "rnbqk___/________/________/________/________/________/________/RNBQK___"
	if layout := New().Layout(); layout != start {
		t.Fatalf("expected layout %s but got %s", start, layout)
	}

	b, err := Parse(start)
	if err != nil {
		t.Fatal(err)
	}

	if *b != *New() {
		t.Fatalf("parsed board does not match the starting board:\n%s", b.Layout())
	}
}

func TestParseErrors(t *testing.T) {
	layouts := []string{
		"",
		"rnbqk___/________",
		"rnbqk__/________/________/________/________/________/________/RNBQK___",
		"rnbqk__x/________/________/________/________/________/________/RNBQK___",
	}

	for _, layout := range layouts {
		if _, err := Parse(layout); err == nil {
			t.Fatalf("Parse(%q): expected an error", layout)
		}
	}
}

func TestPieceChar(t *testing.T) {
	tests := []struct {
		piece Piece
		char  byte
	}{
		{NoPiece, '_'},
		{NewPiece(King, White), 'K'},
		{NewPiece(King, Black), 'k'},
		{NewPiece(Pawn, White), 'P'},
		{NewPiece(Knight, Black), 'n'},
	}

	for _, test := range tests {
		if char := test.piece.Char(); char != test.char {
			t.Fatalf("%v: expected %c but got %c", test.piece, test.char, char)
		}

		p, err := ParsePiece(test.char)
		if err != nil || p != test.piece {
			t.Fatalf("ParsePiece(%c): expected %v but got %v (%v)", test.char, test.piece, p, err)
		}
	}
}

func TestSideOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White || NoSide.Other() != NoSide {
		t.Fatal("Side.Other does not flip white and black")
	}
}
