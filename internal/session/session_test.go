package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"laptudirm.com/x/rookie/pkg/board"
)

func run(t *testing.T, config Config, input string) string {
	t.Helper()

	var out bytes.Buffer
	session := New(config, strings.NewReader(input), &out)
	if err := session.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	return out.String()
}

func TestRunRetriesInvalidMoves(t *testing.T) {
	out := run(t, Config{}, strings.Join([]string{
		"(7, 4) - (8, 4)",
		"(0,4)-(1,4)",
		"(7,4)-(6,4)",
		"(0,4)-(1,4)",
		"quit",
		"n",
	}, "\n"))

	expected := []string{
		"New chess match",
		"Move [(7,4)-(8,4)] is not valid: move out of board range",
		"Move [(0,4)-(1,4)] is not valid: player [white] cannot move a piece owned by the opponent [black]",
		"[black] Enter move: ",
		"Turn 2: Current player - white",
		"Do you want to play again? (y/n): ",
	}

	for _, s := range expected {
		if !strings.Contains(out, s) {
			t.Fatalf("expected output to contain %q:\n%s", s, out)
		}
	}

	if n := strings.Count(out, "New chess match"); n != 1 {
		t.Fatalf("expected a single match but got %d", n)
	}
}

func TestRunPlayAgain(t *testing.T) {
	out := run(t, Config{}, "(7,4)-(6,4)\nresign\ny\n(7,4)-(6,4)\nquit\nN\n")

	if n := strings.Count(out, "New chess match"); n != 2 {
		t.Fatalf("expected two matches but got %d:\n%s", n, out)
	}

	if n := strings.Count(out, "Turn 1: Current player - black"); n != 2 {
		t.Fatalf("expected each match to start from the first turn:\n%s", out)
	}
}

func TestRunEndOfInput(t *testing.T) {
	out := run(t, Config{}, "(7,4)-(6,4)\n")

	if !strings.HasSuffix(out, "[black] Enter move: ") {
		t.Fatalf("expected the session to stop at the prompt:\n%s", out)
	}
}

func TestRunCustomBoard(t *testing.T) {
	config := Config{
		NewBoard: func() (*board.Board, error) {
			return board.Parse("____k___/________/________/________/________/________/____P___/____K___")
		},
	}

	out := run(t, config, "(6,4)-(4,4)\nquit\nn\n")
	if strings.Contains(out, "is not valid") {
		t.Fatalf("expected the pawn double step to be accepted:\n%s", out)
	}
}

func TestRunWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	run(t, Config{SVG: path}, "(7,4)-(6,4)\nquit\nn\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("expected an svg board but got:\n%s", data)
	}
}

func TestMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	session := New(Config{}, strings.NewReader("(7,4)-(6,4)\n"), &out)
	if err := session.Match(ctx); err == nil {
		t.Fatal("expected a cancelled match to return an error")
	}
}

func TestRunOverlongLine(t *testing.T) {
	input := strings.Repeat("x", 70000) + "\n(7,4)-(6,4)\nquit\n" + strings.Repeat("y", 5000) + "\nn\n"
	out := run(t, Config{}, input)

	if !strings.Contains(out, "Move [xxxxxxxxxxxxxxxx...] is not valid: input line is too long") {
		t.Fatalf("expected the long line to be rejected:\n%s", out)
	}

	if !strings.Contains(out, "Turn 1: Current player - black") {
		t.Fatalf("expected the move after the long line to be played:\n%s", out)
	}

	// a long answer to the play again question starts another match
	if n := strings.Count(out, "New chess match"); n != 2 {
		t.Fatalf("expected two matches but got %d", n)
	}
}
