// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render draws the board of a match for humans.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/rookie/pkg/board"
	"laptudirm.com/x/rookie/pkg/game"
)

type Renderer interface {
	Render(w io.Writer, state *game.State) error
}

// Text renders the board as rows of piece characters framed by the turn
// number and the side to move.
type Text struct {
	Color bool
}

var (
	whitePiece  = color.New(color.FgHiWhite, color.Bold)
	blackPiece  = color.New(color.FgYellow)
	emptySquare = color.New(color.Faint)
)

func (text Text) Render(w io.Writer, state *game.State) error {
	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 10) + "\n")
	fmt.Fprintf(&buf, "Turn %d: Current player - %s\n", state.FullTurn(), state.Active)
	buf.WriteString(strings.Repeat("-", board.Size) + "\n")

	state.Board.Each(func(c board.Coordinate, p board.Piece) {
		buf.WriteString(text.piece(p) + " ")
		if c.File == board.Size-1 {
			buf.WriteByte('\n')
		}
	})

	buf.WriteString(strings.Repeat("-", board.Size) + "\n")
	buf.WriteString(strings.Repeat("=", 10) + "\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func (text Text) piece(p board.Piece) string {
	if !text.Color {
		return p.String()
	}

	switch {
	case p.IsEmpty():
		return emptySquare.Sprint(p)
	case p.Side == board.White:
		return whitePiece.Sprint(p)
	default:
		return blackPiece.Sprint(p)
	}
}
