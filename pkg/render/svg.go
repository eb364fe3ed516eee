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

package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"laptudirm.com/x/rookie/pkg/board"
	"laptudirm.com/x/rookie/pkg/game"
)

// DefaultSquareSize is the side of a square in pixels.
const DefaultSquareSize = 45

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a;fill-opacity:0.8"
)

var glyphs = [2][board.KindN]string{
	{"", "♙", "♘", "♗", "♖", "♕", "♔"},
	{"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// SVG renders the board as an SVG image, rank 0 at the top. The squares
// of the previous move are highlighted.
type SVG struct {
	SquareSize int
}

func (image SVG) Render(w io.Writer, state *game.State) error {
	size := image.SquareSize
	if size <= 0 {
		size = DefaultSquareSize
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size*board.Size, size*board.Size)

	textStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size*3/4)

	state.Board.Each(func(c board.Coordinate, p board.Piece) {
		x, y := c.File*size, c.Rank*size

		style := lightSquare
		if (c.Rank+c.File)%2 == 1 {
			style = darkSquare
		}
		canvas.Rect(x, y, size, size, style)

		if prev := state.Previous; prev != nil && (prev.From == c || prev.To == c) {
			canvas.Rect(x, y, size, size, highlight)
		}

		if !p.IsEmpty() {
			canvas.Text(x+size/2, y+size/2, glyph(p), textStyle)
		}
	})

	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func glyph(p board.Piece) string {
	if p.Kind >= board.KindN {
		return "?"
	}

	if p.Side == board.White {
		return glyphs[0][p.Kind]
	}

	return glyphs[1][p.Kind]
}
