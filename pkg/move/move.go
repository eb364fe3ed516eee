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

package move

import (
	"errors"
	"fmt"
	"strings"

	"laptudirm.com/x/rookie/pkg/board"
)

// ErrFormat is returned when a move string does not decode into two
// coordinates.
var ErrFormat = errors.New("move is not in correct format: [start_rank, start_file]-[end_rank, end_file]")

// Raw is a parsed move which carries no information about the pieces on
// its squares.
type Raw struct {
	From board.Coordinate
	To   board.Coordinate
}

func (raw Raw) String() string {
	return fmt.Sprintf("%s-%s", raw.From, raw.To)
}

// Parse decodes a move of the form (rank,file)-(rank,file). Only the
// characters at offsets 1 and 3 of each half are read; the brackets and
// separators around them are skipped. Bounds are not checked here.
func Parse(movstr string) (Raw, error) {
	halves := strings.Split(movstr, "-")
	if len(halves) != 2 {
		return Raw{}, ErrFormat
	}

	from, err := parseCoordinate(halves[0])
	if err != nil {
		return Raw{}, err
	}

	to, err := parseCoordinate(halves[1])
	if err != nil {
		return Raw{}, err
	}

	return Raw{From: from, To: to}, nil
}

func parseCoordinate(token string) (board.Coordinate, error) {
	if len(token) < 4 {
		return board.Coordinate{}, fmt.Errorf("%w: %q is too short", ErrFormat, token)
	}

	rank, file := token[1], token[3]
	if !isDigit(rank) || !isDigit(file) {
		return board.Coordinate{}, fmt.Errorf("%w: %q has no rank and file digits", ErrFormat, token)
	}

	return board.Coordinate{Rank: int(rank - '0'), File: int(file - '0')}, nil
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}
