package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/armadachess/armada/internal/errors"
)

// Move notation is two tokens of file letter plus 1-indexed rank number:
// "a1 a3". Rank numbers below 1 are legal (the board is unbounded), so
// "a0" and "a-41" name squares behind white's original back rank.

// FormatCoord renders a coordinate in display notation; rank 0 file 0 is
// "a1".
func FormatCoord(c Coord) string {
	return fmt.Sprintf("%c%d", byte('a')+byte(c.File), AddSat(c.Rank, 1))
}

// ParseCoord parses display notation back into a coordinate.
// ParseCoord(FormatCoord(c)) == c for every coordinate with an in-range
// file.
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 {
		return Coord{}, errors.Wrapf(errors.ErrBadNotation, "%q", s)
	}
	file := int(s[0]) - 'a'
	if file < 0 || file >= NumFiles {
		return Coord{}, errors.Wrapf(errors.ErrBadNotation, "%q: bad file letter", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coord{}, errors.Wrapf(errors.ErrBadNotation, "%q: bad rank number", s)
	}
	return Coord{Rank: rank - 1, File: file}, nil
}

// ParseMove parses a two-token move command like "e2 e4".
func ParseMove(s string) (from, to Coord, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Coord{}, Coord{}, errors.Wrapf(errors.ErrBadNotation,
			"%q: want two squares", s)
	}
	if from, err = ParseCoord(fields[0]); err != nil {
		return Coord{}, Coord{}, err
	}
	if to, err = ParseCoord(fields[1]); err != nil {
		return Coord{}, Coord{}, err
	}
	return from, to, nil
}
