package chess

import (
	"testing"

	"github.com/armadachess/armada/internal/errors"
	"github.com/armadachess/armada/internal/testutil"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		name string
		in   Coord
		want string
	}{
		{"origin", Coord{0, 0}, "a1"},
		{"h8", Coord{7, 7}, "h8"},
		{"e2", Coord{1, 4}, "e2"},
		{"rank zero", Coord{-1, 0}, "a0"},
		{"deep behind white", Coord{-42, 2}, "c-41"},
		{"far ahead", Coord{99, 5}, "f100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, FormatCoord(tt.in), tt.want)
		})
	}
}

func TestParseCoordRoundTrip(t *testing.T) {
	coords := []Coord{
		{0, 0}, {7, 7}, {1, 4}, {-1, 0}, {-42, 2}, {99, 5}, {-1000, 7},
	}
	for _, c := range coords {
		t.Run(FormatCoord(c), func(t *testing.T) {
			got, err := ParseCoord(FormatCoord(c))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, c)
		})
	}
}

func TestParseCoordErrors(t *testing.T) {
	bad := []string{"", "a", "i4", "e", "4e", "exx", "a1 "}
	for _, s := range bad {
		t.Run("bad "+s, func(t *testing.T) {
			_, err := ParseCoord(s)
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.Is(err, errors.ErrBadNotation))
		})
	}
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("e2 e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from, Coord{1, 4})
	testutil.AssertEqual(t, to, Coord{3, 4})

	from, to, err = ParseMove("  a0   a-5 ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from, Coord{-1, 0})
	testutil.AssertEqual(t, to, Coord{-6, 0})

	for _, s := range []string{"", "e2", "e2 e4 e5", "e2 i9"} {
		_, _, err := ParseMove(s)
		testutil.AssertError(t, err, "input %q", s)
	}
}
