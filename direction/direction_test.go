package direction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardinalRotationClosure(t *testing.T) {
	for _, d := range Cardinals() {
		require.Equal(t, d, RotateLeft(RotateRight(d)))
		require.Equal(t, d, RotateLeft(RotateLeft(RotateLeft(RotateLeft(d)))))
		require.Equal(t, d, Opposite(Opposite(d)))
	}
}

func TestFromCharToCharRoundTrip(t *testing.T) {
	for _, d := range Cardinals() {
		got, ok := FromChar(ToChar(d))
		require.True(t, ok)
		require.Equal(t, d, got)
	}
	_, ok := FromChar('q')
	require.False(t, ok)
}

func TestSemiRotationClosure(t *testing.T) {
	for _, d := range Semis() {
		cur := d
		for i := 0; i < 4; i++ {
			cur = RotateLeft90(cur)
		}
		require.Equal(t, d, cur, "rotateLeft90^4 must be identity")

		cur = d
		for i := 0; i < 8; i++ {
			cur = RotateLeft45(cur)
		}
		require.Equal(t, d, cur, "rotateLeft45^8 must be identity")

		require.Equal(t, RotateLeft90(RotateLeft90(d)), Rotate180(d))
		require.Equal(t, d, RotateLeft45(RotateRight45(d)))
		require.Equal(t, d, RotateLeft90(RotateRight90(d)))
	}
}

func TestIsDiagonalAndToCardinal(t *testing.T) {
	diagonals := map[Semi]bool{NE: true, NW: true, SE: true, SW: true}
	for _, d := range Semis() {
		require.Equal(t, diagonals[d], IsDiagonal(d))
		_, ok := ToCardinal(d)
		require.Equal(t, !diagonals[d], ok)
	}

	c, ok := ToCardinal(N)
	require.True(t, ok)
	require.Equal(t, North, c)
}

func TestDeltaUnitVectors(t *testing.T) {
	cases := map[Semi][2]int{
		E: {1, 0}, NE: {1, 1}, N: {0, 1}, NW: {-1, 1},
		W: {-1, 0}, SW: {-1, -1}, S: {0, -1}, SE: {1, -1},
	}
	for d, want := range cases {
		dx, dy := Delta(d)
		require.Equal(t, want[0], dx)
		require.Equal(t, want[1], dy)
	}
}

func TestSemisStartsAtEastRotatingLeft(t *testing.T) {
	order := Semis()
	require.Equal(t, E, order[0])
	for i := 1; i < len(order); i++ {
		require.Equal(t, order[i], RotateLeft45(order[i-1]))
	}
}
