package mouse

import (
	"testing"

	"github.com/hadak-labs/micromouse-sim/direction"
	"github.com/stretchr/testify/require"
)

func TestResetDefaults(t *testing.T) {
	m := New()
	require.Equal(t, SemiPosition{X: 1, Y: 1}, m.Position())
	require.Equal(t, direction.N, m.Heading())

	x, y := m.Position().ToCell()
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
}

func TestResetAfterMutation(t *testing.T) {
	m := New()
	m.SetPosition(SemiPosition{X: 7, Y: 3})
	m.SetHeading(direction.SE)
	m.Reset()
	require.Equal(t, SemiPosition{X: 1, Y: 1}, m.Position())
	require.Equal(t, direction.N, m.Heading())
}
