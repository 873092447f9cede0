//go:build unit

package portrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Next(t *testing.T) {
	s := NewSource()

	assert.Equal(t, First, s.Next())
	assert.Equal(t, First+1, s.Next())
	assert.Equal(t, First+2, s.Peek())
}

func TestSource_ZeroValue(t *testing.T) {
	var s Source
	assert.Equal(t, First, s.Next())
}

func TestSource_Wraps(t *testing.T) {
	s := &Source{next: Last}

	assert.Equal(t, Last, s.Next())
	assert.Equal(t, First, s.Next())
}

func TestSource_Seed(t *testing.T) {
	t.Run("StaysInRange", func(t *testing.T) {
		for _, seed := range []uint64{0, 1, 0x3FFF, 0xFFFF_FFFF, 123456789} {
			s := NewSource()
			s.Seed(seed)
			p := s.Peek()
			assert.GreaterOrEqual(t, p, First, "seed %d", seed)
		}
	})

	t.Run("UsesLowBitsOnly", func(t *testing.T) {
		a, b := NewSource(), NewSource()
		a.Seed(0x0005)
		b.Seed(0x4005)
		assert.Equal(t, a.Peek(), b.Peek())
		assert.Equal(t, First^5, a.Peek())
	})
}
