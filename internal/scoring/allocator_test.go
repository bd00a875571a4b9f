package scoring_test

import (
	"testing"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestStrokesReceived(t *testing.T) {
	t.Run("scratch player receives nothing", func(t *testing.T) {
		for si := 1; si <= 18; si++ {
			assert.Equal(t, 0, scoring.StrokesReceived(0, si))
		}
	})

	t.Run("handicap 18 receives one stroke everywhere", func(t *testing.T) {
		for si := 1; si <= 18; si++ {
			assert.Equal(t, 1, scoring.StrokesReceived(18, si))
		}
	})

	t.Run("handicap 19 receives a second stroke on the hardest hole", func(t *testing.T) {
		assert.Equal(t, 2, scoring.StrokesReceived(19, 1))
		assert.Equal(t, 1, scoring.StrokesReceived(19, 2))
		assert.Equal(t, 1, scoring.StrokesReceived(19, 18))
	})

	t.Run("handicap below 18 follows stroke index", func(t *testing.T) {
		assert.Equal(t, 1, scoring.StrokesReceived(10, 10))
		assert.Equal(t, 0, scoring.StrokesReceived(10, 11))
	})

	t.Run("negative handicap clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, scoring.StrokesReceived(-4, 1))
	})

	t.Run("fractional handicap floors", func(t *testing.T) {
		assert.Equal(t, 1, scoring.StrokesReceived(9.7, 9))
		assert.Equal(t, 0, scoring.StrokesReceived(9.7, 10))
	})

	t.Run("invalid stroke index yields zero", func(t *testing.T) {
		assert.Equal(t, 0, scoring.StrokesReceived(36, 0))
		assert.Equal(t, 0, scoring.StrokesReceived(36, 19))
		assert.Equal(t, 0, scoring.StrokesReceived(36, -1))
	})

	t.Run("bounded and non-decreasing over the WHS range", func(t *testing.T) {
		for si := 1; si <= 18; si++ {
			prev := 0
			for h := 0; h <= 54; h++ {
				got := scoring.StrokesReceived(float64(h), si)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 3)
				assert.GreaterOrEqual(t, got, prev, "handicap %d stroke index %d", h, si)
				prev = got
			}
		}
	})
}
