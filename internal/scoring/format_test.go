package scoring_test

import (
	"testing"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStrokeplay(t *testing.T) {
	t.Run("full allowance needs no extra view", func(t *testing.T) {
		snap := newSnapshot(scoring.FormatStrokeplay).
			withStandardHoles().
			withParticipant("p1", "Alice", 10).
			build()
		assert.Nil(t, scoring.Compute(snap))
	})

	t.Run("adjusted allowance emits a comparison view", func(t *testing.T) {
		snap := newSnapshot(scoring.FormatStrokeplay).
			withStandardHoles().
			withParticipant("p1", "Alice", 10).
			score("p1", 1, 5).
			build()
		snap.Participants[0].PlayingHandicap = 9.5 // 95% allowance

		d := scoring.Compute(snap)
		require.NotNil(t, d)
		assert.Equal(t, "Net (Allowance)", d.Label)
		assert.False(t, d.HigherIsBetter)
		assert.False(t, d.IsTeamView)
		// Handicap 9.5 floors to 9, giving a stroke on SI 1.
		assert.Equal(t, 4, d.Results["p1"][1].Value)
	})
}

func TestGrossAndNetViews(t *testing.T) {
	snap := newSnapshot(scoring.FormatStrokeplay).
		withStandardHoles().
		withParticipant("p1", "Alice", 18).
		score("p1", 1, 5).
		score("p1", 10, 6).
		build()

	gross := scoring.GrossView(snap)
	require.Len(t, gross.Summaries, 1)
	assert.Equal(t, "5", gross.Summaries[0].Front)
	assert.Equal(t, "6", gross.Summaries[0].Back)
	assert.Equal(t, "11", gross.Summaries[0].Total)

	net := scoring.NetView(snap)
	assert.Equal(t, "9", net.Summaries[0].Total)
}

func TestEmptyRangesRenderPlaceholder(t *testing.T) {
	snap := newSnapshot(scoring.FormatStrokeplay).
		withStandardHoles().
		withParticipant("p1", "Alice", 0).
		score("p1", 1, 4).
		build()

	gross := scoring.GrossView(snap)
	require.Len(t, gross.Summaries, 1)
	assert.Equal(t, "4", gross.Summaries[0].Front)
	assert.Equal(t, scoring.NoScore, gross.Summaries[0].Back, "no back nine scores yet")

	empty := newSnapshot(scoring.FormatStrokeplay).
		withStandardHoles().
		withParticipant("p1", "Alice", 0).
		build()
	assert.Equal(t, scoring.NoScore, scoring.GrossView(empty).Summaries[0].Total)
}

func TestComputeStableford(t *testing.T) {
	t.Run("level par scores 36 under the default table", func(t *testing.T) {
		b := newSnapshot(scoring.FormatStableford).
			withStandardHoles().
			withParticipant("p1", "Alice", 0)
		for n := 1; n <= 18; n++ {
			b.score("p1", n, 4)
		}
		d := scoring.Compute(b.build())
		require.NotNil(t, d)
		assert.True(t, d.HigherIsBetter)
		require.Len(t, d.Summaries, 1)
		assert.Equal(t, "36", d.Summaries[0].Total)
		assert.Equal(t, 2, d.Results["p1"][7].Value)
		assert.Equal(t, scoring.KindPoints, d.Results["p1"][7].Kind)
	})

	t.Run("custom points table", func(t *testing.T) {
		b := newSnapshot(scoring.FormatStableford).
			withStandardHoles().
			withParticipant("p1", "Alice", 0)
		b.snap.Config.PointsTable = scoring.PointsTable{-1: 4, 0: 2, 1: 1}
		b.score("p1", 1, 3) // birdie
		d := scoring.Compute(b.build())
		require.NotNil(t, d)
		assert.Equal(t, 4, d.Results["p1"][1].Value)
	})

	t.Run("better than the lowest entry scores as the lowest entry", func(t *testing.T) {
		b := newSnapshot(scoring.FormatStableford).
			withHoles(scoring.Hole{Number: 1, Par: 5, StrokeIndex: 1}).
			withParticipant("p1", "Alice", 0)
		b.score("p1", 1, 1) // four under
		d := scoring.Compute(b.build())
		require.NotNil(t, d)
		assert.Equal(t, 5, d.Results["p1"][1].Value)
	})

	t.Run("picked up hole scores zero points", func(t *testing.T) {
		b := newSnapshot(scoring.FormatStableford).
			withStandardHoles().
			withParticipant("p1", "Alice", 0).
			pickup("p1", 1)
		d := scoring.Compute(b.build())
		require.NotNil(t, d)
		// Net double bogey is two over par.
		assert.Equal(t, 0, d.Results["p1"][1].Value)
	})
}

func TestComputeRotatingPartner(t *testing.T) {
	snap := newSnapshot(scoring.FormatRotatingPartner).
		withStandardHoles().
		withParticipant("p1", "Alice", 0).
		score("p1", 1, 4).
		build()

	d := scoring.Compute(snap)
	require.NotNil(t, d)
	assert.Empty(t, d.Results)
	assert.Empty(t, d.Summaries)
}

func TestComputeUnknownFormat(t *testing.T) {
	snap := newSnapshot(scoring.Format("CHIP_AND_PUTT")).withStandardHoles().build()
	assert.Nil(t, scoring.Compute(snap))
}
