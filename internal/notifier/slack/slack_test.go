package slack

import (
	"context"
	"testing"

	"github.com/Ware71/CIAGA-sub001/internal/metrics"
	"github.com/Ware71/CIAGA-sub001/internal/round"
	"github.com/Ware71/CIAGA-sub001/internal/scoring"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackClient struct {
	calls []struct {
		channelID string
		options   []slackapi.MsgOption
	}
	err error
}

func (f *fakeSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.calls = append(f.calls, struct {
		channelID string
		options   []slackapi.MsgOption
	}{channelID, options})
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "123.456", nil
}

func testRound() *round.Round {
	return &round.Round{
		ID:         "r1",
		Name:       "Saturday Medal",
		CourseName: "Heathfield Links",
		Config:     scoring.FormatConfig{Format: scoring.FormatStableford},
	}
}

func TestSendRoundResult(t *testing.T) {
	fake := &fakeSlackClient{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(fake, "C123", m)

	ranked := []scoring.Summary{
		{Name: "Alice", Total: "36"},
		{Name: "Bob", Total: "31"},
	}
	board := &scoring.DisplayData{Label: "Stableford", HigherIsBetter: true}

	err := n.SendRoundResult(testRound(), board, ranked, false)
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "C123", fake.calls[0].channelID)
	assert.Equal(t, 1, m.SlackNotifSent())
}

func TestSendRoundResultDryRun(t *testing.T) {
	fake := &fakeSlackClient{}
	n := NewNotifierWithAPI(fake, "C123", metrics.NewMock())

	err := n.SendRoundResult(testRound(), nil, nil, true)
	require.NoError(t, err)
	assert.Empty(t, fake.calls, "dry run must not hit the API")
}

func TestFormatRoundResult(t *testing.T) {
	n := NewNotifierWithAPI(&fakeSlackClient{}, "C123", metrics.NewMock())

	t.Run("falls back to the net label without a format view", func(t *testing.T) {
		msg := n.formatRoundResult(testRound(), nil, []scoring.Summary{{Name: "Alice", Total: "72"}})
		assert.NotEmpty(t, msg.Blocks.BlockSet)
	})

	t.Run("empty leaderboard still renders", func(t *testing.T) {
		msg := n.formatRoundResult(testRound(), nil, nil)
		assert.NotEmpty(t, msg.Blocks.BlockSet)
	})
}
