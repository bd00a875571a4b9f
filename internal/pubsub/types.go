package pubsub

import (
	gcppubsub "cloud.google.com/go/pubsub"

	"github.com/Ware71/CIAGA-sub001/internal/scoring"
)

type client struct {
	client   *gcppubsub.Client
	teardown func()
}

// ScoreEventMessage is the fan-out payload for one hole-entry transition.
// Receivers apply it through the round store; last-write-wins by the event
// timestamp makes delivery order irrelevant.
type ScoreEventMessage struct {
	RoundID string             `msgpack:"round_id"`
	Event   scoring.ScoreEvent `msgpack:"event"`
	Status  scoring.HoleStatus `msgpack:"status"`
}
