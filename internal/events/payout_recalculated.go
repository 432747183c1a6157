package events

import "time"

const PayoutRecalculatedTopic = "comp.payout.recalculated.v1"

type PayoutRecalculatedEvent struct {
	EventType  string    `json:"event_type"`
	AnoMes     string    `json:"ano_mes"`
	Processed  int       `json:"processed"`
	Errors     int       `json:"errors"`
	OccurredAt time.Time `json:"occurred_at"`
}
