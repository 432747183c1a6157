package events

import "time"

const PayoutRecalcRequestedTopic = "comp.payout.recalc.requested.v1"

type PayoutRecalcRequestedEvent struct {
	EventType   string    `json:"event_type"`
	SDRID       *string   `json:"sdr_id,omitempty"`
	AnoMes      string    `json:"ano_mes"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
