package repo

import "time"

// Quote é o modelo persistido no Postgres.
type Quote struct {
	ID              string
	TicketID        string
	LegsJSON        []byte // legs serializadas como JSON
	CombinedDecimal float64
	CombinedUS      string
	ImpliedProb     float64
	CorrelationPct  float64
	Correlations    []byte // descrições serializadas como JSON
	QuotedAt        time.Time
}
