package topics

const (
	// Quotes
	ParlayQuoted = "parlay_quoted"

	// DLQs
	ParlayQuotedDLQ = "parlay_quoted_dlq"
)
