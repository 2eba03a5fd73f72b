package dto

// QuoteView é a cotação como exibida ao cliente
type QuoteView struct {
	QuoteID         string     `json:"quoteId"`
	TicketID        string     `json:"ticketId,omitempty"`
	Legs            []LegInput `json:"legs"`
	CombinedDecimal float64    `json:"combined_decimal"`
	CombinedUS      string     `json:"combined_us"` // ex: "+264"
	ImpliedProb     float64    `json:"implied_prob"`
	CorrelationPct  float64    `json:"correlation_pct"`
	Correlations    []string   `json:"correlations"`
	AdjustedProb    float64    `json:"adjusted_prob"`
	QuotedAt        string     `json:"quotedAt"`
}

// QuoteResponse é o envelope padrão das respostas de cotação
type QuoteResponse struct {
	Success   bool      `json:"success"`
	Quote     QuoteView `json:"quote"`
	Count     int       `json:"count"` // número de legs
	Timestamp string    `json:"timestamp"`
}

// CorrelationView descreve um padrão do registro para exibição/auditoria
type CorrelationView struct {
	Name        string   `json:"name"`
	Markets     []string `json:"markets"`
	Bonus       float64  `json:"bonus"`
	Description string   `json:"description"`
}

type CorrelationsResponse struct {
	Success      bool              `json:"success"`
	Correlations []CorrelationView `json:"correlations"`
	Count        int               `json:"count"`
	Timestamp    string            `json:"timestamp"`
}

type TeaserResponse struct {
	Success   bool    `json:"success"`
	Sport     string  `json:"sport"`
	Points    float64 `json:"points"`
	Legs      int     `json:"legs"`
	Odds      int     `json:"odds"`
	Timestamp string  `json:"timestamp"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
