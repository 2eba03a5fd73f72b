package events

import "time"

// Leg é uma seleção individual dentro do parlay cotado
type Leg struct {
	Market       string `json:"market"`
	AmericanOdds int    `json:"american_odds"`
	IsStar       bool   `json:"is_star"`
}

// Evento publicado no tópico "parlay_quoted"
type ParlayQuoted struct {
	QuoteID         string    `json:"quote_id"`
	Legs            []Leg     `json:"legs"`
	CombinedDecimal float64   `json:"combined_decimal"`
	CombinedUS      string    `json:"combined_us"` // odd americana combinada, ex: "+264"
	ImpliedProb     float64   `json:"implied_prob"`
	CorrelationPct  float64   `json:"correlation_pct"` // bônus de correlação [0, 0.35]
	Correlations    []string  `json:"correlations"`
	QuotedAt        time.Time `json:"quoted_at"`
	Source          string    `json:"source"`  // "parlay-service"
	Version         int       `json:"version"` // incrementado a cada recotação do mesmo ticket
	TsUnixMs        int64     `json:"ts_unix_ms"`
}
