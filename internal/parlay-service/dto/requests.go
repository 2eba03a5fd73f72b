package dto

type LegInput struct {
	Market       string `json:"market"`        // ex: "passing_touchdowns"
	AmericanOdds int    `json:"american_odds"` // nunca zero
	IsStar       bool   `json:"is_star"`
}

type QuoteRequest struct {
	TicketID string     `json:"ticketId,omitempty"` // opcional; agrupa recotações do mesmo bilhete
	Legs     []LegInput `json:"legs"`
}
