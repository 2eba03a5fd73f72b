package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket
// Type: subscribe | unsubscribe | ping
// QuoteID: obrigatório para subscribe/unsubscribe
type ClientMsg struct {
	Type    string `json:"type"`    // subscribe | unsubscribe | ping
	QuoteID string `json:"quoteId"` // requerido em subscribe/unsubscribe
}

// QuoteUpdate representa uma cotação enviada para clientes WebSocket
type QuoteUpdate struct {
	QuoteID string      `json:"quoteId"`
	Payload interface{} `json:"payload"`
}
