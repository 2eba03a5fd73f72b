package parlay

import (
	"github.com/radieske/parlay-pricing-poc/internal/pricing/bet"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/correlation"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/odds"
)

// Quote é o preço final de um parlay: odds combinadas, probabilidade implícita
// e ajuste de correlação. As legs são preservadas na ordem recebida.
type Quote struct {
	Legs            []bet.Leg `json:"legs"`
	CombinedDecimal float64   `json:"combined_decimal"`
	CombinedUS      string    `json:"combined_us"`
	ImpliedProb     float64   `json:"implied_prob"`
	CorrelationPct  float64   `json:"correlation_pct"`
	Correlations    []string  `json:"correlations"`
	AdjustedProb    float64   `json:"adjusted_prob"`
}

// Pricer compõe o conversor de odds e o engine de correlação.
// É puro e determinístico: sem I/O, sem estado mutável compartilhado.
type Pricer struct {
	engine *correlation.Engine
}

// NewPricer retorna um Pricer usando o engine informado.
func NewPricer(e *correlation.Engine) *Pricer {
	return &Pricer{engine: e}
}

// Price calcula a cotação completa de um parlay.
// Retorna odds.ErrInvalidOdds se a lista de legs for vazia ou se alguma leg
// tiver odd americana igual a zero.
func (p *Pricer) Price(legs []bet.Leg) (Quote, error) {
	legsOdds := bet.Odds(legs)

	combined, err := odds.ParlayDecimal(legsOdds)
	if err != nil {
		return Quote{}, err
	}

	us, err := odds.DecimalToAmerican(combined)
	if err != nil {
		return Quote{}, err
	}

	// probabilidade implícita do preço combinado (1/decimal)
	implied := 1.0 / combined

	bonus := p.engine.Bonus(legs)

	adjusted := implied + bonus
	if adjusted >= 1.0 {
		adjusted = 0.99 // preço ajustado é exibição; nunca reporta certeza
	}

	return Quote{
		Legs:            legs,
		CombinedDecimal: combined,
		CombinedUS:      us,
		ImpliedProb:     implied,
		CorrelationPct:  bonus,
		Correlations:    p.engine.Descriptions(legs),
		AdjustedProb:    adjusted,
	}, nil
}
