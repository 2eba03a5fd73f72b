package correlation

import (
	"github.com/radieske/parlay-pricing-poc/internal/pricing/bet"
)

// Engine avalia padrões de correlação entre os mercados de um parlay.
// O registro de padrões é injetado na construção e nunca muta depois; a mesma
// instância pode ser usada por qualquer número de goroutines sem coordenação.
type Engine struct {
	patterns []Pattern
}

// NewEngine retorna um Engine com o registro informado.
func NewEngine(patterns []Pattern) *Engine {
	return &Engine{patterns: patterns}
}

// NewDefaultEngine retorna um Engine com o registro padrão.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultPatterns())
}

// matches verifica se todos os mercados requeridos do padrão estão presentes.
func matches(p Pattern, present map[string]struct{}) bool {
	for _, m := range p.Markets {
		if _, ok := present[m]; !ok {
			return false
		}
	}
	return true
}

// Bonus calcula o bônus de correlação total de um conjunto de legs.
// Padrões não são mutuamente exclusivos: um parlay que satisfaz dois padrões
// acumula os dois bônus. O total é limitado a MaxBonus.
// Lista vazia de legs retorna exatamente 0.0 — não é erro.
func (e *Engine) Bonus(legs []bet.Leg) float64 {
	present := bet.Markets(legs)

	total := 0.0
	for _, p := range e.patterns {
		if matches(p, present) {
			total += p.Bonus
		}
	}

	if total > MaxBonus {
		return MaxBonus
	}
	return total
}

// Descriptions retorna as descrições dos padrões ativos, na ordem do registro.
// A ordem é uma preocupação de exibição, mas precisa ser determinística.
func (e *Engine) Descriptions(legs []bet.Leg) []string {
	present := bet.Markets(legs)

	descriptions := []string{}
	for _, p := range e.patterns {
		if matches(p, present) {
			descriptions = append(descriptions, p.Description)
		}
	}
	return descriptions
}

// Patterns expõe o registro para exibição/auditoria (não modificar).
func (e *Engine) Patterns() []Pattern {
	return e.patterns
}
