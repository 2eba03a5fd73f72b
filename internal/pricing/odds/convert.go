package odds

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOdds indica um preço malformado vindo do upstream: odd americana
// igual a zero ou odd decimal <= 1.0. Não deve ser mascarado com um preço default.
var ErrInvalidOdds = errors.New("invalid odds")

// AmericanToDecimal converte uma odd americana para o formato decimal.
// +150 => 2.5, -150 => 1.6667. O resultado é sempre > 1.0.
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds cannot be zero", ErrInvalidOdds)
	}
	if american > 0 {
		return float64(american)/100.0 + 1.0, nil
	}
	return 100.0/math.Abs(float64(american)) + 1.0, nil
}

// DecimalToAmerican converte uma odd decimal para string americana com sinal
// ("+150", "-130"). Exige decimal > 1.0.
//
// A conversão de ida e volta reproduz a odd original dentro de ±1 por conta do
// arredondamento; é uma perda conhecida e aceita do formato, não um bug.
func DecimalToAmerican(decimal float64) (string, error) {
	if decimal <= 1.0 {
		return "", fmt.Errorf("%w: decimal odds must be > 1.0, got %v", ErrInvalidOdds, decimal)
	}
	if decimal >= 2.0 {
		return fmt.Sprintf("+%d", int(math.Round((decimal-1.0)*100.0))), nil
	}
	return fmt.Sprintf("-%d", int(math.Round(100.0/(decimal-1.0)))), nil
}

// ParlayDecimal compõe as odds decimais combinadas de um parlay: o multiplicador
// de retorno combinado é o produto dos multiplicadores de cada leg.
// Exige ao menos uma leg.
func ParlayDecimal(legsOdds []int) (float64, error) {
	if len(legsOdds) == 0 {
		return 0, fmt.Errorf("%w: parlay requires at least one leg", ErrInvalidOdds)
	}
	combined := 1.0
	for _, a := range legsOdds {
		d, err := AmericanToDecimal(a)
		if err != nil {
			return 0, err
		}
		combined *= d
	}
	return combined, nil
}

// CalculateParlayOdds calcula a odd americana combinada de um parlay.
// Com uma única leg a composição é identidade (reproduz a odd da leg, dentro
// da tolerância de arredondamento).
func CalculateParlayOdds(legsOdds []int) (string, error) {
	combined, err := ParlayDecimal(legsOdds)
	if err != nil {
		return "", err
	}
	return DecimalToAmerican(combined)
}

// ImpliedProbability retorna a probabilidade implícita de uma odd americana,
// no intervalo (0,1). Para um mercado justo de dois resultados (+100/-100) as
// probabilidades somam exatamente 1.0; em mercados reais a soma excede 1.0
// (vig) e não deve ser "corrigida" aqui.
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("%w: american odds cannot be zero", ErrInvalidOdds)
	}
	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}
	abs := math.Abs(float64(american))
	return abs / (abs + 100.0), nil
}
