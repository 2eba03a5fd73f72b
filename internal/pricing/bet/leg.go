package bet

import "strings"

// Leg é uma seleção individual dentro de um parlay.
type Leg struct {
	Market       string `json:"market"`        // ex: "passing_touchdowns", "moneyline"
	AmericanOdds int    `json:"american_odds"` // preço americano, nunca zero
	IsStar       bool   `json:"is_star"`       // jogador destaque (exibição)
}

// Markets retorna o conjunto de mercados presentes nas legs, em minúsculas.
// O matching de mercados é sempre case-insensitive.
func Markets(legs []Leg) map[string]struct{} {
	set := make(map[string]struct{}, len(legs))
	for _, l := range legs {
		set[strings.ToLower(l.Market)] = struct{}{}
	}
	return set
}

// Odds extrai as odds americanas das legs, preservando a ordem.
func Odds(legs []Leg) []int {
	out := make([]int, len(legs))
	for i, l := range legs {
		out[i] = l.AmericanOdds
	}
	return out
}
