package correlation

// Pattern é uma regra estática de correlação entre mercados: o bônus se aplica
// quando TODOS os mercados requeridos estão presentes no parlay.
type Pattern struct {
	Name        string
	Markets     []string // mercados requeridos, em minúsculas
	Bonus       float64  // fração adicionada ao score (0 < Bonus <= 1)
	Description string   // rótulo para exibição/auditoria
}

// MaxBonus é o teto do bônus de correlação acumulado de um parlay.
const MaxBonus = 0.35

// DefaultPatterns retorna o registro padrão de correlações conhecidas.
// Os valores fazem parte do contrato de preço; a ordem do slice define a ordem
// das descrições retornadas.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "qb_wr_td",
			Markets:     []string{"passing_touchdowns", "receiving_touchdowns"},
			Bonus:       0.15,
			Description: "QB-WR touchdown connection",
		},
		{
			Name:        "star_player_win",
			Markets:     []string{"player_points", "moneyline"},
			Bonus:       0.10,
			Description: "Star player + team win",
		},
		{
			Name:        "pitcher_strikeouts_team_total",
			Markets:     []string{"strikeouts", "team_total"},
			Bonus:       0.12,
			Description: "Pitcher strikeouts + team total",
		},
		{
			Name:        "goalie_shutout_win",
			Markets:     []string{"shutout", "moneyline"},
			Bonus:       0.18,
			Description: "Goalie shutout + team win",
		},
		{
			Name:        "points_rebounds_assists",
			Markets:     []string{"points", "rebounds", "assists"},
			Bonus:       0.08,
			Description: "PRA correlated props",
		},
	}
}
