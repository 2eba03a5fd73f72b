package odds

// tabela de teasers 2026 por esporte e pontos de ajuste (base de 2 legs)
var teaserTable = map[string]map[float64]int{
	"nfl": {6: -110, 6.5: -120, 7: -130},
	"nba": {6: -110, 6.5: -115, 7: -120},
}

const teaserDefaultOdds = -110

// TeaserOdds retorna a odd americana de um teaser para o esporte, os pontos de
// ajuste e o número de legs. A tabela é a base de 2 legs; cada leg adicional
// piora o preço em 10 (ex: -120 para 3 legs com base -110).
// Esporte ou pontos fora da tabela caem no preço padrão -110.
func TeaserOdds(sport string, points float64, legs int) int {
	base := teaserDefaultOdds
	if byPoints, ok := teaserTable[sport]; ok {
		if v, ok := byPoints[points]; ok {
			base = v
		}
	}
	return base - (legs-2)*10
}
