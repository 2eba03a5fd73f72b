package correlation

import (
	"math"
	"reflect"
	"testing"

	"github.com/radieske/parlay-pricing-poc/internal/pricing/bet"
)

func legsFor(markets ...string) []bet.Leg {
	legs := make([]bet.Leg, len(markets))
	for i, m := range markets {
		legs[i] = bet.Leg{Market: m, AmericanOdds: -110}
	}
	return legs
}

func TestBonus(t *testing.T) {
	eng := NewDefaultEngine()

	tests := []struct {
		name     string
		legs     []bet.Leg
		expected float64
	}{
		{"Empty legs", nil, 0.0},
		{"No correlated markets", legsFor("moneyline", "spread"), 0.0},
		{"QB-WR touchdowns", legsFor("passing_touchdowns", "receiving_touchdowns"), 0.15},
		{"Star player win", legsFor("player_points", "moneyline"), 0.10},
		{"Pitcher strikeouts team total", legsFor("strikeouts", "team_total"), 0.12},
		{"Goalie shutout win", legsFor("shutout", "moneyline"), 0.18},
		{"PRA props", legsFor("points", "rebounds", "assists"), 0.08},
		{"Partial PRA does not match", legsFor("points", "rebounds"), 0.0},
		{"Case-insensitive markets", legsFor("Passing_Touchdowns", "RECEIVING_TOUCHDOWNS"), 0.15},
		{"Duplicate markets count once", legsFor("shutout", "shutout", "moneyline"), 0.18},
		{
			"Two patterns accumulate",
			legsFor("passing_touchdowns", "receiving_touchdowns", "points", "rebounds", "assists"),
			0.23,
		},
		{
			"Shared moneyline triggers both",
			legsFor("player_points", "moneyline", "shutout"),
			0.28,
		},
		{
			"Cap at 0.35",
			legsFor(
				"passing_touchdowns", "receiving_touchdowns",
				"player_points", "moneyline",
				"strikeouts", "team_total",
				"shutout",
			),
			0.35, // 0.15+0.10+0.12+0.18 = 0.55, limitado
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eng.Bonus(tt.legs)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Bonus() = %v, want %v", got, tt.expected)
			}
			if got < 0 || got > MaxBonus {
				t.Errorf("Bonus() = %v, outside [0, %v]", got, MaxBonus)
			}
		})
	}
}

func TestDescriptions(t *testing.T) {
	eng := NewDefaultEngine()

	tests := []struct {
		name     string
		legs     []bet.Leg
		expected []string
	}{
		{"Empty legs", nil, []string{}},
		{"No match", legsFor("moneyline"), []string{}},
		{
			"Single match",
			legsFor("passing_touchdowns", "receiving_touchdowns"),
			[]string{"QB-WR touchdown connection"},
		},
		{
			// ordem do registro, não alfabética nem por bônus
			"Registry order preserved",
			legsFor("shutout", "moneyline", "player_points"),
			[]string{"Star player + team win", "Goalie shutout + team win"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eng.Descriptions(tt.legs)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Descriptions() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCustomRegistry(t *testing.T) {
	eng := NewEngine([]Pattern{
		{Name: "custom", Markets: []string{"a", "b"}, Bonus: 0.30, Description: "custom pair"},
		{Name: "other", Markets: []string{"c"}, Bonus: 0.20, Description: "single"},
	})

	legs := legsFor("a", "b", "c")
	if got := eng.Bonus(legs); math.Abs(got-MaxBonus) > 1e-9 {
		t.Errorf("Bonus() = %v, want cap %v", got, MaxBonus)
	}
	want := []string{"custom pair", "single"}
	if got := eng.Descriptions(legs); !reflect.DeepEqual(got, want) {
		t.Errorf("Descriptions() = %v, want %v", got, want)
	}
}

func TestDefaultPatternsContract(t *testing.T) {
	// os valores do registro fazem parte do contrato de preço
	want := map[string]float64{
		"qb_wr_td":                      0.15,
		"star_player_win":               0.10,
		"pitcher_strikeouts_team_total": 0.12,
		"goalie_shutout_win":            0.18,
		"points_rebounds_assists":       0.08,
	}

	patterns := DefaultPatterns()
	if len(patterns) != len(want) {
		t.Fatalf("DefaultPatterns() has %d patterns, want %d", len(patterns), len(want))
	}
	for _, p := range patterns {
		bonus, ok := want[p.Name]
		if !ok {
			t.Errorf("unexpected pattern %q", p.Name)
			continue
		}
		if math.Abs(p.Bonus-bonus) > 1e-9 {
			t.Errorf("pattern %q bonus = %v, want %v", p.Name, p.Bonus, bonus)
		}
	}
}
