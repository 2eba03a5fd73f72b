package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/radieske/parlay-pricing-poc/pkg/contracts/events"
)

// PostgresRepo implementa a persistência de cotações de parlay em Postgres
// DB: conexão com o banco de dados
type PostgresRepo struct {
	DB *sql.DB
}

// NewPostgresRepo retorna uma instância de repositório Postgres
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

// UpsertCurrent insere ou atualiza a cotação corrente de um quote_id na tabela quotes_current
// Utiliza ON CONFLICT para garantir atomicidade e evitar duplicidade por quote_id
func (r *PostgresRepo) UpsertCurrent(ctx context.Context, e events.ParlayQuoted) error {
	legs, err := json.Marshal(e.Legs)
	if err != nil {
		return err
	}
	correlations, err := json.Marshal(e.Correlations)
	if err != nil {
		return err
	}

	const q = `
		INSERT INTO quotes_current
		  (quote_id, legs, combined_decimal, combined_us, implied_prob, correlation_pct, correlations, version, quoted_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (quote_id) DO UPDATE SET
		  legs             = EXCLUDED.legs,
		  combined_decimal = EXCLUDED.combined_decimal,
		  combined_us      = EXCLUDED.combined_us,
		  implied_prob     = EXCLUDED.implied_prob,
		  correlation_pct  = EXCLUDED.correlation_pct,
		  correlations     = EXCLUDED.correlations,
		  version          = EXCLUDED.version,
		  quoted_at        = EXCLUDED.quoted_at
	`
	_, err = r.DB.ExecContext(ctx, q,
		e.QuoteID, legs, e.CombinedDecimal, e.CombinedUS,
		e.ImpliedProb, e.CorrelationPct, correlations,
		e.Version, e.QuotedAt,
	)
	return err
}

// InsertHistory insere uma nova cotação no histórico (quotes_history)
func (r *PostgresRepo) InsertHistory(ctx context.Context, e events.ParlayQuoted) error {
	const q = `
		INSERT INTO quotes_history
		  (quote_id, combined_decimal, combined_us, implied_prob, correlation_pct, version, quoted_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.DB.ExecContext(ctx, q,
		e.QuoteID, e.CombinedDecimal, e.CombinedUS,
		e.ImpliedProb, e.CorrelationPct, e.Version, e.QuotedAt,
	)
	return err
}
