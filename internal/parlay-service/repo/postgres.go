package repo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Postgres implementa operações de persistência de cotações em banco Postgres
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de cotações
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Create insere uma nova cotação e retorna o quoteID gerado
func (p *Postgres) Create(ctx context.Context, q *Quote) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO quotes (id,ticket_id,legs,combined_decimal,combined_us,implied_prob,correlation_pct,correlations,quoted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		id, q.TicketID, q.LegsJSON, q.CombinedDecimal, q.CombinedUS,
		q.ImpliedProb, q.CorrelationPct, q.Correlations, q.QuotedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Get retorna uma cotação pelo quoteID
func (p *Postgres) Get(ctx context.Context, quoteID string) (*Quote, error) {
	q := &Quote{ID: quoteID}
	err := p.db.QueryRowContext(ctx, `
		SELECT ticket_id, legs, combined_decimal, combined_us, implied_prob, correlation_pct, correlations, quoted_at
		FROM quotes WHERE id=$1`, quoteID,
	).Scan(&q.TicketID, &q.LegsJSON, &q.CombinedDecimal, &q.CombinedUS,
		&q.ImpliedProb, &q.CorrelationPct, &q.Correlations, &q.QuotedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}
