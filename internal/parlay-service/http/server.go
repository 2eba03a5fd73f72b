package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/dto"
	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/repo"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/bet"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/correlation"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/odds"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/parlay"
	"github.com/radieske/parlay-pricing-poc/pkg/contracts/events"
)

// QuoteStore persiste e recupera cotações (implementado por repo.Postgres)
type QuoteStore interface {
	Create(ctx context.Context, q *repo.Quote) (string, error)
	Get(ctx context.Context, quoteID string) (*repo.Quote, error)
}

// QuoteCache guarda cotações já montadas (implementado por cache.Cache)
type QuoteCache interface {
	GetQuote(ctx context.Context, quoteID string, dst any) (bool, error)
	SetQuote(ctx context.Context, quoteID string, v any) error
}

// API expõe os endpoints REST de cotação de parlays
// Combina o núcleo de pricing (puro) com persistência, cache e publicação Kafka
type API struct {
	Log    *zap.Logger
	Pricer *parlay.Pricer
	Engine *correlation.Engine // registro para exibição em /v1/correlations
	Repo   QuoteStore
	Cache  QuoteCache
	Publ   interface {
		PublishParlayQuoted(context.Context, events.ParlayQuoted) error
	}
	WS http.HandlerFunc // handler do hub WebSocket, opcional
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/parlay/quote", a.quoteParlay)     // Cota um parlay
	r.Get("/v1/parlay/quotes/{id}", a.getQuote)   // Consulta uma cotação
	r.Get("/v1/correlations", a.listCorrelations) // Lista padrões de correlação
	r.Get("/v1/teaser/odds", a.getTeaserOdds)     // Consulta tabela de teaser
	if a.WS != nil {
		r.Get("/ws", a.WS)
	}
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Success: false, Error: msg})
}

// quoteParlay precifica um parlay: odds combinadas + bônus de correlação.
// A cotação é persistida, cacheada e publicada no tópico parlay_quoted.
func (a *API) quoteParlay(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if len(req.Legs) == 0 {
		writeError(w, http.StatusBadRequest, "at least one leg is required")
		return
	}
	for _, l := range req.Legs {
		if l.Market == "" {
			writeError(w, http.StatusBadRequest, "leg market is required")
			return
		}
	}

	legs := make([]bet.Leg, len(req.Legs))
	for i, l := range req.Legs {
		legs[i] = bet.Leg{Market: l.Market, AmericanOdds: l.AmericanOdds, IsStar: l.IsStar}
	}

	q, err := a.Pricer.Price(legs)
	if err != nil {
		if errors.Is(err, odds.ErrInvalidOdds) {
			// dado malformado do upstream; não coagir para um preço default
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now().UTC()
	legsJSON, _ := json.Marshal(req.Legs)
	corrJSON, _ := json.Marshal(q.Correlations)

	quoteID, err := a.Repo.Create(r.Context(), &repo.Quote{
		TicketID:        req.TicketID,
		LegsJSON:        legsJSON,
		CombinedDecimal: q.CombinedDecimal,
		CombinedUS:      q.CombinedUS,
		ImpliedProb:     q.ImpliedProb,
		CorrelationPct:  q.CorrelationPct,
		Correlations:    corrJSON,
		QuotedAt:        now,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	view := dto.QuoteView{
		QuoteID:         quoteID,
		TicketID:        req.TicketID,
		Legs:            req.Legs,
		CombinedDecimal: q.CombinedDecimal,
		CombinedUS:      q.CombinedUS,
		ImpliedProb:     q.ImpliedProb,
		CorrelationPct:  q.CorrelationPct,
		Correlations:    q.Correlations,
		AdjustedProb:    q.AdjustedProb,
		QuotedAt:        now.Format(time.RFC3339),
	}

	_ = a.Cache.SetQuote(r.Context(), quoteID, view)

	evLegs := make([]events.Leg, len(legs))
	for i, l := range legs {
		evLegs[i] = events.Leg{Market: l.Market, AmericanOdds: l.AmericanOdds, IsStar: l.IsStar}
	}
	if err := a.Publ.PublishParlayQuoted(r.Context(), events.ParlayQuoted{
		QuoteID:         quoteID,
		Legs:            evLegs,
		CombinedDecimal: q.CombinedDecimal,
		CombinedUS:      q.CombinedUS,
		ImpliedProb:     q.ImpliedProb,
		CorrelationPct:  q.CorrelationPct,
		Correlations:    q.Correlations,
		QuotedAt:        now,
		Source:          "parlay-service",
		Version:         1,
	}); err != nil {
		a.Log.Warn("publish parlay_quoted failed", zap.String("quoteId", quoteID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, dto.QuoteResponse{
		Success:   true,
		Quote:     view,
		Count:     len(req.Legs),
		Timestamp: now.Format(time.RFC3339),
	})
}

// getQuote retorna uma cotação pelo id, preferencialmente do cache
func (a *API) getQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fromCache dto.QuoteView
	if ok, _ := a.Cache.GetQuote(r.Context(), id, &fromCache); ok {
		writeJSON(w, http.StatusOK, dto.QuoteResponse{
			Success:   true,
			Quote:     fromCache,
			Count:     len(fromCache.Legs),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	q, err := a.Repo.Get(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	view := dto.QuoteView{
		QuoteID:         q.ID,
		TicketID:        q.TicketID,
		CombinedDecimal: q.CombinedDecimal,
		CombinedUS:      q.CombinedUS,
		ImpliedProb:     q.ImpliedProb,
		CorrelationPct:  q.CorrelationPct,
		QuotedAt:        q.QuotedAt.UTC().Format(time.RFC3339),
	}
	_ = json.Unmarshal(q.LegsJSON, &view.Legs)
	_ = json.Unmarshal(q.Correlations, &view.Correlations)

	_ = a.Cache.SetQuote(r.Context(), id, view) // backfill do cache

	writeJSON(w, http.StatusOK, dto.QuoteResponse{
		Success:   true,
		Quote:     view,
		Count:     len(view.Legs),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// listCorrelations expõe o registro de padrões para exibição/auditoria
func (a *API) listCorrelations(w http.ResponseWriter, r *http.Request) {
	patterns := a.Engine.Patterns()
	views := make([]dto.CorrelationView, len(patterns))
	for i, p := range patterns {
		views[i] = dto.CorrelationView{
			Name:        p.Name,
			Markets:     p.Markets,
			Bonus:       p.Bonus,
			Description: p.Description,
		}
	}
	writeJSON(w, http.StatusOK, dto.CorrelationsResponse{
		Success:      true,
		Correlations: views,
		Count:        len(views),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// getTeaserOdds consulta a tabela de teaser: ?sport=nfl&points=6.5&legs=3
func (a *API) getTeaserOdds(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")
	if sport == "" {
		writeError(w, http.StatusBadRequest, "sport is required")
		return
	}
	points, err := strconv.ParseFloat(r.URL.Query().Get("points"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid points")
		return
	}
	legsCount, err := strconv.Atoi(r.URL.Query().Get("legs"))
	if err != nil || legsCount < 2 {
		writeError(w, http.StatusBadRequest, "legs must be >= 2")
		return
	}

	writeJSON(w, http.StatusOK, dto.TeaserResponse{
		Success:   true,
		Sport:     sport,
		Points:    points,
		Legs:      legsCount,
		Odds:      odds.TeaserOdds(sport, points, legsCount),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
