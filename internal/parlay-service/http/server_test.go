package httpapi

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/dto"
	"github.com/radieske/parlay-pricing-poc/internal/parlay-service/repo"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/correlation"
	"github.com/radieske/parlay-pricing-poc/internal/pricing/parlay"
	"github.com/radieske/parlay-pricing-poc/pkg/contracts/events"
)

type fakeStore struct {
	quotes map[string]*repo.Quote
	nextID string
}

func (f *fakeStore) Create(_ context.Context, q *repo.Quote) (string, error) {
	id := f.nextID
	q.ID = id
	f.quotes[id] = q
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, quoteID string) (*repo.Quote, error) {
	q, ok := f.quotes[quoteID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return q, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func (f *fakeCache) GetQuote(_ context.Context, quoteID string, dst any) (bool, error) {
	b, ok := f.entries[quoteID]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) SetQuote(_ context.Context, quoteID string, v any) error {
	b, _ := json.Marshal(v)
	f.entries[quoteID] = b
	return nil
}

type fakePublisher struct {
	published []events.ParlayQuoted
}

func (f *fakePublisher) PublishParlayQuoted(_ context.Context, e events.ParlayQuoted) error {
	f.published = append(f.published, e)
	return nil
}

func newTestAPI() (*API, *fakeStore, *fakeCache, *fakePublisher) {
	engine := correlation.NewDefaultEngine()
	store := &fakeStore{quotes: map[string]*repo.Quote{}, nextID: "q-1"}
	qc := &fakeCache{entries: map[string][]byte{}}
	pub := &fakePublisher{}
	api := &API{
		Log:    zap.NewNop(),
		Pricer: parlay.NewPricer(engine),
		Engine: engine,
		Repo:   store,
		Cache:  qc,
		Publ:   pub,
	}
	return api, store, qc, pub
}

func postQuote(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/parlay/quote", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestQuoteParlay(t *testing.T) {
	api, store, _, pub := newTestAPI()

	rec := postQuote(t, api, `{"legs":[
		{"market":"spread","american_odds":-110},
		{"market":"total","american_odds":-110}
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
	if resp.Quote.CombinedUS != "+264" {
		t.Errorf("combined_us = %q, want +264", resp.Quote.CombinedUS)
	}
	if resp.Quote.QuoteID == "" {
		t.Error("quoteId is empty")
	}
	if _, ok := store.quotes[resp.Quote.QuoteID]; !ok {
		t.Error("quote not persisted")
	}
	if len(pub.published) != 1 || pub.published[0].QuoteID != resp.Quote.QuoteID {
		t.Errorf("published = %+v, want one event for %s", pub.published, resp.Quote.QuoteID)
	}
}

func TestQuoteParlayCorrelated(t *testing.T) {
	api, _, _, _ := newTestAPI()

	rec := postQuote(t, api, `{"legs":[
		{"market":"passing_touchdowns","american_odds":120,"is_star":true},
		{"market":"receiving_touchdowns","american_odds":140}
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if math.Abs(resp.Quote.CorrelationPct-0.15) > 1e-9 {
		t.Errorf("correlation_pct = %v, want 0.15", resp.Quote.CorrelationPct)
	}
	if len(resp.Quote.Correlations) != 1 || resp.Quote.Correlations[0] != "QB-WR touchdown connection" {
		t.Errorf("correlations = %v", resp.Quote.Correlations)
	}
}

func TestQuoteParlayValidation(t *testing.T) {
	api, _, _, _ := newTestAPI()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Bad json", `{`, http.StatusBadRequest},
		{"Empty legs", `{"legs":[]}`, http.StatusBadRequest},
		{"Missing market", `{"legs":[{"american_odds":-110}]}`, http.StatusBadRequest},
		{"Zero odds", `{"legs":[{"market":"moneyline","american_odds":0}]}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postQuote(t, api, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestGetQuoteFromStore(t *testing.T) {
	api, _, qc, _ := newTestAPI()

	rec := postQuote(t, api, `{"legs":[{"market":"moneyline","american_odds":150}]}`)
	var created dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	id := created.Quote.QuoteID

	// limpa o cache para forçar leitura do repositório
	qc.entries = map[string][]byte{}

	req := httptest.NewRequest(http.MethodGet, "/v1/parlay/quotes/"+id, nil)
	rr := httptest.NewRecorder()
	api.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp dto.QuoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Quote.CombinedUS != "+150" {
		t.Errorf("combined_us = %q, want +150", resp.Quote.CombinedUS)
	}
	if len(resp.Quote.Legs) != 1 || resp.Quote.Legs[0].Market != "moneyline" {
		t.Errorf("legs = %+v", resp.Quote.Legs)
	}
	if _, ok := qc.entries[id]; !ok {
		t.Error("cache not backfilled after repo read")
	}
}

func TestGetQuoteNotFound(t *testing.T) {
	api, _, _, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/v1/parlay/quotes/missing", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListCorrelations(t *testing.T) {
	api, _, _, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/v1/correlations", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp dto.CorrelationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 5 {
		t.Errorf("count = %d, want 5", resp.Count)
	}
	// ordem do registro
	if resp.Correlations[0].Name != "qb_wr_td" || resp.Correlations[4].Name != "points_rebounds_assists" {
		t.Errorf("registry order not preserved: %+v", resp.Correlations)
	}
}

func TestGetTeaserOdds(t *testing.T) {
	api, _, _, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/v1/teaser/odds?sport=nfl&points=6.5&legs=3", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp dto.TeaserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Odds != -130 {
		t.Errorf("odds = %d, want -130", resp.Odds)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/teaser/odds?sport=nfl&points=6.5&legs=1", nil)
	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("legs=1 status = %d, want 400", rec.Code)
	}
}
