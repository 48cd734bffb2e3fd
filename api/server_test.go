package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"artquote/core/engine"
	"artquote/core/pricing"
	"artquote/core/rates"
	"artquote/core/types"
)

func testServer() *Server {
	eng := engine.New(pricing.Default(), rates.DefaultTable(), nil)
	return NewServer("test", eng, 25)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestQuoteEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/quote", QuoteRequest{
		Artworks: []types.Artwork{
			{
				ID: "a1", Title: "Nocturne",
				HeightCm: 80, WidthCm: 60, DepthCm: 5,
				Fragility:      3,
				InsuranceValue: decimal.NewFromInt(40000),
				FlowID:         "f1",
			},
		},
		Flows: []types.LogisticsFlow{
			{
				ID: "f1", Type: types.FlowRoad,
				OriginCity: "Paris", OriginCountry: "France",
				DestinationCity: "Berlin", DestinationCountry: "Germany",
			},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// No resolver wired, so the route is estimated and status is partial
	if resp.Status != "partial" {
		t.Errorf("status = %q, want partial", resp.Status)
	}
	if resp.RequestID == "" {
		t.Error("request id missing")
	}
	if resp.Quote == nil || len(resp.Quote.Flows) != 1 {
		t.Fatalf("quote flows = %+v, want 1 flow", resp.Quote)
	}
	if !resp.Quote.Consolidation.TotalSelling.IsPositive() {
		t.Errorf("selling price = %s, want positive", resp.Quote.Consolidation.TotalSelling)
	}
}

func TestQuoteEndpointRejectsBadJSON(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/quote", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" || len(resp.Errors) == 0 {
		t.Errorf("error envelope = %+v", resp)
	}
}

func TestQuoteEndpointValidation(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/quote", QuoteRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty request status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, s, "/quote", QuoteRequest{
		Artworks: []types.Artwork{{ID: "a1", Fragility: 9}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad fragility status = %d, want 400", rec.Code)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/recommend", RecommendRequest{
		Artworks: []types.Artwork{
			{ID: "a1", Fragility: 5, InsuranceValue: decimal.NewFromInt(900000)},
		},
		Flow: types.LogisticsFlow{
			ID: "f1", Type: types.FlowAir,
			OriginCity: "Paris", DestinationCity: "New York",
		},
		Roles: types.RoleCatalog{
			{ID: "r1", Name: "Régisseur", DailyRate: decimal.NewFromInt(350), HotelCategory: types.HotelComfort},
			{ID: "r2", Name: "Technicien", DailyRate: decimal.NewFromInt(220), HotelCategory: types.HotelStandard},
			{ID: "r3", Name: "Convoyeur", DailyRate: decimal.NewFromInt(280), HotelCategory: types.HotelStandard},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var resp RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Recommendation == nil || len(resp.Recommendation.Team) != 3 {
		t.Fatalf("recommendation = %+v, want 3 roles", resp.Recommendation)
	}
}

func TestRouteEndpoint(t *testing.T) {
	s := testServer()

	rec := postJSON(t, s, "/route", RouteRequest{
		Flow: types.LogisticsFlow{
			ID: "f1", OriginCity: "Paris", DestinationCity: "New York",
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Route == nil {
		t.Fatal("route missing")
	}
	if resp.Route.DistanceKm != 5850 {
		t.Errorf("distance = %v, want 5850", resp.Route.DistanceKm)
	}
}

func TestHealthAndPricingEndpoints(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pricing status = %d", rec.Code)
	}
	var table map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("pricing is not a JSON object: %v", err)
	}
}
