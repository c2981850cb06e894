package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/repository"
	"github.com/Nisand-KB/FRESH-MART/internal/service"
)

type stubGeo struct {
	loc domain.Location
	err error
}

func (g stubGeo) Locate(context.Context) (domain.Location, error) {
	return g.loc, g.err
}

func setupServer(t *testing.T, geo service.Geolocator) *Server {
	t.Helper()
	catalog, err := repository.NewMemoryCatalog([]domain.Product{
		{ID: "1", Name: "Organic Red Apples", Price: 180, Category: domain.CategoryFruits, Unit: domain.UnitKg},
		{ID: "3", Name: "Amul Taaza Milk", Price: 66, Category: domain.CategoryDairy, Unit: domain.UnitLitre},
	})
	if err != nil {
		t.Fatal(err)
	}
	session := service.NewSession(domain.DefaultLanguage)
	cart := service.NewCartService(catalog)
	checkout := service.NewCheckoutService(cart, "919876543210")
	location := service.NewLocationService(geo)
	return NewServer(catalog, session, cart, checkout, location)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestProducts_Filtering(t *testing.T) {
	s := setupServer(t, stubGeo{})

	w := doJSON(t, s, http.MethodGet, "/api/v1/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code %v", w.Code)
	}
	var list []domain.Product
	decode(t, w, &list)
	if len(list) != 2 || list[0].ID != "1" || list[1].ID != "3" {
		t.Fatalf("expected full catalog in order, got %+v", list)
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/products?q=milk&category=All", nil)
	decode(t, w, &list)
	if len(list) != 1 || list[0].Name != "Amul Taaza Milk" {
		t.Fatalf("search failed: %+v", list)
	}

	// empty result is a valid 200 with an empty array
	w = doJSON(t, s, http.MethodGet, "/api/v1/products?q=zzz", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %v %q", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/products?category=Frozen", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %v", w.Code)
	}
}

func TestCartFlow(t *testing.T) {
	s := setupServer(t, stubGeo{})

	w := doJSON(t, s, http.MethodPut, "/api/v1/cart/items/1", map[string]any{"quantity": 3})
	if w.Code != http.StatusOK {
		t.Fatalf("set quantity %v: %s", w.Code, w.Body.String())
	}
	var view struct {
		Items domain.Cart `json:"items"`
		Count int         `json:"count"`
		Total int64       `json:"total"`
	}
	decode(t, w, &view)
	if view.Count != 1 || view.Total != 540 || view.Items[0].Quantity != 3 {
		t.Fatalf("unexpected cart view: %+v", view)
	}

	// quantity 0 removes
	w = doJSON(t, s, http.MethodPut, "/api/v1/cart/items/1", map[string]any{"quantity": 0})
	decode(t, w, &view)
	if view.Count != 0 || view.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}

	// unknown product
	w = doJSON(t, s, http.MethodPut, "/api/v1/cart/items/999", map[string]any{"quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", w.Code)
	}

	// missing quantity field
	w = doJSON(t, s, http.MethodPut, "/api/v1/cart/items/1", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", w.Code)
	}

	// delete is a no-op when absent
	w = doJSON(t, s, http.MethodDelete, "/api/v1/cart/items/999", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code %v", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	s := setupServer(t, stubGeo{})

	// empty cart blocks checkout
	w := doJSON(t, s, http.MethodPost, "/api/v1/checkout", map[string]any{
		"mobile": "+91 1", "address": "12 Gandhi Road",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty cart, got %v", w.Code)
	}

	_ = doJSON(t, s, http.MethodPut, "/api/v1/cart/items/3", map[string]any{"quantity": 2})

	// missing mobile blocks and produces no message
	w = doJSON(t, s, http.MethodPost, "/api/v1/checkout", map[string]any{
		"mobile": "", "address": "12 Gandhi Road",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/api/v1/checkout", map[string]any{
		"mobile": "+91 1", "address": "12 Gandhi Road",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("checkout %v: %s", w.Code, w.Body.String())
	}
	var o service.Order
	decode(t, w, &o)
	if o.Total != 132 || o.Reference == "" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !strings.HasPrefix(o.Link, "https://wa.me/919876543210?text=") {
		t.Fatalf("bad link: %q", o.Link)
	}
}

func TestLanguageFlow(t *testing.T) {
	s := setupServer(t, stubGeo{})

	w := doJSON(t, s, http.MethodPut, "/api/v1/language", map[string]any{"language": "ta"})
	if w.Code != http.StatusOK {
		t.Fatalf("set language %v", w.Code)
	}
	w = doJSON(t, s, http.MethodGet, "/api/v1/categories", nil)
	var cats []struct {
		Category domain.Category `json:"category"`
		Label    string          `json:"label"`
	}
	decode(t, w, &cats)
	if len(cats) != len(domain.Categories) || cats[0].Label != "அனைத்தும்" {
		t.Fatalf("expected Tamil labels, got %+v", cats)
	}

	w = doJSON(t, s, http.MethodPut, "/api/v1/language", map[string]any{"language": "fr"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown language, got %v", w.Code)
	}
}

func TestLocationFlow(t *testing.T) {
	s := setupServer(t, stubGeo{loc: domain.Location{Lat: 12.9, Lng: 77.6}})

	w := doJSON(t, s, http.MethodPost, "/api/v1/location", map[string]any{"mobile": "+91 1"})
	if w.Code != http.StatusOK {
		t.Fatalf("capture %v: %s", w.Code, w.Body.String())
	}
	var res struct {
		Details domain.CustomerDetails `json:"details"`
		Notice  string                 `json:"notice"`
		Error   string                 `json:"error"`
	}
	decode(t, w, &res)
	if res.Details.Location == nil || res.Details.Location.Lat != 12.9 {
		t.Fatalf("location not merged: %+v", res)
	}
	if res.Details.Address == "" || res.Error != "" {
		t.Fatalf("expected placeholder address and no error: %+v", res)
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/location", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "requesting") {
		t.Fatalf("status endpoint: %v %q", w.Code, w.Body.String())
	}
}

func TestLocationFlow_Failure(t *testing.T) {
	s := setupServer(t, stubGeo{err: service.ErrPermissionDenied})

	w := doJSON(t, s, http.MethodPost, "/api/v1/location", map[string]any{"address": "kept"})
	if w.Code != http.StatusOK {
		t.Fatalf("failure should be a non-fatal 200, got %v", w.Code)
	}
	var res struct {
		Details domain.CustomerDetails `json:"details"`
		Error   string                 `json:"error"`
	}
	decode(t, w, &res)
	if res.Details.Address != "kept" || res.Details.Location != nil || res.Error == "" {
		t.Fatalf("unexpected failure result: %+v", res)
	}
}
