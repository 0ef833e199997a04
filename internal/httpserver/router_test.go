package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tillmate/internal/clock"
	"tillmate/internal/domain"
	"tillmate/internal/money"
	productrepo "tillmate/internal/repository/product"
	basketsvc "tillmate/internal/service/basket"
	catalogsvc "tillmate/internal/service/catalog"
	salessvc "tillmate/internal/service/sales"

	"github.com/gin-gonic/gin"
)

type stubLedger struct {
	receipts []domain.Receipt
	lines    []domain.ReceiptLine
}

func (s *stubLedger) CommitReceipt(_ context.Context, receipt domain.Receipt, lines []domain.ReceiptLine) error {
	if err := domain.ValidateCommit(receipt, lines); err != nil {
		return err
	}
	s.receipts = append(s.receipts, receipt)
	s.lines = append(s.lines, lines...)
	return nil
}

func (s *stubLedger) ListLinesByDay(_ context.Context, dayKey string) ([]domain.ReceiptLine, int64, error) {
	if !money.ValidDayKey(dayKey) {
		return nil, 0, &domain.ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}
	}
	var out []domain.ReceiptLine
	var total int64
	for _, l := range s.lines {
		if l.DayKey == dayKey {
			out = append(out, l)
			total += l.UnitPriceCents
		}
	}
	return out, total, nil
}

func (s *stubLedger) ListReceiptsByDay(_ context.Context, dayKey string) ([]domain.Receipt, error) {
	if !money.ValidDayKey(dayKey) {
		return nil, &domain.ValidationError{Field: "dayKey", Reason: "must be YYYY-MM-DD"}
	}
	return s.receipts, nil
}

func (s *stubLedger) ListLinesByReceipt(_ context.Context, receiptID string) ([]domain.ReceiptLine, error) {
	var out []domain.ReceiptLine
	for _, l := range s.lines {
		if l.ReceiptID == receiptID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLedger) ListAllReceipts(_ context.Context) ([]domain.Receipt, error) {
	return s.receipts, nil
}

type stubProductRepo struct {
	products map[string]domain.Product
}

func (s *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) GetBySKU(_ context.Context, sku string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Search(_ context.Context, _ string) ([]domain.Product, error) {
	return s.List(context.Background())
}

func (s *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubProductRepo) Update(_ context.Context, id string, _ productrepo.UpdateInput) (*domain.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func testRouter(t *testing.T) (*gin.Engine, *stubLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	ledger := &stubLedger{}
	products := &stubProductRepo{products: map[string]domain.Product{
		"p-1": {ID: "p-1", Name: "Espresso", PriceCents: 350, Category: "Beverages", SKU: "BEV-ESP"},
	}}

	salesService := salessvc.New(ledger)
	basketService := basketsvc.New(ledger, salesService, clock.NewMonotonic(), logger)
	catalogService := catalogsvc.New(products)

	router := buildRouter(logger, nil, Deps{
		CatalogSvc: catalogService,
		BasketSvc:  basketService,
		SalesSvc:   salesService,
	}, nil)
	return router, ledger
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCheckoutEmptyBasketReturns400(t *testing.T) {
	router, ledger := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/basket/checkout", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
	if len(ledger.receipts) != 0 {
		t.Fatalf("ledger written on empty basket")
	}
}

func TestAddItemAndCheckoutFlow(t *testing.T) {
	router, ledger := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/basket/items", `{"productId":"p-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var state struct {
		TotalCents int64 `json:"totalCents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.TotalCents != 350 {
		t.Fatalf("totalCents = %d, want 350", state.TotalCents)
	}

	rec = doJSON(t, router, http.MethodPut, "/basket/customer", `{"name":" Jane "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set customer: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/basket/checkout", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if len(ledger.receipts) != 1 || len(ledger.lines) != 1 {
		t.Fatalf("ledger has %d receipts / %d lines, want 1/1", len(ledger.receipts), len(ledger.lines))
	}
	if name := ledger.receipts[0].CustomerName; name == nil || *name != "Jane" {
		t.Fatalf("customer name = %v, want Jane", name)
	}

	// Basket must be empty again.
	rec = doJSON(t, router, http.MethodGet, "/basket", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.TotalCents != 0 {
		t.Fatalf("basket not reset, totalCents = %d", state.TotalCents)
	}
}

func TestAddUnknownProductReturns404(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/basket/items", `{"productId":"nope"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDailySalesBadDayKeyReturns400(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/sales/daily?day=06/01/2024", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestDailySalesAfterCheckout(t *testing.T) {
	router, ledger := testRouter(t)

	doJSON(t, router, http.MethodPost, "/basket/items", `{"productId":"p-1"}`)
	doJSON(t, router, http.MethodPost, "/basket/items", `{"productId":"p-1"}`)
	rec := doJSON(t, router, http.MethodPost, "/basket/checkout", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d", rec.Code)
	}

	dayKey := ledger.receipts[0].DayKey
	rec = doJSON(t, router, http.MethodGet, "/sales/daily?day="+dayKey, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("daily sales: expected 200, got %d", rec.Code)
	}
	var sales domain.DailySales
	if err := json.Unmarshal(rec.Body.Bytes(), &sales); err != nil {
		t.Fatalf("decode sales: %v", err)
	}
	if len(sales.Items) != 2 || sales.TotalCents != 700 {
		t.Fatalf("daily sales = %d items total=%d, want 2 items total=700", len(sales.Items), sales.TotalCents)
	}
}

func TestProductsNotFound(t *testing.T) {
	router, _ := testRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/products/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
