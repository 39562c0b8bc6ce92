package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

type stubInventoryService struct {
	filters  ports.InventoryFilters
	query    ports.InventoryQuery
	cars     json.RawMessage
	carsErr  error
	page     *ports.InventoryPage
	pageErr  error
	makesErr error
}

func (s *stubInventoryService) DealerInventory(_ context.Context, _ int, filters ports.InventoryFilters) (json.RawMessage, error) {
	s.filters = filters
	return s.cars, s.carsErr
}

func (s *stubInventoryService) FullInventory(_ context.Context, q ports.InventoryQuery) (*ports.InventoryPage, error) {
	s.query = q
	return s.page, s.pageErr
}

func (s *stubInventoryService) MakesModels(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"makes":[]}`), s.makesErr
}

func TestInventoryHandler_DealerInventory_MapsQueryParams(t *testing.T) {
	svc := &stubInventoryService{cars: json.RawMessage(`[]`)}
	h := NewInventoryHandler(svc, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/get_inventory/5?year=2020&make=Toyota", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.DealerInventory(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.filters.Year != "2020" || svc.filters.Make != "Toyota" {
		t.Fatalf("filters not mapped: %+v", svc.filters)
	}
}

func TestInventoryHandler_DealerInventory_NullCarsOnFailure(t *testing.T) {
	svc := &stubInventoryService{carsErr: domain.ErrDownstream}
	h := NewInventoryHandler(svc, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/get_inventory/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.DealerInventory(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["cars"] != nil {
		t.Fatalf("expected null cars on failure, got %v", body["cars"])
	}
}

func TestInventoryHandler_DealerInventory_BadID(t *testing.T) {
	h := NewInventoryHandler(&stubInventoryService{}, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/get_inventory/zero", "")
	c.SetParamNames("id")
	c.SetParamValues("zero")

	if err := h.DealerInventory(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInventoryHandler_FullInventory_Success(t *testing.T) {
	svc := &stubInventoryService{page: &ports.InventoryPage{
		Cars: json.RawMessage(`[{"id":1}]`), Total: 12, CurrentPage: 2, TotalPages: 3,
	}}
	h := NewInventoryHandler(svc, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/full_inventory?page=2&per_page=5&priceMin=100&priceMax=900", "")

	if err := h.FullInventory(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.query.Page != 2 || svc.query.Limit != 5 || svc.query.PriceMin != "100" {
		t.Fatalf("query not mapped: %+v", svc.query)
	}
	body := decodeBody(t, rec)
	if body["total"] != float64(12) || body["currentPage"] != float64(2) || body["totalPages"] != float64(3) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestInventoryHandler_FullInventory_FailureIsOpaque500(t *testing.T) {
	h := NewInventoryHandler(&stubInventoryService{pageErr: domain.ErrBadPayload}, zerolog.Nop())
	c, rec := newTestContext(http.MethodGet, "/full_inventory", "")

	if err := h.FullInventory(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "An internal error has occurred!" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestInventoryHandler_MakesModels_WrongMethod(t *testing.T) {
	h := NewInventoryHandler(&stubInventoryService{}, zerolog.Nop())
	c, rec := newTestContext(http.MethodPost, "/makes_models", `{}`)

	if err := h.MakesModels(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
