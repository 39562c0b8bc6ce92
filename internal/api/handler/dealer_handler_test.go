package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bestcars/dealership-gateway/internal/api/middleware"
	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/infrastructure/downstream"
)

type stubDealerService struct {
	dealers       json.RawMessage
	dealer        json.RawMessage
	reviews       []domain.Review
	review        domain.Review
	getReviewErr  error
	addReviewErr  error
	editReviewErr error
	newDealerErr  error
	editDealerErr error
	resp          json.RawMessage

	addReviewCalls int
	getDealerCalls int
}

func (s *stubDealerService) ListDealers(context.Context, string) json.RawMessage {
	return s.dealers
}

func (s *stubDealerService) GetDealer(_ context.Context, dealerID int) (json.RawMessage, error) {
	s.getDealerCalls++
	if dealerID <= 0 {
		return nil, domain.ErrBadRequest
	}
	return s.dealer, nil
}

func (s *stubDealerService) GetDealerReviews(context.Context, int) ([]domain.Review, error) {
	return s.reviews, nil
}

func (s *stubDealerService) GetReview(context.Context, int) (domain.Review, error) {
	return s.review, s.getReviewErr
}

func (s *stubDealerService) AddReview(context.Context, json.RawMessage) error {
	s.addReviewCalls++
	return s.addReviewErr
}

func (s *stubDealerService) EditReview(context.Context, int, json.RawMessage) (json.RawMessage, error) {
	return s.resp, s.editReviewErr
}

func (s *stubDealerService) NewDealer(context.Context, json.RawMessage) (json.RawMessage, error) {
	return s.resp, s.newDealerErr
}

func (s *stubDealerService) EditDealer(context.Context, *domain.User, int, json.RawMessage) (json.RawMessage, error) {
	return s.resp, s.editDealerErr
}

// asUser injects session claims the way the session middleware would.
func asUser(c echo.Context, username, role string, dealerID int) {
	c.Set(middleware.CtxUsername, username)
	c.Set(middleware.CtxRole, role)
	c.Set(middleware.CtxDealerID, dealerID)
}

func TestDealerHandler_ListDealers_NullOnFailure(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{dealers: nil})
	c, rec := newTestContext(http.MethodGet, "/get_dealers", "")

	if err := h.ListDealers(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != float64(200) {
		t.Fatalf("unexpected status field: %v", body)
	}
	if _, present := body["dealers"]; !present || body["dealers"] != nil {
		t.Fatalf("expected null dealers list, got %v", body["dealers"])
	}
}

func TestDealerHandler_ListDealers_AllMeansEveryState(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{dealers: json.RawMessage(`[{"id":1}]`)})
	c, rec := newTestContext(http.MethodGet, "/get_dealers/All", "")
	c.SetParamNames("state")
	c.SetParamValues("All")

	if err := h.ListDealers(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestDealerHandler_GetDealer_BadID(t *testing.T) {
	svc := &stubDealerService{}
	h := NewDealerHandler(svc)

	for _, id := range []string{"abc", "0", "-4"} {
		c, rec := newTestContext(http.MethodGet, "/dealer/"+id, "")
		c.SetParamNames("id")
		c.SetParamValues(id)

		if err := h.GetDealer(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id=%q: status = %d, want 400", id, rec.Code)
		}
	}
	if svc.getDealerCalls != 0 {
		t.Fatalf("service must not be called for malformed ids")
	}
}

func TestDealerHandler_GetReview_NotFound(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{getReviewErr: domain.ErrReviewNotFound})
	c, rec := newTestContext(http.MethodGet, "/reviews/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.GetReview(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "review not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDealerHandler_AddReview_AnonymousForbidden(t *testing.T) {
	svc := &stubDealerService{}
	h := NewDealerHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/add_review", `{"review":"nice"}`)

	if err := h.AddReview(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.addReviewCalls != 0 {
		t.Fatalf("anonymous request must not reach the service")
	}
}

func TestDealerHandler_AddReview_DownstreamFailureIs401(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{addReviewErr: domain.ErrDownstream})
	c, rec := newTestContext(http.MethodPost, "/add_review", `{"review":"nice"}`)
	asUser(c, "alice", domain.RoleUser, 0)

	if err := h.AddReview(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// The historical contract answers an insert failure with 401, not 502.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Error in posting review" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDealerHandler_AddReview_Success(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})
	c, rec := newTestContext(http.MethodPost, "/add_review", `{"review":"nice"}`)
	asUser(c, "alice", domain.RoleUser, 0)

	if err := h.AddReview(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != float64(200) {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDealerHandler_EditReview_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"forbidden", &downstream.StatusError{Service: "dealers", Code: 403}, http.StatusForbidden,
			"Forbidden: You do not have permission to edit this review"},
		{"not found", &downstream.StatusError{Service: "dealers", Code: 404}, http.StatusNotFound,
			"Review not found"},
		{"other status", &downstream.StatusError{Service: "dealers", Code: 502}, http.StatusInternalServerError,
			"An error occurred editing the review"},
		{"transport", &downstream.TransportError{Service: "dealers"}, http.StatusInternalServerError,
			"An error occurred editing the review"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewDealerHandler(&stubDealerService{editReviewErr: tc.err})
			c, rec := newTestContext(http.MethodPut, "/put_review/3", `{"review":"edited"}`)
			c.SetParamNames("id")
			c.SetParamValues("3")

			if err := h.EditReview(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if body := decodeBody(t, rec); body["message"] != tc.wantMsg {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestDealerHandler_EditReview_WrongMethod(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})
	c, rec := newTestContext(http.MethodGet, "/put_review/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.EditReview(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestDealerHandler_NewDealer_Failure(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{newDealerErr: domain.ErrDownstream})
	c, rec := newTestContext(http.MethodPost, "/new_dealer", `{"name":"Best Cars"}`)

	if err := h.NewDealer(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Error in creating Dealer" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDealerHandler_EditDealer_AuthorizationBeforeMethod(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{resp: json.RawMessage(`{"status":200}`)})

	// Anonymous request with a wrong verb: the access check answers first.
	c, rec := newTestContext(http.MethodGet, "/edit_dealer/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.EditDealer(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "No Access" {
		t.Fatalf("unexpected body: %v", body)
	}

	// Same wrong verb from an authorized dealer now hits the method check.
	c, rec = newTestContext(http.MethodGet, "/edit_dealer/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	asUser(c, "dealer5", domain.RoleDealer, 5)
	if err := h.EditDealer(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestDealerHandler_EditDealer_MismatchedDealer(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{})
	c, rec := newTestContext(http.MethodPut, "/edit_dealer/5", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	asUser(c, "dealer3", domain.RoleDealer, 3)

	if err := h.EditDealer(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestDealerHandler_EditDealer_AdminSuccess(t *testing.T) {
	h := NewDealerHandler(&stubDealerService{resp: json.RawMessage(`{"status":200,"dealer":{"id":5}}`)})
	c, rec := newTestContext(http.MethodPut, "/edit_dealer/5", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	asUser(c, "root", domain.RoleAdmin, 0)

	if err := h.EditDealer(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
