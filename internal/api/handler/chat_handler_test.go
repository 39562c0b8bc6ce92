package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

type stubChatService struct {
	reply string
	err   error
}

func (s *stubChatService) Reply(context.Context, string) (string, error) {
	return s.reply, s.err
}

func TestChatHandler_WrongMethod(t *testing.T) {
	h := NewChatHandler(&stubChatService{})
	c, rec := newTestContext(http.MethodGet, "/chat/", "")

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid request method" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	h := NewChatHandler(&stubChatService{})
	c, rec := newTestContext(http.MethodPost, "/chat/", `{"userMessage":""}`)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "No message provided" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatHandler_Success(t *testing.T) {
	h := NewChatHandler(&stubChatService{reply: "The Corolla is reliable."})
	c, rec := newTestContext(http.MethodPost, "/chat/", `{"userMessage":"recommend a sedan"}`)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["response"] != "The Corolla is reliable." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatHandler_ProviderFailure(t *testing.T) {
	h := NewChatHandler(&stubChatService{err: domain.ErrDownstream})
	c, rec := newTestContext(http.MethodPost, "/chat/", `{"userMessage":"hello"}`)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
