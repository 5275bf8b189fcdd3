package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-legaldoc-be/internal/entity"
)

func TestHTTPDeliverySendSuccess(t *testing.T) {
	var received SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send-summary" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	d := NewHTTPDelivery(server.URL, 5*time.Second)
	err := d.Send(context.Background(), &SendRequest{
		Summary:      "S",
		Risks:        []entity.Risk{{Text: "R1", Severity: entity.SeverityMajor}},
		Email:        "user@example.com",
		DocumentName: "NDA.pdf",
		SendEmail:    true,
	})
	if err != nil {
		t.Fatalf("Send() = %v, want nil", err)
	}

	if received.Email != "user@example.com" || received.DocumentName != "NDA.pdf" || !received.SendEmail {
		t.Errorf("engine received wrong payload: %+v", received)
	}
}

func TestHTTPDeliverySendEngineError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "SMTP login failed"}`))
	}))
	defer server.Close()

	d := NewHTTPDelivery(server.URL, 5*time.Second)
	err := d.Send(context.Background(), &SendRequest{Email: "user@example.com"})

	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("Send() = %v, want ErrDeliveryFailed", err)
	}
	if !strings.Contains(err.Error(), "SMTP login failed") {
		t.Errorf("error should carry the engine's reason, got %q", err.Error())
	}
}

func TestHTTPDeliverySendEngineErrorNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	d := NewHTTPDelivery(server.URL, 5*time.Second)
	err := d.Send(context.Background(), &SendRequest{Email: "user@example.com"})

	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("Send() = %v, want ErrDeliveryFailed", err)
	}
}

func TestHTTPDeliverySendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use: connection refused

	d := NewHTTPDelivery(server.URL, 1*time.Second)
	err := d.Send(context.Background(), &SendRequest{Email: "user@example.com"})

	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("Send() = %v, want ErrServerUnreachable", err)
	}
}
