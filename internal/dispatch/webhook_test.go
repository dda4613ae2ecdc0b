package dispatch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RenaudDev/PaperPause/internal/dispatch"
	"github.com/RenaudDev/PaperPause/internal/domain"
)

var testItem = domain.QueueItem{
	Collection: "cats",
	BoardName:  "Cats Coloring Pages",
	Mode:       domain.ModeGrowth,
	Priority:   10,
	FeedURL:    "https://paperpause.app/animals/cats/index.xml",
}

func TestWebhookDispatcher_Dispatch(t *testing.T) {
	var got dispatch.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %q", ct)
		}
		if key := r.Header.Get("x-make-apikey"); key != "secret-key" {
			t.Errorf("api key header %q", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := dispatch.NewWebhookDispatcher(srv.URL, "secret-key", 5*time.Second)
	if err := d.Dispatch(context.Background(), testItem); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Collection != "cats" || got.BoardName != "Cats Coloring Pages" ||
		got.FeedURL != "https://paperpause.app/animals/cats/index.xml" {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestWebhookDispatcher_AcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d := dispatch.NewWebhookDispatcher(srv.URL, "k", 5*time.Second)
	if err := d.Dispatch(context.Background(), testItem); err != nil {
		t.Fatalf("202 must be a success: %v", err)
	}
}

func TestWebhookDispatcher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scenario queue full", http.StatusBadGateway)
	}))
	defer srv.Close()

	d := dispatch.NewWebhookDispatcher(srv.URL, "k", 5*time.Second)
	err := d.Dispatch(context.Background(), testItem)
	if err == nil {
		t.Fatal("expected error on 502")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "scenario queue full") {
		t.Fatalf("error should carry status and body snippet, got %v", err)
	}
}

func TestWebhookDispatcher_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable endpoint

	d := dispatch.NewWebhookDispatcher(srv.URL, "k", time.Second)
	if err := d.Dispatch(context.Background(), testItem); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
}
