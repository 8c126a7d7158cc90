package evaluation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// tiny valid PNG header, enough for sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestHTTPFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	data, mimeType, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q, want image/png", mimeType)
	}
	if len(data) != len(pngBytes) {
		t.Errorf("data length = %d, want %d", len(data), len(pngBytes))
	}
}

func TestHTTPFetcherSniffsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write(pngBytes)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	_, mimeType, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q, want sniffed image/png", mimeType)
	}
}

func TestHTTPFetcherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second)

	if _, _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrReferenceImageUnavailable) {
		t.Errorf("status 404: expected ErrReferenceImageUnavailable, got %v", err)
	}

	// connection refused
	if _, _, err := f.Fetch(context.Background(), "http://127.0.0.1:1/reference.png"); !errors.Is(err, ErrReferenceImageUnavailable) {
		t.Errorf("refused: expected ErrReferenceImageUnavailable, got %v", err)
	}
}

func TestHTTPFetcherEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second)
	if _, _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrReferenceImageUnavailable) {
		t.Errorf("empty body: expected ErrReferenceImageUnavailable, got %v", err)
	}
}
