// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/tracing"
)

func newTestMux() *chi.Mux {
	mux := chi.NewMux()
	api := NewAPI(NewCatalogue(), tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPI_ListPosts(t *testing.T) {
	mux := newTestMux()

	testCases := []struct {
		name   string
		target string
		want   int
	}{
		{name: "all posts", target: "/api/marketing/posts", want: len(posts)},
		{name: "query filter", target: "/api/marketing/posts?q=QR", want: 1},
		{name: "tag filter", target: "/api/marketing/posts?tag=operations", want: 2},
		{name: "no match", target: "/api/marketing/posts?q=zzzz", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var body struct {
				Posts []Post `json:"posts"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if len(body.Posts) != tc.want {
				t.Errorf("expected %d posts, got %d", tc.want, len(body.Posts))
			}
		})
	}
}

func TestAPI_GetPost(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/marketing/posts/why-guest-feedback-beats-star-ratings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var post Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if post.Body == "" {
		t.Error("expected body in single post response")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/marketing/posts/no-such-post", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var errBody map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if errBody["error"] != "Not found" {
		t.Errorf("unexpected error body: %v", errBody)
	}
}

func TestAPI_ListArticles(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/marketing/articles?category=Billing", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Articles []Article `json:"articles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(body.Articles))
	}
	if body.Articles[0].Slug != "understanding-your-trial" {
		t.Errorf("unexpected article %q", body.Articles[0].Slug)
	}
}

func TestAPI_GetArticle(t *testing.T) {
	mux := newTestMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/marketing/articles/no-such-article", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
