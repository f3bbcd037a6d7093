// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/tracing"
)

type API struct {
	catalogue *Catalogue

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(catalogue *Catalogue, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		catalogue: catalogue,
		tracer:    tracer,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/marketing/posts", a.listPosts)
	mux.Get("/api/marketing/posts/{slug}", a.getPost)
	mux.Get("/api/marketing/articles", a.listArticles)
	mux.Get("/api/marketing/articles/{slug}", a.getArticle)
}

func (a *API) listPosts(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "content.API.listPosts")
	defer span.End()

	q := r.URL.Query()
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": a.catalogue.FilterPosts(q.Get("q"), q.Get("tag")),
	})
}

func (a *API) getPost(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "content.API.getPost")
	defer span.End()

	post, ok := a.catalogue.PostBySlug(chi.URLParam(r, "slug"))
	if !ok {
		a.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}
	a.writeJSON(w, http.StatusOK, post)
}

func (a *API) listArticles(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "content.API.listArticles")
	defer span.End()

	q := r.URL.Query()
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles": a.catalogue.FilterArticles(q.Get("q"), q.Get("category")),
	})
}

func (a *API) getArticle(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "content.API.getArticle")
	defer span.End()

	article, ok := a.catalogue.ArticleBySlug(chi.URLParam(r, "slug"))
	if !ok {
		a.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}
	a.writeJSON(w, http.StatusOK, article)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
