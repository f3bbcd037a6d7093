// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

import "testing"

func TestCatalogue_FilterPosts(t *testing.T) {
	c := NewCatalogue()

	testCases := []struct {
		name    string
		query   string
		tag     string
		want    int
		contain string
	}{
		{name: "no filter returns everything", want: len(posts)},
		{name: "query is case-insensitive", query: "QR CODES", want: 1, contain: "qr-codes-that-guests-actually-scan"},
		{name: "query matches excerpt", query: "response rates", want: 1, contain: "qr-codes-that-guests-actually-scan"},
		{name: "query matches tags", query: "retention", want: 1, contain: "turning-complaints-into-repeat-bookings"},
		{name: "substring match", query: "feedb", want: 2},
		{name: "tag filter is exact", tag: "operations", want: 2},
		{name: "query and tag combine", query: "star", tag: "operations", want: 1, contain: "why-guest-feedback-beats-star-ratings"},
		{name: "no match", query: "zzzz", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.FilterPosts(tc.query, tc.tag)
			if len(got) != tc.want {
				t.Fatalf("expected %d posts, got %d", tc.want, len(got))
			}
			if tc.contain != "" {
				found := false
				for _, p := range got {
					if p.Slug == tc.contain {
						found = true
					}
					if p.Body != "" {
						t.Errorf("list results must not carry the body, got one for %q", p.Slug)
					}
				}
				if !found {
					t.Errorf("expected slug %q in results", tc.contain)
				}
			}
		})
	}
}

func TestCatalogue_PostBySlug(t *testing.T) {
	c := NewCatalogue()

	post, ok := c.PostBySlug("why-guest-feedback-beats-star-ratings")
	if !ok {
		t.Fatal("expected post to exist")
	}
	if post.Body == "" {
		t.Error("expected single post to include the body")
	}

	if _, ok := c.PostBySlug("no-such-post"); ok {
		t.Error("expected unknown slug to miss")
	}
}

func TestCatalogue_FilterArticles(t *testing.T) {
	c := NewCatalogue()

	testCases := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{name: "no filter returns everything", want: len(articles)},
		{name: "category filter", category: "Getting started", want: 2},
		{name: "category is case-insensitive", category: "getting started", want: 2},
		{name: "query over summary", query: "csv", want: 1},
		{name: "query and category combine", query: "invit", category: "Getting started", want: 1},
		{name: "no match", query: "zzzz", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.FilterArticles(tc.query, tc.category)
			if len(got) != tc.want {
				t.Fatalf("expected %d articles, got %d", tc.want, len(got))
			}
		})
	}
}

func TestCatalogue_ArticleBySlug(t *testing.T) {
	c := NewCatalogue()

	article, ok := c.ArticleBySlug("understanding-your-trial")
	if !ok {
		t.Fatal("expected article to exist")
	}
	if article.Category != "Billing" {
		t.Errorf("expected category Billing, got %q", article.Category)
	}

	if _, ok := c.ArticleBySlug("no-such-article"); ok {
		t.Error("expected unknown slug to miss")
	}
}
