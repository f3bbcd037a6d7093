// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

import "strings"

// Catalogue serves the static marketing content. Lookups run over
// in-package slices, so there is no storage dependency here.
type Catalogue struct {
	posts    []Post
	articles []Article
}

func NewCatalogue() *Catalogue {
	return &Catalogue{
		posts:    posts,
		articles: articles,
	}
}

// FilterPosts returns posts matching the free-text query and the exact
// tag. Either filter may be empty. The query is a case-insensitive
// substring match over title, excerpt and tags.
func (c *Catalogue) FilterPosts(query, tag string) []Post {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]Post, 0, len(c.posts))
	for _, p := range c.posts {
		if tag != "" && !containsString(p.Tags, tag) {
			continue
		}
		if query != "" && !postMatches(p, query) {
			continue
		}
		summary := p
		summary.Body = ""
		result = append(result, summary)
	}
	return result
}

// PostBySlug returns the full post, body included, or false.
func (c *Catalogue) PostBySlug(slug string) (Post, bool) {
	for _, p := range c.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// FilterArticles returns help articles matching the free-text query and
// the exact category, query matched over title and summary.
func (c *Catalogue) FilterArticles(query, category string) []Article {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]Article, 0, len(c.articles))
	for _, a := range c.articles {
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		if query != "" && !articleMatches(a, query) {
			continue
		}
		summary := a
		summary.Body = ""
		result = append(result, summary)
	}
	return result
}

// ArticleBySlug returns the full article, body included, or false.
func (c *Catalogue) ArticleBySlug(slug string) (Article, bool) {
	for _, a := range c.articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return Article{}, false
}

func postMatches(p Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func articleMatches(a Article, query string) bool {
	return strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Summary), query)
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
