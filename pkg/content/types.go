// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

// Post is a marketing blog entry.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Author      string   `json:"author"`
	PublishedAt string   `json:"publishedAt"`
	ReadMinutes int      `json:"readMinutes"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body,omitempty"`
}

// Article is a help-centre entry grouped under a category.
type Article struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Body     string `json:"body,omitempty"`
}
