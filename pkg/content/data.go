// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package content

// The marketing site ships its catalogue with the binary. Editing these
// slices and redeploying is the publishing workflow.

var posts = []Post{
	{
		Slug:        "why-guest-feedback-beats-star-ratings",
		Title:       "Why guest feedback beats star ratings",
		Excerpt:     "Star ratings tell you that something went wrong. Structured feedback tells you what, where and on which shift.",
		Author:      "Elena Ferreira",
		PublishedAt: "2026-07-14",
		ReadMinutes: 6,
		Tags:        []string{"feedback", "operations"},
		Body:        "A 3.8 average hides a broken breakfast service behind a great front desk. Structured in-stay feedback separates the two, so the right team hears about the right problem while the guest is still in the building.",
	},
	{
		Slug:        "qr-codes-that-guests-actually-scan",
		Title:       "QR codes that guests actually scan",
		Excerpt:     "Placement, timing and a one-question opener make the difference between 2% and 30% response rates.",
		Author:      "Tom Okafor",
		PublishedAt: "2026-06-02",
		ReadMinutes: 4,
		Tags:        []string{"qr", "response-rates"},
		Body:        "Guests scan when the ask is small and the moment is right. One question at the table beats ten questions in a checkout email, every time we have measured it.",
	},
	{
		Slug:        "turning-complaints-into-repeat-bookings",
		Title:       "Turning complaints into repeat bookings",
		Excerpt:     "Service recovery inside the stay converts your angriest guests into your most loyal ones.",
		Author:      "Elena Ferreira",
		PublishedAt: "2026-04-21",
		ReadMinutes: 7,
		Tags:        []string{"service-recovery", "retention"},
		Body:        "A complaint resolved before checkout is worth more than a stay with no complaint at all. The guests who tell you what went wrong are giving you a second chance the silent ones never will.",
	},
	{
		Slug:        "benchmarking-venues-across-a-group",
		Title:       "Benchmarking venues across a group",
		Excerpt:     "Comparing like with like: how multi-venue operators read feedback without punishing their busiest sites.",
		Author:      "Priya Nair",
		PublishedAt: "2026-02-09",
		ReadMinutes: 5,
		Tags:        []string{"multi-venue", "operations"},
		Body:        "Raw scores punish the airport property and flatter the boutique one. Normalise by occupancy and service mix before a single venue manager sees a league table.",
	},
}

var articles = []Article{
	{
		Slug:     "getting-started-with-your-account",
		Title:    "Getting started with your account",
		Summary:  "From the invitation email to your first venue in under ten minutes.",
		Category: "Getting started",
		Body:     "Open the set-password link from your welcome email, choose a password, and you land in the dashboard. Add your first venue from Settings, then print its QR pack.",
	},
	{
		Slug:     "inviting-your-team",
		Title:    "Inviting your team",
		Summary:  "Master users can invite managers and restrict them to specific venues.",
		Category: "Getting started",
		Body:     "Invitations are scoped: leave the venue list empty for full access, or pick venues to limit what the invitee sees. Invitations expire after seven days and can be resent.",
	},
	{
		Slug:     "understanding-your-trial",
		Title:    "Understanding your trial",
		Summary:  "What happens during and after the free trial period.",
		Category: "Billing",
		Body:     "Trials run for the number of days agreed at signup, usually fourteen. When the trial expires the account keeps its data but stops collecting new responses until a plan is chosen.",
	},
	{
		Slug:     "exporting-feedback-data",
		Title:    "Exporting feedback data",
		Summary:  "Download responses as CSV for your own reporting.",
		Category: "Reports",
		Body:     "Every report view has an export button. Exports respect the venue filter and date range you have applied, and include the free-text comments.",
	},
	{
		Slug:     "troubleshooting-qr-codes",
		Title:    "Troubleshooting QR codes",
		Summary:  "What to check when a printed code stops resolving.",
		Category: "Venues",
		Body:     "Codes never expire, so a dead code is almost always a deleted venue or a reprint from a test account. Regenerate the QR pack from the venue page and replace the print.",
	},
}
