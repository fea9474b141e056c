package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"free-game-tracker/internal/features/giveaway/models"
	"free-game-tracker/internal/features/giveaway/pipeline"
)

const dateLayout = "January 2, 2006"

// FormatWorth shows the sentinel as "Free" and anything else as delivered.
func FormatWorth(worth string) string {
	if worth == models.NotApplicable {
		return "Free"
	}
	return worth
}

// FormatEndDate renders an end date for people. Dates that do not parse are
// shown as delivered.
func FormatEndDate(endDate string) string {
	if endDate == models.NotApplicable {
		return "No expiration"
	}
	expiry := pipeline.ParseExpiry(endDate)
	if expiry.IsNever() {
		return endDate
	}
	return expiry.Time().Format(dateLayout)
}

// FormatClaims renders the claim counter with thousands separators.
func FormatClaims(users int) string {
	return humanize.Comma(int64(users)) + " claimed"
}

// PlainText strips markup from feed descriptions and instructions; <br>
// becomes a line break.
func PlainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return strings.TrimSpace(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	doc.Find("br").ReplaceWithHtml("\n")

	lines := strings.Split(doc.Text(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
