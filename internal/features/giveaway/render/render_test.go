package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"free-game-tracker/internal/features/giveaway/models"
	"free-game-tracker/internal/features/giveaway/pipeline"
	"free-game-tracker/internal/features/giveaway/view"
)

func TestFormatWorth(t *testing.T) {
	assert.Equal(t, "Free", FormatWorth("N/A"))
	assert.Equal(t, "$19.99", FormatWorth("$19.99"))
}

func TestFormatEndDate(t *testing.T) {
	assert.Equal(t, "No expiration", FormatEndDate("N/A"))
	assert.Equal(t, "March 5, 2025", FormatEndDate("2025-03-05 23:59:00"))
	assert.Equal(t, "soon", FormatEndDate("soon"))
}

func TestFormatClaims(t *testing.T) {
	assert.Equal(t, "0 claimed", FormatClaims(0))
	assert.Equal(t, "1,234,567 claimed", FormatClaims(1234567))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain", PlainText("  plain "))
	assert.Equal(t, "Step one\nStep two", PlainText("<p>Step one<br>Step <b>two</b></p>"))
	assert.Equal(t, "Tom & Jerry", PlainText("Tom &amp; Jerry"))
}

func snapshot() view.Snapshot {
	records := []models.Giveaway{
		{ID: 1, Title: "Forever Game", Worth: "N/A", Platforms: "PC", EndDate: "N/A", Users: 1500},
		{ID: 2, Title: "Big Deal", Worth: "$40.00", Platforms: "PC, Steam", EndDate: "2025-01-02 00:00:00", Users: 20,
			OpenGiveawayURL: "https://example.com/2", Description: "Great <br> game", Instructions: "<ol><li>Claim it</li></ol>"},
		{ID: 3, Title: "Small Deal", Worth: "$5.00", Platforms: "PS4", EndDate: "N/A"},
		{ID: 4, Title: "Mid Deal", Worth: "$10.00", Platforms: "Xbox One", EndDate: "N/A"},
		{ID: 5, Title: "Tiny Deal", Worth: "$1.00", Platforms: "Android", EndDate: "N/A"},
	}
	c := pipeline.Process(records)
	return view.Snapshot{
		Status:    view.StatusReady,
		Platforms: pipeline.DerivePlatforms(records),
		Selected:  []string{"PC"},
		View:      view.Derive(c, models.Selection{}, false),
	}
}

func TestText_Ready(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snapshot(), Options{}))
	out := buf.String()

	assert.Contains(t, out, "[x] PC")
	assert.Contains(t, out, "[ ] Steam")
	assert.Contains(t, out, "Featured Deals")
	assert.Contains(t, out, "Hot Deal Big Deal")
	assert.Contains(t, out, "January 2, 2025")
	assert.Contains(t, out, "Limited Time Offers")
	assert.Contains(t, out, "Tiny Deal")
	assert.Contains(t, out, "Free Forever Games (1) [collapsed]")
	assert.NotContains(t, out, "1,500 claimed")
	assert.NotContains(t, out, "Claim it")
}

func TestText_ExpandedWithDetails(t *testing.T) {
	snap := snapshot()
	snap.ShowFreeForever = true

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap, Options{Details: true}))
	out := buf.String()

	assert.Contains(t, out, "Free Forever Games (1)")
	assert.NotContains(t, out, "[collapsed]")
	assert.Contains(t, out, "1,500 claimed")
	assert.Contains(t, out, "No expiration")
	assert.Contains(t, out, "Claim it")
	assert.NotContains(t, out, "<li>")
}

func TestText_NoFeaturedSectionWhenEmpty(t *testing.T) {
	snap := snapshot()
	snap.Featured = nil

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, snap, Options{}))
	assert.NotContains(t, buf.String(), "Featured Deals")
}

func TestText_States(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, view.Snapshot{Status: view.StatusLoading}, Options{}))
	assert.Equal(t, "Loading...\n", buf.String())

	buf.Reset()
	require.NoError(t, Text(&buf, view.Snapshot{Status: view.StatusError, Error: "Failed to load games. Please try again later."}, Options{}))
	assert.Equal(t, "Oops!\nFailed to load games. Please try again later.\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	assert.Error(t, Text(failingWriter{}, snapshot(), Options{}))
}
