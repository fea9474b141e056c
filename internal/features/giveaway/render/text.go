// Package render prints a view snapshot as plain text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"free-game-tracker/internal/features/giveaway/models"
	"free-game-tracker/internal/features/giveaway/pipeline"
	"free-game-tracker/internal/features/giveaway/view"
)

// Options tune the text output.
type Options struct {
	// Details adds description and claim instructions under each entry.
	Details bool
}

// Text writes snap to w.
func Text(w io.Writer, snap view.Snapshot, opts Options) error {
	p := &printer{w: w}

	switch snap.Status {
	case view.StatusLoading:
		p.line("Loading...")
		return p.err
	case view.StatusError:
		p.line("Oops!")
		p.line(snap.Error)
		return p.err
	}

	p.line("Free Game Tracker")
	p.line("Discover and claim free games before they're gone!")
	p.line("")

	p.line("Filter by Platform")
	marks := make([]string, 0, len(snap.Platforms))
	for _, platform := range snap.Platforms {
		box := "[ ]"
		if snap.IsSelected(platform) {
			box = "[x]"
		}
		marks = append(marks, box+" "+platform)
	}
	p.line("  " + strings.Join(marks, "  "))
	p.line("")

	if len(snap.Featured) > 0 {
		p.section("Featured Deals", snap.Featured, opts, true)
	}
	p.section("Limited Time Offers", snap.Regular, opts, false)

	header := fmt.Sprintf("Free Forever Games (%d)", len(snap.FreeForever))
	if snap.ShowFreeForever {
		p.section(header, snap.FreeForever, opts, false)
	} else {
		p.line(header + " [collapsed]")
		p.line("")
	}

	p.line("Data provided by GamerPower API")
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) section(title string, games []models.NormalizedGiveaway, opts Options, hot bool) {
	p.line(title)
	if len(games) == 0 {
		p.line("  (none)")
		p.line("")
		return
	}
	if p.err != nil {
		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, g := range games {
		badge := ""
		if hot {
			badge = "Hot Deal "
		}
		fmt.Fprintf(tw, "  %s%s\t%s\t%s\tEnds: %s\t%s\n",
			badge,
			g.Title,
			FormatWorth(g.Worth),
			strings.Join(pipeline.SplitPlatforms(g.Platforms), ", "),
			FormatEndDate(g.EndDate),
			FormatClaims(g.Users),
		)
		fmt.Fprintf(tw, "    %s\t\t\t\t\n", g.OpenGiveawayURL)
		if opts.Details {
			for _, block := range []string{g.Description, g.Instructions} {
				text := PlainText(block)
				if text == "" {
					continue
				}
				for _, l := range strings.Split(text, "\n") {
					fmt.Fprintf(tw, "    %s\t\t\t\t\n", l)
				}
			}
		}
	}
	if err := tw.Flush(); err != nil {
		p.err = err
		return
	}
	p.line("")
}
