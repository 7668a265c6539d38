// Package cli renders podcast data for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/podplay/internal/dateutil"
	"github.com/tesso57/podplay/internal/domain/podcast"
	"github.com/tesso57/podplay/internal/presentation/cli/textutil"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes human-readable listings.
type Printer struct {
	Out        io.Writer
	Width      int
	DateLayout string
}

// NewPrinter constructs a Printer.
func NewPrinter(out io.Writer, width int, dateLayout string) Printer {
	return Printer{Out: out, Width: width, DateLayout: dateLayout}
}

// Summaries prints search results, one block per podcast.
func (p Printer) Summaries(summaries []podcast.Summary) {
	if len(summaries) == 0 {
		p.line("No podcasts found.")
		return
	}
	for i, s := range summaries {
		p.line(indexStyle.Render(fmt.Sprintf("%2d.", i+1)) + " " + titleStyle.Render(p.fit(s.Name, 5)))
		p.line("    " + metaStyle.Render(p.fit("updated "+s.LastUpdated+"  "+s.FeedURL, 4)))
	}
}

// Podcast prints a podcast header followed by up to limit episodes.
// A non-positive limit prints every episode.
func (p Printer) Podcast(pc *podcast.Podcast, limit int) {
	if pc == nil {
		return
	}
	p.line(titleStyle.Render(p.fit(orDefault(pc.TitleText(), pc.FeedURL), 0)))
	if pc.LastUpdated != nil {
		p.line(metaStyle.Render("updated " + dateutil.DateToShortDate(*pc.LastUpdated, p.DateLayout)))
	}
	if desc := textutil.HTMLToText(pc.DescriptionText()); desc != "" {
		for l := range strings.SplitSeq(desc, "\n") {
			p.line(p.fit(l, 0))
		}
	}
	p.line("")

	episodes := pc.Episodes
	if limit > 0 && len(episodes) > limit {
		episodes = episodes[:limit]
	}
	if len(episodes) == 0 {
		p.line("No episodes.")
		return
	}
	for _, ep := range episodes {
		date := dateutil.DateToShortDate(ep.ReleaseDate, p.DateLayout)
		p.line(indexStyle.Render(date) + " " + titleStyle.Render(p.fit(textutil.SingleLine(ep.Title), len(date)+1)))
		meta := strings.TrimSpace(strings.Join([]string{ep.Duration, ep.MediaURL}, "  "))
		if meta != "" {
			p.line("    " + metaStyle.Render(p.fit(meta, 4)))
		}
		if desc := textutil.SingleLine(textutil.HTMLToText(ep.Description)); desc != "" {
			p.line("    " + p.fit(desc, 4))
		}
	}
}

// Subscriptions prints the subscribed feed URLs with their indexes.
func (p Printer) Subscriptions(feeds []string) {
	if len(feeds) == 0 {
		p.line("No subscriptions.")
		return
	}
	for i, feed := range feeds {
		p.line(indexStyle.Render(fmt.Sprintf("%2d", i)) + " " + feed)
	}
}

func (p Printer) fit(text string, indent int) string {
	if p.Width <= 0 {
		return text
	}
	return textutil.Truncate(text, p.Width-indent)
}

func (p Printer) line(s string) {
	_, _ = fmt.Fprintln(p.Out, s)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
