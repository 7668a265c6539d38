package main

import (
	"fmt"
	"strings"

	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// SearchCmd searches the catalog and optionally opens one result.
type SearchCmd struct {
	Term  []string `arg:"" help:"Search term."`
	Open  int      `help:"Load the episodes of the Nth result." default:"0"`
	Limit int      `help:"Maximum episodes to show with --open." default:"10"`
}

// Run implements the search command.
func (c *SearchCmd) Run(app *App) error {
	term := strings.Join(c.Term, " ")
	var summaries []podcast.Summary
	if err := await(func(on dispatch.Executor, finish func()) {
		app.Search.SearchPodcasts(term, on, func(s []podcast.Summary) {
			summaries = s
			finish()
		})
	}); err != nil {
		return err
	}

	if c.Open <= 0 {
		app.Printer.Summaries(summaries)
		return nil
	}
	if c.Open > len(summaries) {
		return fmt.Errorf("result %d out of range (found %d)", c.Open, len(summaries))
	}

	summary := summaries[c.Open-1]
	var p *podcast.Podcast
	if err := await(func(on dispatch.Executor, finish func()) {
		app.Podcasts.GetPodcastForSummary(summary, on, func(got *podcast.Podcast) {
			p = got
			finish()
		})
	}); err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("error retrieving the feed for %s", summary.FeedURL)
	}
	app.Printer.Podcast(p, c.Limit)
	return nil
}

// EpisodesCmd lists the episodes of a feed.
type EpisodesCmd struct {
	FeedURL string `arg:"" name:"feed-url" help:"RSS feed URL."`
	Limit   int    `help:"Maximum episodes to show (0 for all)." default:"10"`
}

// Run implements the episodes command.
func (c *EpisodesCmd) Run(app *App) error {
	var p *podcast.Podcast
	if err := await(func(on dispatch.Executor, finish func()) {
		app.Podcasts.GetPodcast(c.FeedURL, on, func(got *podcast.Podcast) {
			p = got
			finish()
		})
	}); err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("error retrieving the feed for %s", c.FeedURL)
	}
	app.Printer.Podcast(p, c.Limit)
	return nil
}

// SubscribeCmd adds a subscription.
type SubscribeCmd struct {
	FeedURL string `arg:"" name:"feed-url" help:"RSS feed URL."`
}

// Run implements the subscribe command.
func (c *SubscribeCmd) Run(app *App) error {
	feeds, err := app.Subscriptions.Add(c.FeedURL)
	if err != nil {
		return err
	}
	app.Printer.Subscriptions(feeds)
	return nil
}

// UnsubscribeCmd removes a subscription.
type UnsubscribeCmd struct {
	Index int `arg:"" help:"Subscription index as shown by 'subscriptions'."`
}

// Run implements the unsubscribe command.
func (c *UnsubscribeCmd) Run(app *App) error {
	feeds, err := app.Subscriptions.Remove(c.Index)
	if err != nil {
		return err
	}
	app.Printer.Subscriptions(feeds)
	return nil
}

// SubscriptionsCmd lists subscriptions.
type SubscriptionsCmd struct{}

// Run implements the subscriptions command.
func (c *SubscriptionsCmd) Run(app *App) error {
	feeds, err := app.Subscriptions.List()
	if err != nil {
		return err
	}
	app.Printer.Subscriptions(feeds)
	return nil
}
