// Command podplay searches podcast catalogs and reads podcast feeds.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command-line grammar.
type CLI struct {
	Config string `help:"Config file path (default ~/.config/podplay/config.yaml)." type:"path"`

	Search        SearchCmd        `cmd:"" help:"Search the podcast catalog."`
	Episodes      EpisodesCmd      `cmd:"" help:"List the episodes of a podcast feed."`
	Subscribe     SubscribeCmd     `cmd:"" help:"Subscribe to a podcast feed."`
	Unsubscribe   UnsubscribeCmd   `cmd:"" help:"Remove a subscription by index."`
	Subscriptions SubscriptionsCmd `cmd:"" help:"List subscriptions."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("podplay"),
		kong.Description("Find podcasts and read their episode feeds."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "podplay: %v\n", err)
		return 2
	}

	app, err := newApp(cli.Config, stdout)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "podplay: %v\n", err)
		return 1
	}
	defer func() { _ = app.Logger.Sync() }()

	if err := kctx.Run(app); err != nil {
		_, _ = fmt.Fprintf(stderr, "podplay: %v\n", err)
		return 1
	}
	return 0
}
