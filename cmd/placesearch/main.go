// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/placesearch"
	"github.com/poiesic/placesearch/core"
	"github.com/poiesic/placesearch/provider/static"
	"github.com/poiesic/placesearch/query"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "placesearch",
		Usage:  "Location search coordination demo over a static place set",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the demo place set and optionally record a selection",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "./placesearch_db",
					},
					&cli.IntFlag{
						Name:  "select",
						Usage: "Record result N (1-based) as a selection",
					},
				},
			},
			{
				Name:   "recents",
				Usage:  "List or clear persisted recent selections",
				Action: recentsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "./placesearch_db",
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Clear the persisted list instead of listing it",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Print quick text suggestions for a partial input",
				ArgsUsage: "PARTIAL",
				Action:    suggestCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// demoPlaces is the fixed data set the CLI searches. A real deployment
// plugs a network-backed provider into placesearch.Open instead.
func demoPlaces() []core.Place {
	return []core.Place{
		{Name: "Coffee Shop", Address: "1 Main St", Category: "cafe", Coord: core.Coordinates{Lat: 47.6000, Lon: -122.3300}},
		{Name: "Corner Coffee", Address: "9 Pike St", Category: "cafe", Coord: core.Coordinates{Lat: 47.6100, Lon: -122.3400}},
		{Name: "Pier 57", Address: "Alaskan Way", Category: "landmark", Coord: core.Coordinates{Lat: 47.6057, Lon: -122.3427}},
		{Name: "Central Library", Address: "1000 4th Ave", Category: "library", Coord: core.Coordinates{Lat: 47.6067, Lon: -122.3325}},
		{Name: "Harbor Cafe", Address: "2 Dock Rd", Category: "coffee", Coord: core.Coordinates{Lat: 47.6020, Lon: -122.3380}},
		{Name: "Gas & Go", Address: "500 Denny Way", Category: "gas station", Coord: core.Coordinates{Lat: 47.6180, Lon: -122.3400}},
	}
}

func openFinder(c *cli.Context) (*placesearch.Finder, error) {
	return placesearch.Open(c.String("db"), static.NewSearcher(demoPlaces()),
		placesearch.WithQueryOptions(query.WithDebounce(0)))
}

func searchCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("search requires a query argument")
	}

	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	coordinator := finder.Coordinator()

	settled := make(chan query.State, 16)
	coordinator.Subscribe(func(s query.State) {
		if !s.Loading {
			settled <- s
		}
	})

	coordinator.SetQueryText(text)
	coordinator.Search()

	var state query.State
	for state = range settled {
		if state.HasResults() || state.Err != "" {
			break
		}
	}

	if state.Err != "" {
		fmt.Println(state.Err)
		return nil
	}

	fmt.Printf("Found %d places\n", len(state.Results))
	for i, place := range state.Results {
		fmt.Printf("%d: %s [%s]\n", i+1, place.Label(), place.Category)
	}

	if n := c.Int("select"); n > 0 {
		if n > len(state.Results) {
			return fmt.Errorf("cannot select result %d of %d", n, len(state.Results))
		}
		coordinator.SelectResult(state.Results[n-1])
		finder.Recents().Flush()
		fmt.Printf("Selected %s\n", state.Results[n-1].Label())
	}

	return nil
}

func recentsCommand(c *cli.Context) error {
	finder, err := openFinder(c)
	if err != nil {
		return err
	}
	defer finder.Close()

	recents := finder.Recents()

	if c.Bool("clear") {
		recents.Clear()
		recents.Flush()
		fmt.Println("Cleared recent selections")
		return nil
	}

	all := recents.All()
	if len(all) == 0 {
		fmt.Println("No recent selections")
		return nil
	}
	for i, place := range all {
		fmt.Printf("%d: %s\n", i+1, place.Label())
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	coordinator, err := query.NewCoordinator(static.NewSearcher(demoPlaces()))
	if err != nil {
		return err
	}
	defer coordinator.Close()

	for _, s := range coordinator.Suggestions(strings.Join(c.Args().Slice(), " ")) {
		fmt.Println(s)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
