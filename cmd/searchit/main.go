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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/searchit"
	"github.com/poiesic/searchit/ai"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/store"
	badgerstore "github.com/poiesic/searchit/store/badger"
	redisstore "github.com/poiesic/searchit/store/redis"
)

func main() {
	app := &cli.App{
		Name:  "searchit",
		Usage: "Multi-strategy search over file names, file contents, and record collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search for a single term",
				ArgsUsage: "TERM",
				Action:    searchCommand,
				Flags:     searchFlags(),
			},
			{
				Name:      "multi",
				Usage:     "Search for several terms in parallel",
				ArgsUsage: "TERM [TERM...]",
				Action:    multiCommand,
				Flags:     searchFlags(),
			},
			{
				Name:      "seed",
				Usage:     "Load a JSON file of records into a collection store",
				ArgsUsage: "FILE",
				Action:    seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "collection",
						Usage:    "Collection to seed",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "redis-addr",
						Usage: "Redis address of the collection store",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to a BadgerDB snapshot store directory",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "Source kind (file, fileContents, database)",
			Value:   "file",
		},
		&cli.StringSliceFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Search path or collection locator (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "fuzzy",
			Usage: "Use edit-distance matching",
		},
		&cli.BoolFlag{
			Name:  "pattern",
			Usage: "Use occurrence-count matching with context snippets",
		},
		&cli.BoolFlag{
			Name:  "semantic",
			Usage: "Use embedding-based similarity matching",
		},
		&cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "Match case exactly",
		},
		&cli.IntFlag{
			Name:    "max-results",
			Aliases: []string{"n"},
			Usage:   "Maximum number of results",
			Value:   core.DefaultMaxResults,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Bound the whole search call (0 means unbounded)",
		},
		&cli.StringSliceFlag{
			Name:  "ext",
			Usage: "File extension allow-list (repeatable)",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "Credential for the embedding service (semantic only)",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "redis-addr",
			Usage: "Redis address of the collection store (database source)",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to a BadgerDB snapshot store directory (database source)",
		},
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one search term")
	}
	term := c.Args().First()

	kind, err := core.ParseSourceKind(c.String("source"))
	if err != nil {
		return err
	}

	client, err := buildClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	results, err := client.Search(context.Background(), term, kind, buildOptions(c))
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

func multiCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected at least one search term")
	}
	terms := c.Args().Slice()

	kind, err := core.ParseSourceKind(c.String("source"))
	if err != nil {
		return err
	}

	client, err := buildClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	results, err := client.MultiSearch(context.Background(), terms, kind, buildOptions(c))
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(results))
	for term := range results {
		keys = append(keys, term)
	}
	sort.Strings(keys)

	for _, term := range keys {
		fmt.Printf("== %s ==\n", term)
		printResults(results[term])
	}
	return nil
}

func seedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one JSON file")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read records file: %w", err)
	}

	var records map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse records file: %w", err)
	}

	collections, err := openStore(c)
	if err != nil {
		return err
	}
	if collections == nil {
		return fmt.Errorf("seeding requires --redis-addr or --db")
	}
	defer collections.Close()

	ctx := context.Background()
	collection := c.String("collection")
	for key, document := range records {
		if err := collections.PutRecord(ctx, collection, key, document); err != nil {
			return fmt.Errorf("failed to store record %q: %w", key, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Seeded %d records into %q\n", len(records), collection)
	return nil
}

func buildClient(c *cli.Context) (*searchit.Client, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	clientOpts := []searchit.ClientOption{
		searchit.WithAIConfig(aiConfig),
	}

	collections, err := openStore(c)
	if err != nil {
		return nil, err
	}
	if collections != nil {
		clientOpts = append(clientOpts, searchit.WithCollectionStore(collections))
	}

	return searchit.NewClient(clientOpts...)
}

// openStore wires the collection store named by the flags, or nil when the
// command does not need one.
func openStore(c *cli.Context) (store.CollectionStore, error) {
	redisAddr := c.String("redis-addr")
	dbPath := c.String("db")

	switch {
	case redisAddr != "" && dbPath != "":
		return nil, fmt.Errorf("--redis-addr and --db are mutually exclusive")
	case redisAddr != "":
		return redisstore.Open(redisAddr), nil
	case dbPath != "":
		collections, err := badgerstore.OpenStore(dbPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot store: %w", err)
		}
		return collections, nil
	default:
		return nil, nil
	}
}

func buildOptions(c *cli.Context) *core.Options {
	opts := []core.Option{
		core.WithMaxResults(c.Int("max-results")),
		core.WithSearchPaths(c.StringSlice("path")...),
		core.WithFileExtensions(c.StringSlice("ext")...),
	}
	if c.Bool("fuzzy") {
		opts = append(opts, core.WithFuzzyMatching())
	}
	if c.Bool("pattern") {
		opts = append(opts, core.WithPatternMatch())
	}
	if c.Bool("semantic") {
		opts = append(opts, core.WithSemantic(c.String("api-key")))
	}
	if c.Bool("case-sensitive") {
		opts = append(opts, core.WithCaseSensitive())
	}
	if d := c.Duration("timeout"); d > 0 {
		opts = append(opts, core.WithTimeout(d))
	}
	return core.NewOptions(opts...)
}

func printResults(results []core.Result) {
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s [%0.3f]\n", i, hit.Path, hit.Relevance)
		if hit.Context != "" {
			fmt.Printf("   %s\n", hit.Context)
		}
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
