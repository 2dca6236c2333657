package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/searchit/core"
)

// runWithFlags runs a throwaway app over the shared search flags and hands
// the parsed context to fn.
func runWithFlags(t *testing.T, args []string, fn func(c *cli.Context) error) error {
	t.Helper()
	app := &cli.App{
		Name:   "searchit",
		Flags:  searchFlags(),
		Action: fn,
	}
	return app.Run(append([]string{"searchit"}, args...))
}

func TestBuildOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		err := runWithFlags(t, nil, func(c *cli.Context) error {
			opts := buildOptions(c)
			assert.False(t, opts.CaseSensitive)
			assert.False(t, opts.FuzzyMatching)
			assert.False(t, opts.PatternMatch)
			assert.False(t, opts.Semantic)
			assert.Equal(t, core.DefaultMaxResults, opts.MaxResults)
			assert.Zero(t, opts.Timeout)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("flags map onto options", func(t *testing.T) {
		args := []string{
			"--fuzzy", "--case-sensitive",
			"--path", "/tmp/a", "--path", "/tmp/b",
			"--ext", ".go", "--ext", "md",
			"--max-results", "7",
			"--timeout", "250ms",
		}
		err := runWithFlags(t, args, func(c *cli.Context) error {
			opts := buildOptions(c)
			assert.True(t, opts.FuzzyMatching)
			assert.True(t, opts.CaseSensitive)
			assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, opts.SearchPaths)
			assert.Equal(t, []string{"go", "md"}, opts.FileExtensions, "dots stripped by normalization")
			assert.Equal(t, 7, opts.MaxResults)
			assert.Equal(t, 250*time.Millisecond, opts.Timeout)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("semantic carries the api key", func(t *testing.T) {
		err := runWithFlags(t, []string{"--semantic", "--api-key", "sk-test"}, func(c *cli.Context) error {
			opts := buildOptions(c)
			assert.True(t, opts.Semantic)
			assert.Equal(t, "sk-test", opts.APIKey)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestOpenStore(t *testing.T) {
	t.Run("no store flags yields nil", func(t *testing.T) {
		err := runWithFlags(t, nil, func(c *cli.Context) error {
			collections, err := openStore(c)
			require.NoError(t, err)
			assert.Nil(t, collections)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("redis and badger are mutually exclusive", func(t *testing.T) {
		args := []string{"--redis-addr", "localhost:6379", "--db", t.TempDir()}
		err := runWithFlags(t, args, func(c *cli.Context) error {
			_, err := openStore(c)
			return err
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
}

func TestSearchCommandArgs(t *testing.T) {
	app := &cli.App{
		Name: "searchit",
		Commands: []*cli.Command{
			{Name: "search", Action: searchCommand, Flags: searchFlags()},
			{Name: "multi", Action: multiCommand, Flags: searchFlags()},
		},
	}

	t.Run("search wants exactly one term", func(t *testing.T) {
		err := app.Run([]string{"searchit", "search"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "one search term")
	})

	t.Run("multi wants at least one term", func(t *testing.T) {
		err := app.Run([]string{"searchit", "multi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one")
	})

	t.Run("unknown source kind fails", func(t *testing.T) {
		err := app.Run([]string{"searchit", "search", "--source", "carrier-pigeon", "term"})
		require.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "log-level", Value: "info"},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN", "Info"} {
			err := newApp().Run([]string{"test", "--log-level", level})
			require.NoError(t, err, "level %q", level)
		}
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
