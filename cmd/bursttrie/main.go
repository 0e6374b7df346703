// Informal debugging tool for the burst trie map: loads keys from files or fake
// data and prints the resulting structure.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/aglyzov/go-bursttrie/bursttrie"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	run(os.Args)
}

func run(args []string) {
	if err := newApp().Run(args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "bursttrie",
		Usage:   "informal debugging CLI tool for the burst trie map",
		Version: versioninfo.Short(),
		Before:  setupLogging,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"BURSTTRIE_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log format (text, json)",
			Value:   "text",
			EnvVars: []string{"BURSTTRIE_LOG_FORMAT"},
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "load",
			Usage:     "insert every line of the given files as a key",
			ArgsUsage: "<file>...",
			Action:    runLoad,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "dump",
					Usage: "print the structure of the map",
				},
				&cli.StringSliceFlag{
					Name:  "get",
					Usage: "key to look up after loading (repeatable)",
				},
			},
		},
		&cli.Command{
			Name:   "fake",
			Usage:  "insert fake sentences and cross-check them against a Go map",
			Action: runFake,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Usage:   "total number of keys to insert",
					Value:   10_000,
				},
				&cli.Int64Flag{
					Name:  "seed",
					Usage: "fake data generator seed",
					Value: 1234567890,
				},
				&cli.IntFlag{
					Name:  "words",
					Usage: "number of words per key",
					Value: 4,
				},
				&cli.BoolFlag{
					Name:  "dump",
					Usage: "print the structure of the map",
				},
			},
		},
	}

	return app
}

func setupLogging(cctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	var (
		out   = cctx.App.ErrWriter
		hopts = slog.HandlerOptions{Level: level}
	)

	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler

	switch format := cctx.String("log-format"); format {
	case "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return fmt.Errorf("unknown log format: %#v", format)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

func newMap() *bursttrie.Map[int] {
	m := bursttrie.New[int]()
	m.SetLogger(slog.Default().With("system", "bursttrie"))
	return m
}

func runLoad(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return fmt.Errorf("need to provide at least one file as an argument")
	}

	var (
		log = slog.Default().With("system", "bursttrie")
		m   = newMap()
	)

	for _, path := range cctx.Args().Slice() {
		lines, err := loadFile(m, path)
		if err != nil {
			return err
		}
		log.Info("loaded file", "path", path, "lines", lines, "keys", m.Len())
	}

	out := cctx.App.Writer

	printStats(out, m)

	if cctx.Bool("dump") {
		fmt.Fprintln(out, m.Tree())
	}

	for _, key := range cctx.StringSlice("get") {
		if line, ok := m.GetString(key); ok {
			fmt.Fprintf(out, "%q: line %d\n", key, line)
		} else {
			fmt.Fprintf(out, "%q: not found\n", key)
		}
	}

	return m.Verify()
}

// loadFile inserts every line of the file as a key, the value is the line number.
func loadFile(m *bursttrie.Map[int], path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		scanner = bufio.NewScanner(f)
		num     int
	)

	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	for scanner.Scan() {
		num++
		m.Set(scanner.Bytes(), num)
	}

	if err := scanner.Err(); err != nil {
		return num, fmt.Errorf("%s: %w", path, err)
	}

	return num, nil
}

func runFake(cctx *cli.Context) error {
	var (
		log   = slog.Default().With("system", "bursttrie")
		fake  = gofakeit.New(cctx.Int64("seed"))
		total = cctx.Int("count")
		words = cctx.Int("words")
		m     = newMap()
		state = make(map[string]int, total)
	)

	for i := 0; i < total; i++ {
		key := fake.Sentence(words)

		prev, ok := m.SetString(key, i)
		if exp, existed := state[key]; existed != ok || exp != prev {
			return fmt.Errorf("key %q: previous value mismatch: got (%d, %v), expected (%d, %v)",
				key, prev, ok, exp, existed)
		}

		state[key] = i
	}

	var mismatches int

	for key, exp := range state {
		if val, ok := m.GetString(key); !ok || val != exp {
			log.Warn("lookup mismatch", "key", key, "expected", exp, "got", val, "found", ok)
			mismatches++
		}
	}

	out := cctx.App.Writer

	printStats(out, m)

	if cctx.Bool("dump") {
		fmt.Fprintln(out, m.Tree())
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d keys mismatched", mismatches, len(state))
	}

	if m.Len() != len(state) {
		return fmt.Errorf("map holds %d keys, expected %d", m.Len(), len(state))
	}

	return m.Verify()
}

func printStats(out io.Writer, m *bursttrie.Map[int]) {
	s := m.Stats()

	fmt.Fprintf(out, "keys:     %d\n", m.Len())
	fmt.Fprintf(out, "branches: %d\n", s.Branches)
	fmt.Fprintf(out, "chains:   %d\n", s.Chains)
	fmt.Fprintf(out, "bytes:    %d\n", s.Bytes)
	fmt.Fprintf(out, "depth:    %d\n", s.Depth)
	fmt.Fprintln(out, strings.Repeat("-", 16))
}
