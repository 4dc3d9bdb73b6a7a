// Command lvlgrid runs the sparse-grid analyses over puzzle input files.
//
//	lvlgrid [flags] <command> <input>...
//
// Each input file is read as text lines and solved independently; files are
// processed concurrently and reported in argument order. With a progress
// cache configured, answers for unchanged inputs are reused across runs.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/batch"
	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/progress"
	"github.com/katalvlaran/lvlgrid/runner"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run parses args, solves every input and returns the process exit code.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("lvlgrid", flag.ContinueOnError)
	fs.SetOutput(stdout)
	cfgPath := fs.String("config", "", "path to lvlgrid.yaml")
	level := fs.String("log-level", "", "override log_level (debug, info, warn, error)")
	workers := fs.Int("workers", -1, "override workers; 0 means one per input")
	noColor := fs.Bool("no-color", false, "disable ANSI colours")
	cachePath := fs.String("cache", "", "override cache (progress database path)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: lvlgrid [flags] <command> <input>...")
		fmt.Fprintln(fs.Output(), "commands:")
		for _, name := range commandNames() {
			fmt.Fprintf(fs.Output(), "  %-9s %s\n", name, commands[name].usage)
		}
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Error("load config")
		return 1
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *noColor {
		cfg.Color = false
	}
	if *cachePath != "" {
		cfg.Cache = *cachePath
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Error("parse log level")
		return 2
	}
	log.SetLevel(lvl)

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		log.WithFields(logrus.Fields{"command": name, "known": commandList()}).Error("unknown command")
		fs.Usage()
		return 2
	}

	var cache *progress.Cache
	if cfg.Cache != "" {
		if cache, err = progress.Open(cfg.Cache); err != nil {
			log.WithError(err).WithField("cache", cfg.Cache).Error("open progress cache")
			return 1
		}
		defer cache.Close()
		log.WithFields(logrus.Fields{"cache": cfg.Cache, "run": cache.RunID()}).Debug("progress cache open")
	}

	files := fs.Args()[1:]
	reports, err := batch.Map(ctx, files, func(ctx context.Context, path string) ([]byte, error) {
		return solveFile(ctx, cfg, cache, name, cmd, path)
	}, cfg.Workers)
	if cache != nil {
		if summary, serr := cache.Summary(ctx); serr == nil {
			log.WithField("run", cache.RunID()).Info(summary)
		}
	}

	for i, r := range reports {
		if len(files) > 1 {
			fmt.Fprintf(stdout, "== %s ==\n", files[i])
		}
		stdout.Write(r)
	}
	if err != nil {
		log.WithError(err).WithField("command", name).Error("solve failed")
		return 1
	}

	return 0
}

// solveFile runs cmd on one input and returns its rendered report.
func solveFile(ctx context.Context, cfg config.Config, cache *progress.Cache, name string, cmd command, path string) ([]byte, error) {
	entry := log.WithFields(logrus.Fields{"command": name, "file": path})
	raw, err := runner.ReadInput(path)
	if err != nil {
		return nil, err
	}
	lines := runner.ParseLines(string(raw))
	entry.WithField("lines", len(lines)).Debug("input read")

	var buf bytes.Buffer
	if cmd.render != nil {
		if err := cmd.render(lines, &buf); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return buf.Bytes(), nil
	}

	a, b := cmd.parts(cfg)
	parts := []runner.Part{{Name: "A", Solve: a}, {Name: "B", Solve: b}}
	if cache != nil {
		for i := range parts {
			key := progress.Key(name, parts[i].Name, raw)
			if err := cache.Add(ctx, key); err != nil {
				return nil, err
			}
			parts[i].Solve = cached(ctx, cache, key, entry.WithField("part", parts[i].Name), parts[i].Solve)
		}
	}
	if _, err := runner.Run(&buf, lines, cfg.Color, parts...); err != nil {
		entry.WithError(err).Warn("command failed")
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	entry.Debug("done")

	return buf.Bytes(), nil
}

// cached answers from the progress store when key is complete, and records
// fresh results otherwise.
func cached(ctx context.Context, cache *progress.Cache, key string, entry *logrus.Entry, s runner.Solver) runner.Solver {
	return func(lines []string) (int, error) {
		if v, ok, err := cache.Result(ctx, key); err != nil {
			return 0, err
		} else if ok {
			entry.Debug("cache hit")
			return v, nil
		}
		v, err := s(lines)
		if err != nil {
			return 0, err
		}
		return v, cache.SetResult(ctx, key, v)
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandList renders the known command names for error messages.
func commandList() string {
	return strings.Join(commandNames(), ", ")
}
