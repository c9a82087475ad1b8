// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// barleysh is an interactive POSIX-compatible shell built on top of
// [interp].
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"

	"barleysh/internal/config"
	"barleysh/interp"
	"barleysh/syntax"
)

var (
	command   = flag.String("c", "", "command to be executed")
	printAST  = flag.Bool("print-ast", false, "print the parsed syntax tree instead of executing it")
	configArg = flag.String("config", "", "path to a TOML startup config file (default: $HOME/.barleyshrc.toml)")
)

func main() {
	flag.Parse()
	err := runAll()
	var es interp.ExitStatus
	if errors.As(err, &es) {
		os.Exit(int(es))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAll() error {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	r, err := interp.New(
		interp.Interactive(true),
		interp.StdIO(os.Stdin, os.Stdout, os.Stderr),
		interp.SuffixAliases(cfg.SuffixAliases),
	)
	if err != nil {
		return err
	}

	if err := applyConfig(ctx, r, cfg); err != nil {
		return err
	}

	if *command != "" {
		return run(ctx, r, strings.NewReader(*command), "")
	}
	if flag.NArg() == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return runInteractive(ctx, r, os.Stdin, os.Stdout, os.Stderr)
		}
		return run(ctx, r, os.Stdin, "")
	}
	for _, path := range flag.Args() {
		if err := runPath(ctx, r, path); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig resolves the startup config path, either from -config or the
// default per-user location, and falls back to an empty config when none is
// found there.
func loadConfig() (*config.Config, error) {
	path := *configArg
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".barleyshrc.toml")
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// applyConfig enables the configured shell options and registers the
// configured aliases by running them through the ordinary parse-and-run
// pipeline, the same path any interactive command takes. Suffix aliases are
// applied separately, via [interp.SuffixAliases] when the Runner is built,
// since they configure dispatch rather than shell state a script can set.
func applyConfig(ctx context.Context, r *interp.Runner, cfg *config.Config) error {
	var sb strings.Builder
	for _, opt := range cfg.Options {
		fmt.Fprintf(&sb, "set -o %s\n", opt)
	}
	for name, value := range cfg.Aliases {
		fmt.Fprintf(&sb, "alias %s=%s\n", name, shellQuote(value))
	}
	if sb.Len() == 0 {
		return nil
	}
	return run(ctx, r, strings.NewReader(sb.String()), cfg.Path)
}

func run(ctx context.Context, r *interp.Runner, reader io.Reader, name string) error {
	parser := syntax.NewParser()
	prog, err := parser.Parse(reader, name)
	if err != nil {
		return err
	}
	if *printAST {
		dumpAST(os.Stdout, prog)
		return nil
	}
	r.Reset()
	return r.Run(ctx, prog)
}

func runPath(ctx context.Context, r *interp.Runner, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return run(ctx, r, f, path)
}

func runInteractive(ctx context.Context, r *interp.Runner, stdin io.Reader, stdout, stderr io.Writer) error {
	parser := syntax.NewParser()
	fmt.Fprintf(stdout, "$ ")
	for stmts, err := range parser.InteractiveSeq(stdin) {
		if err != nil {
			return err // stop at the first error
		}
		if parser.Incomplete() {
			fmt.Fprintf(stdout, "> ")
			continue
		}
		for _, stmt := range stmts {
			err := r.Run(ctx, stmt)
			if r.Exited() {
				return err
			}
		}
		fmt.Fprintf(stdout, "$ ")
	}
	return nil
}

// astDumper is a [syntax.Visitor] that prints one indented line per node,
// used by -print-ast to show the tree the parser built instead of running
// it.
type astDumper struct {
	w     io.Writer
	depth int
}

func (d *astDumper) Visit(node syntax.Node) syntax.Visitor {
	if node == nil {
		d.depth--
		return nil
	}
	fmt.Fprintf(d.w, "%s%T @ offset %d\n", strings.Repeat("  ", d.depth), node, node.Pos())
	d.depth++
	return d
}

func dumpAST(w io.Writer, prog *syntax.File) {
	syntax.Walk(&astDumper{w: w}, prog)
}

// shellQuote wraps s in single quotes, escaping any embedded single quote
// the way POSIX shells require (close the quote, emit an escaped quote,
// reopen it).
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
