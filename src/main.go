package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/primecubes/src/analyzer"
	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/config"
	"github.com/eriklarko/primecubes/src/tui"
)

func main() {
	os.Exit(run(os.Args[1:], tui.New(), os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, ui *tui.TUI, stderr io.Writer) int {
	flags := flag.NewFlagSet("primecubes", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: primecubes [-config path] [-write-config path] [-format text|yaml] [-tree] [expression]")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to a YAML config file")
	format := flags.String("format", config.OutputText, "output format, text or yaml")
	showTree := flags.Bool("tree", false, "print the enumeration tree")
	skipWhitespace := flags.Bool("skip-whitespace", false, "ignore blanks in the expression")
	verify := flags.Bool("verify", false, "cross-check the results against a BDD")
	logLevel := flags.String("log-level", "", "debug, info, warn or error")
	writeConfig := flags.String("write-config", "", "write the effective configuration to this path and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cfg = loaded
	}

	// flags given on the command line win over the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output = *format
		case "tree":
			cfg.ShowTree = *showTree
		case "skip-whitespace":
			cfg.SkipWhitespace = *skipWhitespace
		case "verify":
			cfg.Verify = *verify
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *writeConfig != "" {
		cfg.Path = *writeConfig
		if err := cfg.Write(); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	expression := strings.Join(flags.Args(), "")
	if expression == "" {
		var err error
		expression, err = ui.ReadExpression()
		if err != nil {
			slog.Error("failed to read expression", "error", err)
			return 1
		}
	}

	a := analyzer.New(
		analyzer.WithParseOptions(boolexpr.SkipWhitespace(cfg.SkipWhitespace)),
		analyzer.WithVerification(cfg.Verify),
		analyzer.WithLogger(logger),
	)
	report, err := a.Analyze(expression)
	if err != nil {
		slog.Debug("analysis failed", "expression", expression, "error", err)
		if !ui.PrintError(err) {
			slog.Error("analysis failed", "error", err)
		}
		return 1
	}

	if cfg.Output == config.OutputYAML {
		if err := ui.PrintYAML(report); err != nil {
			slog.Error("failed to print report", "error", err)
			return 1
		}
		return 0
	}

	ui.PrintReport(report, cfg.ShowTree)
	return 0
}
