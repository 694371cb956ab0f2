// Copyright 2026 The Lexivar Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the variant matching server and CLI [DBG] application.

lexivar matches queries and free text against one or more lexicons within a
bounded weighted edit distance. It can operate as a msgpack IPC server for
integration with bindings and editors, or as a CLI application for testing
and debugging.

# Usage

Start the server with an alphabet and two lexicons:

	lexivar -alphabet alphabet.tsv -lexicon names=names.tsv -lexicon places=places.tsv

Run in CLI mode with a wider distance budget and debug logging:

	lexivar -alphabet alphabet.tsv -lexicon words=words.tsv -c -dist 4 -d

Alphabet files hold one class per line as tab-separated equivalent raw forms,
optionally ending in an integer weight. Lexicon files hold one word per line
with an optional tab-separated frequency column.

# Configuration

Runtime configuration is managed through a TOML file holding edit weights
(including confusable pairs), search defaults and server limits:

	[weights]
	insert = 1.0
	delete = 1.0
	substitute = 1.0
	transpose = 2.0

	[[weights.confusable]]
	a = "é"
	b = "e"
	cost = 0.3

	[search]
	max_edit_distance = 3
	max_ngram = 2
	max_matches = 20

The config file is automatically created with defaults if it doesn't exist.

# Server Mode

The default mode starts a msgpack IPC server that processes lookup requests
from stdin and writes responses to stdout; see pkg/server for the protocol.

# CLI Mode

CLI mode reads words or sentences from stdin and prints ranked variants with
scores and source lexicons, primarily for development and testing.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/lexivar/internal/cli"
	"github.com/bastiangx/lexivar/internal/logger"
	"github.com/bastiangx/lexivar/pkg/config"
	"github.com/bastiangx/lexivar/pkg/dictionary"
	"github.com/bastiangx/lexivar/pkg/server"
	"github.com/bastiangx/lexivar/pkg/variant"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lexivar"
	gh      = "https://github.com/bastiangx/lexivar"
)

// lexiconFlags collects repeatable -lexicon name=path arguments.
type lexiconFlags []string

func (l *lexiconFlags) String() string { return strings.Join(*l, ",") }

func (l *lexiconFlags) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected name=path, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	var lexicons lexiconFlags
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	alphabetPath := flag.String("alphabet", "", "Path to the alphabet definition file")
	flag.Var(&lexicons, "lexicon", "Lexicon as name=path (repeatable)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	dist := flag.Float64("dist", 0, "Maximum edit distance (overrides config)")
	ngram := flag.Int("ngram", 0, "Maximum token n-gram size (overrides config)")
	limit := flag.Int("limit", 0, "Number of variants to return per input (overrides config)")
	strict := flag.Bool("strict", false, "Abort on malformed alphabet/lexicon lines instead of skipping")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgSource, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgSource != "" {
		log.Debugf("using config from %s", cfgSource)
	}

	if *alphabetPath == "" {
		log.Fatal("an -alphabet file is required")
	}
	if len(lexicons) == 0 {
		log.Fatal("at least one -lexicon name=path is required")
	}

	alpha, warnings, err := dictionary.LoadAlphabet(*alphabetPath, *strict)
	if err != nil {
		log.Fatalf("Failed to load alphabet: %v", err)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	model := variant.New(alpha, cfg.BuildWeights(alpha), *debugMode)
	for _, spec := range lexicons {
		name, path, _ := strings.Cut(spec, "=")
		src, err := dictionary.OpenLexicon(path, *strict)
		if err != nil {
			log.Fatalf("Failed to open lexicon %s: %v", name, err)
		}
		if err := model.ReadLexicon(name, src); err != nil {
			log.Fatalf("Failed to read lexicon %s: %v", name, err)
		}
		src.Close()
	}
	if err := model.Build(); err != nil {
		log.Fatalf("Failed to build model: %v", err)
	}

	params := cfg.SearchParameters()
	if *dist > 0 {
		params.MaxEditDistance = *dist
	}
	if *ngram > 0 {
		params.MaxNgram = *ngram
	}
	if *limit > 0 {
		params.MaxMatches = *limit
	}

	if *cliMode {
		handler := cli.NewInputHandler(model, params)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(model, cfg, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ lexivar ] Approximate lexicon matching, fast.")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
