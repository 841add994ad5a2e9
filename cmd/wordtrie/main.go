// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordtrie completion server or its interactive CLI.

wordtrie keeps a dictionary in a prefix trie that tracks how many words sit
under every node. It answers exact lookups, prefix counts and
frequency-ranked completions, and supports deleting words without
disturbing the words that share their prefixes.

# Usage

Serve msgpack requests on stdin/stdout with a dictionary loaded at startup:

	wordtrie -dict words.txt

Explore interactively:

	wordtrie -c -dict words.txt -limit 5

Convert a text dictionary to the binary format:

	wordtrie -dict words.txt -dump words.msgpack

# Configuration

Settings live in a TOML file, created with defaults on first run at
~/.config/wordtrie/config.toml unless -config points elsewhere:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60

	[dict]
	path = "words.txt"
	encoding = "utf-8"
	min_frequency = 0

	[cache]
	size = 2048

Flags override the matching config values.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordtrie"
	gh      = "https://github.com/bastiangx/wordtrie"
)

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

// main only wires packages together; it holds no logic of its own.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config.toml with defaults and exit")
	dictPath := flag.String("dict", "", "Dictionary file to load: "+formatList())
	encoding := flag.String("encoding", "", "Text dictionary encoding: utf-8 or latin1")
	dumpPath := flag.String("dump", "", "Write the loaded dictionary to this .msgpack file and exit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of suggestions to return in CLI mode")
	noFilter := flag.Bool("no-filter", false, "Disable CLI input filtering (numbers, symbols, repeated letters)")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if *rebuildConfig {
		path, err := config.RebuildConfigFile()
		if err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		log.Infof("Wrote default config to %s", path)
		return
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := cfg.Log.Level
	if *debugMode {
		level = "debug"
	}
	if err := logger.Configure(level, cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *encoding != "" {
		cfg.Dict.Encoding = *encoding
	}
	if *limit > 0 {
		cfg.CLI.DefaultLimit = *limit
	}

	completer := suggest.NewCompleter(suggest.Options{
		MinFrequency: cfg.Dict.MinFrequency,
		CacheSize:    cfg.Cache.Size,
		PreserveCase: cfg.CLI.PreserveCase,
	})

	if cfg.Dict.Path != "" {
		entries, err := dictionary.LoadFile(cfg.Dict.Path, cfg.Dict.Encoding)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		n := completer.AddEntries(entries)
		log.Debugf("Loaded %d entries from %s", n, cfg.Dict.Path)
	} else {
		log.Warn("No dictionary specified, starting with an empty trie...")
	}

	if *dumpPath != "" {
		if err := completer.Dump(*dumpPath); err != nil {
			log.Fatalf("Failed to dump dictionary: %v", err)
		}
		log.Infof("Wrote %d words to %s", completer.Count(""), *dumpPath)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer, cfg.CLI.DefaultLimit, *noFilter, os.Stdin, os.Stdout, cli.ColorEnabled(cfg.CLI.Color), logger.New("cli"))
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, cfg, os.Stdin, os.Stdout, logger.New("server"))
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// formatList describes the dictionary formats for the -dict usage line.
func formatList() string {
	var parts []string
	for _, info := range dictionary.ListSupportedFormats() {
		var exts []string
		for _, ext := range info.Extensions {
			if ext != "" {
				exts = append(exts, ext)
			}
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", info.Description, strings.Join(exts, " ")))
	}
	return strings.Join(parts, ", ")
}

// printVersion shows the version banner on stderr.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ "+AppName+" ] prefix trie completions", "version", Version)
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
