package main

import (
	"context"
	"io"
	"log/slog"

	studipsync "github.com/N-Coder/studip-sync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Selector studipsync.Selector
	Encoder  studipsync.Encoder
	Config   *Config

	BaseURL     string
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `short:"C" type:"existingfile" help:"JSON file overriding selectors and calibration"`
	BaseURL     string `short:"b" env:"STUDIP_BASE_URL" help:"URL relative links are resolved against"`
	Policy      string `short:"p" enum:"skip,report" default:"skip" help:"Handling of rows with unresolved fields: ${enum}"`
	Concurrency int    `short:"c" default:"4" help:"Documents parsed concurrently"`
	Verbose     bool   `short:"v" help:"Log every skipped row"`

	Downloads DownloadsCmd `cmd:"" help:"Extract the file listing of a downloads page"`
	Seminars  SeminarsCmd  `cmd:"" help:"Extract the seminar list of a my-seminars page"`
}

// DownloadsCmd is the "downloads" subcommand.
type DownloadsCmd struct {
	Files    []string `arg:"" name:"file" help:"Saved HTML pages, - for stdin"`
	Tree     bool     `short:"t" help:"Print one line per entry with its folder path instead of JSON"`
	Diff     bool     `help:"In tree output, link to the changed files only"`
	Timezone string   `default:"Europe/Berlin" help:"Time zone of the displayed timestamps"`
}

// SeminarsCmd is the "seminars" subcommand.
type SeminarsCmd struct {
	Files []string `arg:"" name:"file" help:"Saved HTML pages, - for stdin"`
	Table bool     `help:"Print one line per seminar with its parsed name parts instead of JSON"`
}
