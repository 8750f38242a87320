package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/mdndoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Definitions mdndoc.DefinitionService
	Mimes       mdndoc.MimeService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"10s" env:"MDNDOC_TIMEOUT" help:"Timeout per page fetch"`
	Verbose bool          `short:"v" help:"Log fetches and lookups to stderr"`

	Def  DefCmd  `cmd:"" help:"Look up the definition of a JavaScript method"`
	Mime MimeCmd `cmd:"" help:"Look up the MIME type for a file extension"`
}

// DefCmd is the "def" subcommand.
type DefCmd struct {
	Type        string   `short:"T" name:"type" help:"Prototype family the method belongs to (e.g. Array, String)"`
	Methods     []string `arg:"" required:"" name:"method" help:"Method names to look up"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent lookup limit"`
	JSON        bool     `name:"json" help:"Print results as JSON, one object per line"`
}

// MimeCmd is the "mime" subcommand.
type MimeCmd struct {
	Ext  string `arg:"" help:"File extension, with or without the leading dot"`
	JSON bool   `name:"json" help:"Print the result as JSON"`
}
