package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/mdndoc"
)

var (
	colorTitle   = color.New(color.FgHiCyan, color.Bold)
	colorWarning = color.New(color.FgYellow)
)

// printOutcome writes a resolved definition, or the candidate list when the
// search did not resolve.
func printOutcome(w io.Writer, method string, outcome *mdndoc.SearchOutcome) {
	switch {
	case outcome.Found():
		colorTitle.Fprintln(w, outcome.Definition.Method)
		fmt.Fprintln(w, mdndoc.FormatDefinition(outcome.Definition))
	case len(outcome.Candidates) > 0:
		colorWarning.Fprintf(w, "No exact match for %q. Did you mean:\n", method)
		fmt.Fprintln(w, mdndoc.FormatCandidates(outcome.Candidates))
	default:
		colorWarning.Fprintf(w, "No results for %q.\n", method)
	}
}

func printMime(w io.Writer, result *mdndoc.MimeResult) {
	colorTitle.Fprintln(w, result.Mime.Extension)
	fmt.Fprintln(w, mdndoc.FormatMime(result))
}
