package mdndoc

import (
	"fmt"
	"strings"
)

// FormatDefinition formats a definition for display.
// Empty sections are omitted; the URL is always last.
func FormatDefinition(d *Definition) string {
	if d == nil {
		return ""
	}

	var parts []string
	if s := strings.TrimSpace(d.Definition); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(d.Syntax); s != "" {
		parts = append(parts, "Syntax:\n"+s)
	}
	if s := strings.TrimSpace(d.Example); s != "" {
		parts = append(parts, "Example:\n"+s)
	}
	parts = append(parts, d.URL)

	return strings.Join(parts, "\n\n")
}

// FormatCandidates formats search candidates as a numbered list, one per line.
func FormatCandidates(candidates []SearchCandidate) string {
	if len(candidates) == 0 {
		return ""
	}

	lines := make([]string, 0, len(candidates))
	for i, c := range candidates {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, c.Title, c.Path))
	}

	return strings.Join(lines, "\n")
}

// FormatMime formats a MIME result for display.
func FormatMime(r *MimeResult) string {
	if r == nil {
		return ""
	}

	return fmt.Sprintf("Extension: %s\nDocument:  %s\nMIME type: %s\nSource:    %s",
		r.Mime.Extension, r.Mime.TypeDoc, r.Mime.TypeMime, r.Source)
}
