package mdndoc

import "context"

// MimeEntry is a row of the common MIME types table.
type MimeEntry struct {
	// Extension includes the leading dot, e.g. ".json".
	Extension string `json:"extension"`
	TypeDoc   string `json:"typeDoc"`
	TypeMime  string `json:"typeMime"`
}

// MimeResult is a resolved MIME entry along with the page it came from.
type MimeResult struct {
	Mime   MimeEntry `json:"mime"`
	Source string    `json:"source"`
}

// MimeService resolves file extensions to MIME types.
type MimeService interface {
	// FindMime returns the entry whose extension equals "."+ext exactly.
	// Returns nil and no error when no entry matches.
	FindMime(ctx context.Context, ext string) (*MimeResult, error)
}
