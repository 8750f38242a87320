// Package mdndoc looks up JavaScript reference documentation on MDN web docs.
// It searches the site for a method, picks the matching result and extracts
// the definition, syntax block and example from the method's page. It also
// resolves file extensions to MIME types using MDN's common types table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package mdndoc

// BaseURL is the origin every documentation path is resolved against.
const BaseURL = "https://developer.mozilla.org"

// Fixed paths on the documentation site.
const (
	// SearchPath is the site search endpoint. Results are listed in Spanish.
	SearchPath = "/es/search"

	// MimeTypesPath is the reference page listing common MIME types in a table.
	MimeTypesPath = "/es/docs/Web/HTTP/Basics_of_HTTP/MIME_types/Common_types"
)

// PrototypeFamilies are the receiver types a method title may be qualified
// with when the caller does not name one.
var PrototypeFamilies = []string{"Array", "String", "Object"}
