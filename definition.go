package mdndoc

import (
	"context"
	"encoding/json"
)

// SearchCandidate is a search result that may document the requested method.
type SearchCandidate struct {
	// Title is the normalized method signature, e.g. "Array.map()".
	// It never contains a "prototype" segment and always contains "()".
	Title string `json:"title"`

	// Path is the site-relative link to the documentation page.
	Path string `json:"path"`
}

// Definition is the documentation extracted from a method's page.
// Definition, Syntax and Example are empty when the page lacks them.
type Definition struct {
	Method     string `json:"method"`
	Definition string `json:"definition,omitempty"`
	Syntax     string `json:"syntax,omitempty"`
	Example    string `json:"example,omitempty"`
	URL        string `json:"url"`
}

// SearchOutcome is the result of a definition search. Exactly one of
// Definition or Candidates is set: Definition when a search result matched
// the method, otherwise the unranked Candidates so the caller can offer a
// choice.
type SearchOutcome struct {
	Definition *Definition       `json:"data,omitempty"`
	Candidates []SearchCandidate `json:"searchList,omitempty"`
}

// Found reports whether the search resolved to a definition.
func (o *SearchOutcome) Found() bool {
	return o != nil && o.Definition != nil
}

// MarshalJSON encodes exactly one variant, either {"data": ...} or
// {"searchList": [...]}, even when the candidate list is empty.
func (o SearchOutcome) MarshalJSON() ([]byte, error) {
	if o.Definition != nil {
		return json.Marshal(struct {
			Definition *Definition `json:"data"`
		}{o.Definition})
	}

	candidates := o.Candidates
	if candidates == nil {
		candidates = []SearchCandidate{}
	}
	return json.Marshal(struct {
		Candidates []SearchCandidate `json:"searchList"`
	}{candidates})
}

// DefinitionService looks up method documentation.
type DefinitionService interface {
	// SearchDefinition searches for method, optionally qualified by a
	// prototype family such as "Array". An empty typ accepts any of
	// PrototypeFamilies. Returns EINVALID if method is empty.
	SearchDefinition(ctx context.Context, typ, method string) (*SearchOutcome, error)

	// GetDefinition extracts the definition from the page at path.
	GetDefinition(ctx context.Context, path string) (*Definition, error)
}
