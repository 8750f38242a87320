package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdndoc"
)

// SearchDefinition searches for method and resolves the last search result
// whose title matches it. When no title matches, the outcome carries the
// full candidate list instead.
func (e *Engine) SearchDefinition(ctx context.Context, typ, method string) (*mdndoc.SearchOutcome, error) {
	if method == "" {
		return nil, mdndoc.Errorf(mdndoc.EINVALID, "method required")
	}

	candidates, err := e.searchMethod(ctx, typ, method)
	if err != nil {
		return nil, err
	}

	re := methodPattern(typ, method)

	// Later results override earlier ones: the last match wins.
	var path string
	for _, c := range candidates {
		if re.MatchString(c.Title) {
			path = c.Path
		}
	}

	if path == "" {
		return &mdndoc.SearchOutcome{Candidates: candidates}, nil
	}

	def, err := e.GetDefinition(ctx, path)
	if err != nil {
		return nil, err
	}
	return &mdndoc.SearchOutcome{Definition: def}, nil
}

// searchMethod queries the site search for method and returns the results
// that look like method signatures, in page order.
//
// typ does not narrow the query. The search always asks for
// "prototype.<method>" and receiver filtering happens in SearchDefinition.
func (e *Engine) searchMethod(ctx context.Context, _ string, method string) ([]mdndoc.SearchCandidate, error) {
	query := url.Values{"q": {"prototype." + method}}

	doc, err := e.load(ctx, mdndoc.SearchPath+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	candidates := make([]mdndoc.SearchCandidate, 0)
	doc.Find("a.result-title").Each(func(_ int, sel *goquery.Selection) {
		title := normalizeTitle(sel.Text())
		if !strings.Contains(title, "()") {
			return
		}

		href, _ := sel.Attr("href")
		candidates = append(candidates, mdndoc.SearchCandidate{
			Title: title,
			Path:  href,
		})
	})

	return candidates, nil
}

// normalizeTitle removes the "prototype" token from a dotted title, whether
// it is a whole segment or leads one: "Array.prototype.map()" becomes
// "Array.map()" and "Array.prototype[@@iterator]()" becomes
// "Array[@@iterator]()".
func normalizeTitle(title string) string {
	segments := strings.Split(strings.TrimSpace(title), ".")

	kept := segments[:0]
	for _, s := range segments {
		if s = strings.TrimPrefix(s, "prototype"); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ".")
}

// methodPattern builds a case-insensitive pattern matching "<method>()"
// optionally qualified by typ, or by any of mdndoc.PrototypeFamilies when
// typ is empty. Both inputs are matched literally.
func methodPattern(typ, method string) *regexp.Regexp {
	families := mdndoc.PrototypeFamilies
	if typ != "" {
		families = []string{typ}
	}

	quoted := make([]string, len(families))
	for i, f := range families {
		quoted[i] = regexp.QuoteMeta(f)
	}

	return regexp.MustCompile(`(?i)^((` + strings.Join(quoted, "|") + `)\.)?` +
		regexp.QuoteMeta(method) + `\(\)`)
}
