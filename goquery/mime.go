package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdndoc"
)

// Column positions in the common MIME types table.
const (
	mimeColExtension = 0
	mimeColTypeDoc   = 1
	mimeColTypeMime  = 2
)

// FindMime loads the common MIME types table and returns the first row whose
// extension is exactly "."+ext. Returns nil when no row matches.
func (e *Engine) FindMime(ctx context.Context, ext string) (*mdndoc.MimeResult, error) {
	if ext == "" {
		return nil, mdndoc.Errorf(mdndoc.EINVALID, "extension required")
	}

	doc, err := e.load(ctx, mdndoc.MimeTypesPath)
	if err != nil {
		return nil, err
	}

	want := "." + ext

	var result *mdndoc.MimeResult
	doc.Find(".standard-table").ChildrenFiltered("tbody").Children().EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cols := row.Children()
		entry := mdndoc.MimeEntry{
			Extension: cellText(cols, mimeColExtension),
			TypeDoc:   cellText(cols, mimeColTypeDoc),
			TypeMime:  cellText(cols, mimeColTypeMime),
		}
		if entry.Extension != want {
			return true
		}

		result = &mdndoc.MimeResult{
			Mime:   entry,
			Source: e.baseURL + mdndoc.MimeTypesPath,
		}
		return false
	})

	return result, nil
}

// cellText returns the trimmed text of the i-th column, or "" if the row is
// shorter than that.
func cellText(cols *goquery.Selection, i int) string {
	return strings.TrimSpace(cols.Eq(i).Text())
}
