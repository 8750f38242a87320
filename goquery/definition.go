package goquery

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdndoc"
)

// GetDefinition loads the documentation page at path and extracts its
// definition, syntax block and first JavaScript example. Fields missing from
// the page are left empty.
func (e *Engine) GetDefinition(ctx context.Context, path string) (*mdndoc.Definition, error) {
	doc, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}

	return &mdndoc.Definition{
		Method:     methodFromPath(path),
		Definition: firstParagraph(doc),
		Syntax:     extractSyntax(doc),
		Example:    doc.Find("pre.js").First().Text(),
		URL:        e.baseURL + path,
	}, nil
}

// methodFromPath returns the last "/"-delimited segment of path.
func methodFromPath(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// firstParagraph returns the text of the first paragraph that is longer than
// one character and is not marked as an unfinished translation. Length is
// counted in runes, so a paragraph holding a single emoji is skipped.
func firstParagraph(doc *goquery.Document) string {
	var text string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		t := sel.Text()
		if utf8.RuneCountInString(t) > 1 && !sel.HasClass("translationInProgress") {
			text = t
			return false
		}
		return true
	})
	return text
}

// syntaxStrategy extracts a syntax block from a page. The boolean reports
// whether the strategy applied to the page at all.
type syntaxStrategy func(doc *goquery.Document) (string, bool)

// syntaxStrategies are tried in order; the first one that applies wins.
// The Syntax heading only counts when it has text. Sintaxis is the last
// resort and applies whenever the heading exists.
var syntaxStrategies = []syntaxStrategy{
	syntaxAfterHeading("Syntax", true),
	syntaxAfterHeading("Sintaxis", false),
}

func extractSyntax(doc *goquery.Document) string {
	for _, strategy := range syntaxStrategies {
		if syntax, ok := strategy(doc); ok {
			return syntax
		}
	}
	return ""
}

// syntaxAfterHeading reads the syntax block that follows the h2 with the
// given id. The block is the heading's next sibling when it carries the
// syntaxbox class, otherwise the sibling after that. With needText set, a
// heading without text does not apply.
func syntaxAfterHeading(id string, needText bool) syntaxStrategy {
	selector := fmt.Sprintf("h2[id=%q]", id)

	return func(doc *goquery.Document) (string, bool) {
		heading := doc.Find(selector).First()
		if heading.Length() == 0 || (needText && heading.Text() == "") {
			return "", false
		}

		block := heading.Next()
		if block.HasClass("syntaxbox") {
			return block.Text(), true
		}
		return block.Next().Text(), true
	}
}
