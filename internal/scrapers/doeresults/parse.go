package doeresults

import (
	"bytes"
	"errors"
	"fmt"
	"resultsdb/internal/results"
	"resultsdb/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoResult = errors.New("no result on page")

// the report viewer appends print/footer spans after the memo
const trailingSpans = 3

func isSeparator(s string) bool {
	return s == ":" || s == "/"
}

func spanText(span *goquery.Selection) string {
	font := span.Find("b").First().Find("font").First()
	if font.Length() > 0 {
		return htmlutil.FirstContent(font)
	}
	return htmlutil.GetText(span.Nodes[0])
}

// ExtractElements flattens the text of every span on the page, minus the
// trailing footer spans, into cleaned memo cells with separators removed.
func ExtractElements(doc *goquery.Document) ([]string, error) {
	spans := doc.Find("span")
	if spans.Length() == 0 {
		return nil, ErrNoResult
	}

	count := spans.Length() - trailingSpans
	elements := make([]string, 0, max(count, 0))
	spans.Slice(0, max(count, 0)).Each(func(_ int, span *goquery.Selection) {
		text := htmlutil.CleanText(spanText(span))
		if isSeparator(text) {
			return
		}
		elements = append(elements, text)
	})
	return elements, nil
}

// Parse turns a report viewer page into a result.
func Parse(body []byte) (results.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return results.Result{}, fmt.Errorf("parse html: %w", err)
	}
	elements, err := ExtractElements(doc)
	if err != nil {
		return results.Result{}, err
	}
	seg, err := results.Slice(elements)
	if err != nil {
		return results.Result{}, err
	}
	return results.Build(seg)
}
