package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node below node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FirstContent returns the text of the first child of the first node matched
// by sel, or "" when there is none.
func FirstContent(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return GetText(sel.Nodes[0].FirstChild)
}

// entities are replaced in order, raw (still escaped) forms first since some
// report pages escape their entities twice.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&#x200E;", "",
	"&amp;", " ",
	"\u00a0", " ",
	"\u200e", "",
	"&", " ",
)

// CleanText strips the html entities report pages pad their cells with and
// trims surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(entityReplacer.Replace(s))
}
