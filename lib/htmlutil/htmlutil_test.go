package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "\u00a0 B.Tech&nbsp;", expected: "B.Tech"},
		{in: " CSE\u200e", expected: "CSE"},
		{in: "&#x200E;8.45", expected: "8.45"},
		{in: "Science & Engineering", expected: "Science   Engineering"},
		{in: "Science &amp; Engineering", expected: "Science   Engineering"},
		{in: ":", expected: ":"},
		{in: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.in), test.in)
	}
}

func TestFirstContent(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<span><b><font>first<i>nested</i></font></b></span><span></span>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "first", FirstContent(doc.Find("span font")))
	require.Equal(t, "", FirstContent(doc.Find("span").Last().Find("font")))
	require.Equal(t, "firstnested", GetText(doc.Find("font").Nodes[0]))
}
