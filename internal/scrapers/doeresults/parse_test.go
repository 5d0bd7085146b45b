package doeresults

import (
	"bytes"
	"errors"
	"os"
	"resultsdb/internal/results"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func readFixture(t testing.TB, name string) []byte {
	contents, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return contents
}

func TestExtractElements(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(readFixture(t, "result.html")))
	if err != nil {
		t.Fatal(err)
	}
	elements, err := ExtractElements(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, elements, 42)
	require.Equal(t, "GITAM UNIVERSITY", elements[0])
	require.Equal(t, "B.Tech", elements[2])
	require.Equal(t, "6", elements[4])
	require.Equal(t, "2014", elements[9])
	require.Equal(t, "RAVI KUMAR", elements[13])
	require.Equal(t, "Computer Science   Engineering", elements[17])
	require.Equal(t, []string{"Code", "Subject Name", "Credits", "Grade"}, elements[18:22])
	require.Equal(t, "8.12", elements[len(elements)-1])
	require.NotContains(t, elements, ":")
	require.NotContains(t, elements, "/")
	require.NotContains(t, elements, "Printed on")
}

func TestParse(t *testing.T) {
	res, err := Parse(readFixture(t, "result.html"))
	if err != nil {
		t.Fatal(err)
	}

	expected := results.Result{
		Student: results.Student{
			RegNo:    "1210311101",
			Name:     "RAVI KUMAR",
			Course:   "B.Tech",
			Branch:   "Computer Science   Engineering",
			Semester: "6",
		},
		Subjects: []results.SubjectResult{
			{RegNo: "1210311101", Semester: "6", Code: "CS301", Subject: "Operating Systems", Credits: "4", Grade: "A+"},
			{RegNo: "1210311101", Semester: "6", Code: "CS302", Subject: "Compiler Design", Credits: "4", Grade: "A"},
			{RegNo: "1210311101", Semester: "6", Code: "CS303", Subject: "Computer Networks", Credits: "3", Grade: "B+"},
			{RegNo: "1210311101", Semester: "6", Code: "HS301", Subject: "Professional Ethics   Human Values", Credits: "2", Grade: "O"},
		},
		Gpa: results.GpaRecord{RegNo: "1210311101", Semester: "6", GPA: "8.45", CGPA: "8.12"},
	}
	diff := cmp.Diff(expected, res)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestParseMissing(t *testing.T) {
	_, err := Parse(readFixture(t, "not_found.html"))
	require.True(t, errors.Is(err, ErrNoResult), err)

	_, err = Parse(readFixture(t, "withheld.html"))
	require.True(t, errors.Is(err, results.ErrMalformed), err)

	_, err = Parse([]byte(""))
	require.True(t, errors.Is(err, ErrNoResult), err)
}
