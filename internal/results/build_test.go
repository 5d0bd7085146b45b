package results

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var sampleHeaders = []string{
	"GITAM UNIVERSITY", "Course", "B.Tech", "Semester", "4",
	"Exam", "Regular", "Month", "April", "Year", "2014", "Result Memo",
	"Name", "ANJALI RAO", "Registration No", "1210312105", "Branch", "CSE",
}

var sampleColumns = []string{"Code", "Subject", "Credits", "Grade"}

func sampleElements(subjects ...[]string) []string {
	out := append([]string{}, sampleHeaders...)
	out = append(out, sampleColumns...)
	for _, s := range subjects {
		out = append(out, s...)
	}
	return append(out, "GPA", "7.90", "CGPA", "8.02")
}

func TestSliceAndBuild(t *testing.T) {
	elements := sampleElements(
		[]string{"CS201", "Data Structures", "4", "A"},
		[]string{"CS202", "Discrete Mathematics", "3", "B+"},
	)

	seg, err := Slice(elements)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, seg.Headers, 18)
	require.Len(t, seg.Subjects, 8)
	require.Equal(t, []string{"GPA", "7.90", "CGPA", "8.02"}, seg.Grades)

	res, err := Build(seg)
	if err != nil {
		t.Fatal(err)
	}

	expected := Result{
		Student: Student{
			RegNo:    "1210312105",
			Name:     "ANJALI RAO",
			Course:   "B.Tech",
			Branch:   "CSE",
			Semester: "4",
		},
		Subjects: []SubjectResult{
			{RegNo: "1210312105", Semester: "4", Code: "CS201", Subject: "Data Structures", Credits: "4", Grade: "A"},
			{RegNo: "1210312105", Semester: "4", Code: "CS202", Subject: "Discrete Mathematics", Credits: "3", Grade: "B+"},
		},
		Gpa: GpaRecord{RegNo: "1210312105", Semester: "4", GPA: "7.90", CGPA: "8.02"},
	}
	diff := cmp.Diff(expected, res)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestSliceNoSubjects(t *testing.T) {
	seg, err := Slice(sampleElements())
	if err != nil {
		t.Fatal(err)
	}
	res, err := Build(seg)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, res.Subjects)
	require.Equal(t, "8.02", res.Gpa.CGPA)
}

func TestSliceMalformed(t *testing.T) {
	_, err := Slice(sampleHeaders)
	require.True(t, errors.Is(err, ErrMalformed))

	_, err = Slice(sampleElements([]string{"CS201", "Data Structures", "4"}))
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestBuildMissingRegNo(t *testing.T) {
	elements := sampleElements()
	elements[15] = ""
	seg, err := Slice(elements)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(seg)
	require.True(t, errors.Is(err, ErrMalformed))
}
