package regno

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	r := DefaultRanges()
	require.NoError(t, r.Validate())

	candidates := Generate(r)
	// (5 + 6 + 9) sections * 67 rolls
	require.Len(t, candidates, 1340)
	require.Equal(t, 1340, Count(r))

	pairs := Pairs(candidates)
	// 5*67*6 + 6*67*4 + 9*67*3
	require.Len(t, pairs, 5427)
	require.Equal(t, 5427, PairCount(r))

	require.Equal(t, Candidate{RegNo: "1210311101", Semesters: 6}, candidates[0])
	require.Equal(t, Candidate{RegNo: "1210311567", Semesters: 6}, candidates[5*67-1])
	require.Equal(t, Candidate{RegNo: "1210312101", Semesters: 4}, candidates[5*67])
	require.Equal(t, Candidate{RegNo: "1210313967", Semesters: 3}, candidates[len(candidates)-1])

	seen := map[string]bool{}
	for _, c := range candidates {
		require.Len(t, c.RegNo, 10)
		require.False(t, seen[c.RegNo], "duplicate registration number %s", c.RegNo)
		seen[c.RegNo] = true
	}
}

func TestPairs(t *testing.T) {
	r := Ranges{
		BranchCode: "12103",
		Batches:    []Batch{{Year: "14", Sections: 1, Semesters: 2}},
		Rolls:      2,
	}

	expected := []Pair{
		{RegNo: "1210314101", Semester: 1},
		{RegNo: "1210314101", Semester: 2},
		{RegNo: "1210314102", Semester: 1},
		{RegNo: "1210314102", Semester: 2},
	}
	diff := cmp.Diff(expected, Pairs(Generate(r)))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultRanges()

	testCases := []struct {
		name   string
		mutate func(r *Ranges)
	}{
		{name: "empty branch", mutate: func(r *Ranges) { r.BranchCode = "" }},
		{name: "alpha branch", mutate: func(r *Ranges) { r.BranchCode = "12a03" }},
		{name: "no rolls", mutate: func(r *Ranges) { r.Rolls = 0 }},
		{name: "three digit rolls", mutate: func(r *Ranges) { r.Rolls = 100 }},
		{name: "no batches", mutate: func(r *Ranges) { r.Batches = nil }},
		{name: "long year", mutate: func(r *Ranges) { r.Batches[0].Year = "2011" }},
		{name: "no sections", mutate: func(r *Ranges) { r.Batches[1].Sections = 0 }},
		{name: "ten sections", mutate: func(r *Ranges) { r.Batches[1].Sections = 10 }},
		{name: "no semesters", mutate: func(r *Ranges) { r.Batches[2].Semesters = 0 }},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			r := valid
			r.Batches = append([]Batch(nil), valid.Batches...)
			test.mutate(&r)
			require.Error(t, r.Validate())
		})
	}
}
