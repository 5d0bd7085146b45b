// Package regno enumerates candidate registration numbers.
//
// A registration number is the concatenation of a branch code, a two digit
// admission year, a single digit section and a two digit roll number, ex.
// 12103 + 11 + 1 + 01 = "1210311101".
package regno

import (
	"fmt"
	"strconv"
)

// Batch is one admission year of the branch.
type Batch struct {
	// Year is the two digit admission year, ex. "12".
	Year string `json:"year"`
	// Sections is the number of sections, numbered from 1.
	Sections int `json:"sections"`
	// Semesters is the latest semester that has been examined for the batch.
	Semesters int `json:"semesters"`
}

type Ranges struct {
	BranchCode string  `json:"branch_code"`
	Batches    []Batch `json:"batches"`
	// Rolls is the highest roll number in a section, numbered from 1.
	Rolls int `json:"rolls"`
}

// DefaultRanges is the CSE branch across the 2011, 2012 and 2013 batches.
func DefaultRanges() Ranges {
	return Ranges{
		BranchCode: "12103",
		Batches: []Batch{
			{Year: "11", Sections: 5, Semesters: 6},
			{Year: "12", Sections: 6, Semesters: 4},
			{Year: "13", Sections: 9, Semesters: 3},
		},
		Rolls: 67,
	}
}

func isDigits(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func (r Ranges) Validate() error {
	if r.BranchCode == "" || !isDigits(r.BranchCode) {
		return fmt.Errorf("branch code must be numeric, got '%s'", r.BranchCode)
	}
	if r.Rolls < 1 || r.Rolls > 99 {
		return fmt.Errorf("rolls must be within 1-99, got %d", r.Rolls)
	}
	if len(r.Batches) == 0 {
		return fmt.Errorf("no batches given")
	}
	for _, b := range r.Batches {
		if len(b.Year) != 2 || !isDigits(b.Year) {
			return fmt.Errorf("batch year must be two digits, got '%s'", b.Year)
		}
		if b.Sections < 1 || b.Sections > 9 {
			return fmt.Errorf("batch %s: sections must be within 1-9, got %d", b.Year, b.Sections)
		}
		if b.Semesters < 1 {
			return fmt.Errorf("batch %s: semesters must be at least 1, got %d", b.Year, b.Semesters)
		}
	}
	return nil
}

// Candidate is a registration number that may exist along with the latest
// semester it could have results for.
type Candidate struct {
	RegNo     string
	Semesters int
}

// Pair is a single (registration number, semester) lookup.
type Pair struct {
	RegNo    string
	Semester int
}

// Format assembles a registration number.
func Format(branchCode, year string, section, roll int) string {
	return fmt.Sprintf("%s%s%d%02d", branchCode, year, section, roll)
}

// Generate enumerates year -> section -> roll number in configuration order.
func Generate(r Ranges) []Candidate {
	out := make([]Candidate, 0, Count(r))
	for _, batch := range r.Batches {
		for section := 1; section <= batch.Sections; section++ {
			for roll := 1; roll <= r.Rolls; roll++ {
				out = append(out, Candidate{
					RegNo:     Format(r.BranchCode, batch.Year, section, roll),
					Semesters: batch.Semesters,
				})
			}
		}
	}
	return out
}

// Pairs expands every candidate into semesters 1 through its latest.
func Pairs(candidates []Candidate) []Pair {
	var out []Pair
	for _, c := range candidates {
		for sem := 1; sem <= c.Semesters; sem++ {
			out = append(out, Pair{RegNo: c.RegNo, Semester: sem})
		}
	}
	return out
}

// Count is the number of candidates Generate yields.
func Count(r Ranges) int {
	total := 0
	for _, batch := range r.Batches {
		total += batch.Sections * r.Rolls
	}
	return total
}

// PairCount is the number of pairs Pairs(Generate(r)) yields.
func PairCount(r Ranges) int {
	total := 0
	for _, batch := range r.Batches {
		total += batch.Sections * r.Rolls * batch.Semesters
	}
	return total
}
