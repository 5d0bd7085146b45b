package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"resultsdb/internal/results"
	"resultsdb/lib/textutil"
	"sort"

	"github.com/antzucaro/matchr"
)

var ErrNotFound = errors.New("no records for registration number")

type Semester struct {
	Semester string
	Gpa      results.GpaRecord
	Subjects []results.SubjectResult
}

// Transcript is everything stored about one registration number, ordered
// by semester.
type Transcript struct {
	Student   results.Student
	Semesters []Semester
}

func (s Store) ListStudents(ctx context.Context) ([]results.Student, error) {
	rows, err := s.qry.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]results.Student, len(rows))
	for i, r := range rows {
		out[i] = results.Student{
			RegNo:    r.Regno,
			Name:     r.Name,
			Course:   r.Course,
			Branch:   r.Branch,
			Semester: r.Semester,
		}
	}
	return out, nil
}

func (s Store) GetTranscript(ctx context.Context, regno string) (Transcript, error) {
	var out Transcript

	student, err := s.qry.GetStudent(ctx, regno)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("get student: %w", err)
	}
	hasStudent := err == nil
	if hasStudent {
		out.Student = results.Student{
			RegNo:    student.Regno,
			Name:     student.Name,
			Course:   student.Course,
			Branch:   student.Branch,
			Semester: student.Semester,
		}
	}

	gpas, err := s.qry.GetGpaRecords(ctx, regno)
	if err != nil {
		return out, fmt.Errorf("get gpa records: %w", err)
	}
	subjects, err := s.qry.GetSubjectResults(ctx, regno)
	if err != nil {
		return out, fmt.Errorf("get subject results: %w", err)
	}
	if !hasStudent && len(gpas) == 0 && len(subjects) == 0 {
		return out, fmt.Errorf("%w: %s", ErrNotFound, regno)
	}

	index := map[string]int{}
	semester := func(sem string) *Semester {
		i, ok := index[sem]
		if !ok {
			i = len(out.Semesters)
			index[sem] = i
			out.Semesters = append(out.Semesters, Semester{Semester: sem})
		}
		return &out.Semesters[i]
	}
	for _, g := range gpas {
		semester(g.Semester).Gpa = results.GpaRecord{
			RegNo:    g.Regno,
			Semester: g.Semester,
			GPA:      g.Gpa,
			CGPA:     g.Cgpa,
		}
	}
	for _, sub := range subjects {
		sem := semester(sub.Semester)
		sem.Subjects = append(sem.Subjects, results.SubjectResult{
			RegNo:    sub.Regno,
			Semester: sub.Semester,
			Code:     sub.Code,
			Subject:  sub.Subject,
			Credits:  sub.Credits,
			Grade:    sub.Grade,
		})
	}

	return out, nil
}

type Match struct {
	Student results.Student
	Score   float64
}

// SearchStudents ranks stored students by Jaro-Winkler similarity of their
// name to query, keeping those scoring at least minScore.
func (s Store) SearchStudents(ctx context.Context, query string, minScore float64) ([]Match, error) {
	students, err := s.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	normalized := textutil.NormalizeName(query)
	var matches []Match
	for _, student := range students {
		score := matchr.JaroWinkler(normalized, textutil.NormalizeName(student.Name), false)
		if score < minScore {
			continue
		}
		matches = append(matches, Match{Student: student, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}
