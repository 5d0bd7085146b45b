package results

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed result memo")

// positions of the memo cells once the separators are dropped
const (
	headerCount    = 18
	subjectsOffset = 22
	gradeCount     = 4
	subjectWidth   = 4

	headerCourse   = 2
	headerSemester = 4
	headerName     = 13
	headerRegNo    = 15
	headerBranch   = 17

	gradeGPA  = 1
	gradeCGPA = 3
)

// MinElements is the shortest memo that still has a header and a footer.
const MinElements = subjectsOffset + gradeCount

// Slice cuts the flat cell list into headers, subjects and grades by fixed
// offsets.
func Slice(elements []string) (Segments, error) {
	if len(elements) < MinElements {
		return Segments{}, fmt.Errorf("%w: %d cells, need at least %d", ErrMalformed, len(elements), MinElements)
	}

	subjects := elements[subjectsOffset : len(elements)-gradeCount]
	if len(subjects)%subjectWidth != 0 {
		return Segments{}, fmt.Errorf("%w: %d subject cells is not a multiple of %d", ErrMalformed, len(subjects), subjectWidth)
	}

	return Segments{
		Headers:  elements[:headerCount],
		Subjects: subjects,
		Grades:   elements[len(elements)-gradeCount:],
	}, nil
}

// Build maps segments onto records, only checking that the registration
// number and semester are present.
func Build(seg Segments) (Result, error) {
	if len(seg.Headers) != headerCount || len(seg.Grades) != gradeCount {
		return Result{}, fmt.Errorf("%w: unexpected segment sizes", ErrMalformed)
	}

	student := Student{
		RegNo:    seg.Headers[headerRegNo],
		Name:     seg.Headers[headerName],
		Course:   seg.Headers[headerCourse],
		Semester: seg.Headers[headerSemester],
		Branch:   seg.Headers[headerBranch],
	}
	if student.RegNo == "" {
		return Result{}, fmt.Errorf("%w: missing registration number", ErrMalformed)
	}
	if student.Semester == "" {
		return Result{}, fmt.Errorf("%w: missing semester", ErrMalformed)
	}

	subjects := make([]SubjectResult, 0, len(seg.Subjects)/subjectWidth)
	for i := 0; i+subjectWidth <= len(seg.Subjects); i += subjectWidth {
		subjects = append(subjects, SubjectResult{
			RegNo:    student.RegNo,
			Semester: student.Semester,
			Code:     seg.Subjects[i],
			Subject:  seg.Subjects[i+1],
			Credits:  seg.Subjects[i+2],
			Grade:    seg.Subjects[i+3],
		})
	}

	return Result{
		Student:  student,
		Subjects: subjects,
		Gpa: GpaRecord{
			RegNo:    student.RegNo,
			Semester: student.Semester,
			GPA:      seg.Grades[gradeGPA],
			CGPA:     seg.Grades[gradeCGPA],
		},
	}, nil
}
