package results

// Student is the header of a result memo.
type Student struct {
	RegNo    string
	Name     string
	Course   string
	Branch   string
	Semester string
}

// SubjectResult is one row of the grade table of a result memo.
type SubjectResult struct {
	RegNo    string
	Semester string
	Code     string
	Subject  string
	Credits  string
	Grade    string
}

// GpaRecord is the footer of a result memo.
type GpaRecord struct {
	RegNo    string
	Semester string
	GPA      string
	CGPA     string
}

// Result is everything scraped from a single result memo.
type Result struct {
	Student  Student
	Subjects []SubjectResult
	Gpa      GpaRecord
}

// Segments is a flat list of memo cells cut into its three regions.
type Segments struct {
	Headers  []string
	Subjects []string
	Grades   []string
}
