package db

type Student struct {
	Regno     string
	Name      string
	Course    string
	Branch    string
	Semester  string
	ScrapedAt int64
}

type SubjectResult struct {
	Regno     string
	Semester  string
	Code      string
	Subject   string
	Credits   string
	Grade     string
	ScrapedAt int64
}

type GpaRecord struct {
	Regno     string
	Semester  string
	Gpa       string
	Cgpa      string
	ScrapedAt int64
}
