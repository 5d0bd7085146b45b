package db

import (
	"context"
)

const insertStudent = `insert into students (regno, name, course, branch, semester, scraped_at)
values (?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertStudent(ctx context.Context, arg Student) error {
	_, err := q.db.ExecContext(ctx, insertStudent,
		arg.Regno,
		arg.Name,
		arg.Course,
		arg.Branch,
		arg.Semester,
		arg.ScrapedAt,
	)
	return err
}

const upsertStudent = `insert into students (regno, name, course, branch, semester, scraped_at)
values (?, ?, ?, ?, ?, ?)
on conflict (regno) do update set
    name = excluded.name,
    course = excluded.course,
    branch = excluded.branch,
    semester = excluded.semester,
    scraped_at = excluded.scraped_at`

func (q *Queries) UpsertStudent(ctx context.Context, arg Student) error {
	_, err := q.db.ExecContext(ctx, upsertStudent,
		arg.Regno,
		arg.Name,
		arg.Course,
		arg.Branch,
		arg.Semester,
		arg.ScrapedAt,
	)
	return err
}

const insertSubjectResult = `insert into subject_results (regno, semester, code, subject, credits, grade, scraped_at)
values (?, ?, ?, ?, ?, ?, ?)`

func (q *Queries) InsertSubjectResult(ctx context.Context, arg SubjectResult) error {
	_, err := q.db.ExecContext(ctx, insertSubjectResult,
		arg.Regno,
		arg.Semester,
		arg.Code,
		arg.Subject,
		arg.Credits,
		arg.Grade,
		arg.ScrapedAt,
	)
	return err
}

const upsertSubjectResult = `insert into subject_results (regno, semester, code, subject, credits, grade, scraped_at)
values (?, ?, ?, ?, ?, ?, ?)
on conflict (regno, semester, code) do update set
    subject = excluded.subject,
    credits = excluded.credits,
    grade = excluded.grade,
    scraped_at = excluded.scraped_at`

func (q *Queries) UpsertSubjectResult(ctx context.Context, arg SubjectResult) error {
	_, err := q.db.ExecContext(ctx, upsertSubjectResult,
		arg.Regno,
		arg.Semester,
		arg.Code,
		arg.Subject,
		arg.Credits,
		arg.Grade,
		arg.ScrapedAt,
	)
	return err
}

const insertGpaRecord = `insert into gpa_records (regno, semester, gpa, cgpa, scraped_at)
values (?, ?, ?, ?, ?)`

func (q *Queries) InsertGpaRecord(ctx context.Context, arg GpaRecord) error {
	_, err := q.db.ExecContext(ctx, insertGpaRecord,
		arg.Regno,
		arg.Semester,
		arg.Gpa,
		arg.Cgpa,
		arg.ScrapedAt,
	)
	return err
}

const upsertGpaRecord = `insert into gpa_records (regno, semester, gpa, cgpa, scraped_at)
values (?, ?, ?, ?, ?)
on conflict (regno, semester) do update set
    gpa = excluded.gpa,
    cgpa = excluded.cgpa,
    scraped_at = excluded.scraped_at`

func (q *Queries) UpsertGpaRecord(ctx context.Context, arg GpaRecord) error {
	_, err := q.db.ExecContext(ctx, upsertGpaRecord,
		arg.Regno,
		arg.Semester,
		arg.Gpa,
		arg.Cgpa,
		arg.ScrapedAt,
	)
	return err
}

const getStudent = `select regno, name, course, branch, semester, scraped_at from students
where regno = ?`

func (q *Queries) GetStudent(ctx context.Context, regno string) (Student, error) {
	row := q.db.QueryRowContext(ctx, getStudent, regno)
	var i Student
	err := row.Scan(
		&i.Regno,
		&i.Name,
		&i.Course,
		&i.Branch,
		&i.Semester,
		&i.ScrapedAt,
	)
	return i, err
}

const listStudents = `select regno, name, course, branch, semester, scraped_at from students
order by regno`

func (q *Queries) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := q.db.QueryContext(ctx, listStudents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Student
	for rows.Next() {
		var i Student
		if err := rows.Scan(
			&i.Regno,
			&i.Name,
			&i.Course,
			&i.Branch,
			&i.Semester,
			&i.ScrapedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSubjectResults = `select regno, semester, code, subject, credits, grade, scraped_at from subject_results
where regno = ?
order by cast(semester as integer), semester, code`

func (q *Queries) GetSubjectResults(ctx context.Context, regno string) ([]SubjectResult, error) {
	rows, err := q.db.QueryContext(ctx, getSubjectResults, regno)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SubjectResult
	for rows.Next() {
		var i SubjectResult
		if err := rows.Scan(
			&i.Regno,
			&i.Semester,
			&i.Code,
			&i.Subject,
			&i.Credits,
			&i.Grade,
			&i.ScrapedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getGpaRecords = `select regno, semester, gpa, cgpa, scraped_at from gpa_records
where regno = ?
order by cast(semester as integer), semester`

func (q *Queries) GetGpaRecords(ctx context.Context, regno string) ([]GpaRecord, error) {
	rows, err := q.db.QueryContext(ctx, getGpaRecords, regno)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GpaRecord
	for rows.Next() {
		var i GpaRecord
		if err := rows.Scan(
			&i.Regno,
			&i.Semester,
			&i.Gpa,
			&i.Cgpa,
			&i.ScrapedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countRecords = `select
    (select count(*) from students),
    (select count(*) from subject_results),
    (select count(*) from gpa_records)`

type CountRecordsRow struct {
	Students       int64
	SubjectResults int64
	GpaRecords     int64
}

func (q *Queries) CountRecords(ctx context.Context) (CountRecordsRow, error) {
	row := q.db.QueryRowContext(ctx, countRecords)
	var i CountRecordsRow
	err := row.Scan(&i.Students, &i.SubjectResults, &i.GpaRecords)
	return i, err
}
