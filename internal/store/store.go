package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"resultsdb/internal/components/chrono"
	"resultsdb/internal/db"
	"resultsdb/internal/results"
)

var ErrDuplicate = errors.New("record already exists")

// Mode is the conflict policy used when a record is already stored.
type Mode int

const (
	// ModeError fails the insert with ErrDuplicate.
	ModeError Mode = iota
	// ModeReplace overwrites the stored record.
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "error"
}

type Store struct {
	db     *sql.DB
	qry    *db.Queries
	makeTx db.MakeTx
	time   chrono.API
}

func NewStore(database *sql.DB, time chrono.API) Store {
	return Store{
		db:     database,
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
		time:   time,
	}
}

func wrapDuplicate(err error, table, key string) error {
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s %s", ErrDuplicate, table, key)
	}
	return fmt.Errorf("insert %s %s: %w", table, key, err)
}

func insertStudent(ctx context.Context, qry *db.Queries, s results.Student, mode Mode, now int64) error {
	row := db.Student{
		Regno:     s.RegNo,
		Name:      s.Name,
		Course:    s.Course,
		Branch:    s.Branch,
		Semester:  s.Semester,
		ScrapedAt: now,
	}
	var err error
	if mode == ModeReplace {
		err = qry.UpsertStudent(ctx, row)
	} else {
		err = qry.InsertStudent(ctx, row)
	}
	if err != nil {
		return wrapDuplicate(err, "student", s.RegNo)
	}
	return nil
}

func insertGrades(ctx context.Context, qry *db.Queries, res results.Result, mode Mode, now int64) error {
	for _, subject := range res.Subjects {
		row := db.SubjectResult{
			Regno:     subject.RegNo,
			Semester:  subject.Semester,
			Code:      subject.Code,
			Subject:   subject.Subject,
			Credits:   subject.Credits,
			Grade:     subject.Grade,
			ScrapedAt: now,
		}
		var err error
		if mode == ModeReplace {
			err = qry.UpsertSubjectResult(ctx, row)
		} else {
			err = qry.InsertSubjectResult(ctx, row)
		}
		if err != nil {
			return wrapDuplicate(err, "subject", fmt.Sprintf("%s/%s/%s", subject.RegNo, subject.Semester, subject.Code))
		}
	}

	row := db.GpaRecord{
		Regno:     res.Gpa.RegNo,
		Semester:  res.Gpa.Semester,
		Gpa:       res.Gpa.GPA,
		Cgpa:      res.Gpa.CGPA,
		ScrapedAt: now,
	}
	var err error
	if mode == ModeReplace {
		err = qry.UpsertGpaRecord(ctx, row)
	} else {
		err = qry.InsertGpaRecord(ctx, row)
	}
	if err != nil {
		return wrapDuplicate(err, "gpa", fmt.Sprintf("%s/%s", res.Gpa.RegNo, res.Gpa.Semester))
	}
	return nil
}

type saveFunc = func(ctx context.Context, qry *db.Queries, now int64) error

func (s Store) inTx(ctx context.Context, fn saveFunc) error {
	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return err
	}
	defer discard()

	err = fn(ctx, txqry, s.time.Now().Unix())
	if err != nil {
		return err
	}
	return commit()
}

// SaveStudent stores the header of a memo.
func (s Store) SaveStudent(ctx context.Context, student results.Student, mode Mode) error {
	return s.inTx(ctx, func(ctx context.Context, qry *db.Queries, now int64) error {
		return insertStudent(ctx, qry, student, mode, now)
	})
}

// SaveGrades stores the subjects and GPA of a memo in one transaction.
func (s Store) SaveGrades(ctx context.Context, res results.Result, mode Mode) error {
	return s.inTx(ctx, func(ctx context.Context, qry *db.Queries, now int64) error {
		return insertGrades(ctx, qry, res, mode, now)
	})
}

// Save stores the grades of every memo of one registration number and the
// student header of the last one, all in one transaction.
func (s Store) Save(ctx context.Context, memos []results.Result, mode Mode) error {
	if len(memos) == 0 {
		return nil
	}
	return s.inTx(ctx, func(ctx context.Context, qry *db.Queries, now int64) error {
		for _, res := range memos {
			err := insertGrades(ctx, qry, res, mode, now)
			if err != nil {
				return err
			}
		}
		return insertStudent(ctx, qry, memos[len(memos)-1].Student, mode, now)
	})
}

type Counts = db.CountRecordsRow

func (s Store) Counts(ctx context.Context) (Counts, error) {
	return s.qry.CountRecords(ctx)
}
