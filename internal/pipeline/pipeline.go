// Package pipeline drives the scrape: candidates are fetched one page at a
// time, parsed and stored sequentially.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"resultsdb/internal/components/telemetry"
	"resultsdb/internal/regno"
	"resultsdb/internal/results"
	"resultsdb/internal/scrapers/doeresults"
	"resultsdb/internal/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_pipeline_fetch = "pipeline.fetch"
	report_pipeline_store = "pipeline.store"
	report_pipeline_done  = "pipeline.done"
)

var tracer = otel.Tracer("resultsdb/pipeline")
var meter = otel.Meter("resultsdb/pipeline")

var pagesFetched, _ = meter.Int64Counter("pages_fetched")
var resultsStored, _ = meter.Int64Counter("results_stored")
var resultsSkipped, _ = meter.Int64Counter("results_skipped")

type Fetcher interface {
	FetchResult(ctx context.Context, regno string, sem int) (results.Result, error)
}

type Saver interface {
	SaveStudent(ctx context.Context, student results.Student, mode store.Mode) error
	SaveGrades(ctx context.Context, res results.Result, mode store.Mode) error
	Save(ctx context.Context, memos []results.Result, mode store.Mode) error
}

type Options struct {
	Mode store.Mode
	// RunId tags the traces of one run, it is left out when empty.
	RunId string

	// Students stores the student header of every candidate found.
	Students bool
	// Results stores the subjects and GPA of every semester found.
	Results bool
}

// Summary counts what happened over a run.
type Summary struct {
	Candidates    int
	Pages         int
	Skipped       int
	StudentsSaved int
	GradesSaved   int
}

type Pipeline struct {
	fetcher Fetcher
	saver   Saver
	tel     telemetry.API
}

func New(fetcher Fetcher, saver Saver, tel telemetry.API) Pipeline {
	return Pipeline{
		fetcher: fetcher,
		saver:   saver,
		tel:     telemetry.NewScopedAPI("pipeline", tel),
	}
}

func isMissing(err error) bool {
	return errors.Is(err, doeresults.ErrNoResult) || errors.Is(err, results.ErrMalformed)
}

// fetch returns ok=false when the page should be skipped, err is only
// returned when the run should stop.
func (p Pipeline) fetch(ctx context.Context, summary *Summary, id string, sem int) (results.Result, bool, error) {
	res, err := p.fetcher.FetchResult(ctx, id, sem)
	summary.Pages++
	pagesFetched.Add(ctx, 1)

	if err == nil {
		return res, true, nil
	}
	if ctx.Err() != nil {
		return results.Result{}, false, ctx.Err()
	}

	summary.Skipped++
	resultsSkipped.Add(ctx, 1, metric.WithAttributes(attribute.Bool("missing", isMissing(err))))
	if isMissing(err) {
		p.tel.ReportWarning(report_pipeline_fetch, fmt.Sprintf("[x] Error with %s", id), sem, err)
	} else {
		p.tel.ReportBroken(report_pipeline_fetch, fmt.Sprintf("[x] Error with %s", id), sem, err)
	}
	return results.Result{}, false, nil
}

func (p Pipeline) saveStudent(ctx context.Context, summary *Summary, student results.Student, mode store.Mode) error {
	err := p.saver.SaveStudent(ctx, student, mode)
	if err != nil {
		p.tel.ReportBroken(report_pipeline_store, student.RegNo, err)
		return err
	}
	summary.StudentsSaved++
	resultsStored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "student")))
	return nil
}

// latestStudent walks back from the latest semester until a memo is found.
func (p Pipeline) latestStudent(ctx context.Context, summary *Summary, c regno.Candidate) (results.Student, bool, error) {
	for sem := c.Semesters; sem >= 1; sem-- {
		res, ok, err := p.fetch(ctx, summary, c.RegNo, sem)
		if err != nil {
			return results.Student{}, false, err
		}
		if ok {
			return res.Student, true, nil
		}
	}
	return results.Student{}, false, nil
}

func (p Pipeline) runCandidate(ctx context.Context, summary *Summary, c regno.Candidate, opts Options) error {
	ctx, span := tracer.Start(ctx, "pipeline:candidate")
	defer span.End()
	span.SetAttributes(attribute.String("regno", c.RegNo))

	if !opts.Results {
		student, ok, err := p.latestStudent(ctx, summary, c)
		if err != nil || !ok {
			return err
		}
		return p.saveStudent(ctx, summary, student, opts.Mode)
	}

	var found []results.Result
	for sem := 1; sem <= c.Semesters; sem++ {
		res, ok, err := p.fetch(ctx, summary, c.RegNo, sem)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if opts.Students {
			found = append(found, res)
			continue
		}

		p.tel.ReportDebug("[y] storing", c.RegNo, sem)
		err = p.saver.SaveGrades(ctx, res, opts.Mode)
		if err != nil {
			p.tel.ReportBroken(report_pipeline_store, c.RegNo, sem, err)
			return err
		}
		summary.GradesSaved++
		resultsStored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "grades")))
	}

	if len(found) > 0 {
		p.tel.ReportDebug("[y] storing", c.RegNo, len(found))
		err := p.saver.Save(ctx, found, opts.Mode)
		if err != nil {
			p.tel.ReportBroken(report_pipeline_store, c.RegNo, err)
			return err
		}
		summary.GradesSaved += len(found)
		summary.StudentsSaved++
		resultsStored.Add(ctx, int64(len(found)), metric.WithAttributes(attribute.String("kind", "grades")))
		resultsStored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "student")))
	}

	p.tel.ReportDebug("stored result", c.RegNo)
	return nil
}

// Run scrapes every candidate in order. Pages without a usable memo are
// skipped and reported, storage errors (including duplicates when not in
// replace mode) stop the run.
func (p Pipeline) Run(ctx context.Context, candidates []regno.Candidate, opts Options) (Summary, error) {
	if !opts.Students && !opts.Results {
		opts.Students = true
		opts.Results = true
	}

	ctx, span := tracer.Start(ctx, "pipeline:run")
	defer span.End()
	if opts.RunId != "" {
		span.SetAttributes(attribute.String("run_id", opts.RunId))
	}

	summary := Summary{Candidates: len(candidates)}
	for _, c := range candidates {
		err := p.runCandidate(ctx, &summary, c, opts)
		if err != nil {
			return summary, fmt.Errorf("%s: %w", c.RegNo, err)
		}
	}

	p.tel.ReportCount(report_pipeline_done, int64(summary.Pages))
	return summary, nil
}
