package testutil

import (
	"fmt"
	"sync"
)

// Report is a single call made to a Telemetry.
type Report struct {
	Kind   string
	Id     string
	Params []any
}

// Telemetry records every report it receives so tests can assert on them.
type Telemetry struct {
	lock    sync.Mutex
	reports []Report
}

func (t *Telemetry) add(kind, id string, params []any) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.reports = append(t.reports, Report{Kind: kind, Id: id, Params: params})
}

func (t *Telemetry) ReportBroken(id string, params ...any) {
	t.add("broken", id, params)
}

func (t *Telemetry) ReportWarning(id string, params ...any) {
	t.add("warning", id, params)
}

func (t *Telemetry) ReportDebug(msg string, params ...any) {
	t.add("debug", msg, params)
}

func (t *Telemetry) ReportCount(id string, count int64) {
	t.add("count", id, []any{count})
}

// Reports returns the reports of the given kind.
func (t *Telemetry) Reports(kind string) []Report {
	t.lock.Lock()
	defer t.lock.Unlock()

	var out []Report
	for _, r := range t.reports {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func (r Report) String() string {
	return fmt.Sprintf("%s %s %v", r.Kind, r.Id, r.Params)
}
