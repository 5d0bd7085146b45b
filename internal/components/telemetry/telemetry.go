package telemetry

import (
	"fmt"
)

// API is the reporting surface handed to every component, tests swap it for
// a recording implementation.
type API interface {
	// ReportBroken reports a failure that needs fixing. `id` names the
	// component (ex. `doeresults.fetch-page`), lowercase with dashes for
	// methods, details go in params.
	ReportBroken(id string, params ...any)
	// ReportWarning reports something unusual that is not necessarily a bug,
	// like a registration number without a memo.
	ReportWarning(id string, params ...any)
	// ReportDebug is dropped unless debug logging is on.
	ReportDebug(msg string, params ...any)
	// ReportCount reports a point-in-time count, values are not summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with "<namespace>: ".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
