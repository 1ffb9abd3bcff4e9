package report

import "errors"

var (
	// Validation errors. Nothing is sent when one of these is returned.
	ErrFileRequired = errors.New("report file required in upload mode")
	ErrEmptyTitle   = errors.New("report title is empty")
	ErrNoReportID   = errors.New("analysis result has no report id")

	// ErrBusy is returned while an analysis request is outstanding.
	ErrBusy = errors.New("analysis in progress")
	// ErrResolved is returned for draft edits or submissions while a result
	// is shown. Reset starts a new analysis.
	ErrResolved = errors.New("analysis already resolved")
	// ErrNotResolved is returned by Save when there is no result.
	ErrNotResolved = errors.New("no analysis result to save")
	// ErrSaveInFlight is returned when Save is triggered again before the
	// previous save finished.
	ErrSaveInFlight = errors.New("save already in progress")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("report flow closed")
)
