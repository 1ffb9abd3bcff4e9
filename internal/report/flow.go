package report

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"

	"mediguard/internal/i18n"
	"mediguard/internal/models"
	"mediguard/internal/platform/backend"
)

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Analyzer sends a report to the analysis service.
type Analyzer interface {
	Analyze(ctx context.Context, req backend.AnalyzeRequest) (*models.AnalysisResult, error)
}

// TitleStore persists a title against a produced result.
type TitleStore interface {
	UpdateReportTitle(ctx context.Context, reportID int64, title string) error
}

// PatientSource supplies the optional patient id of the signed-in user.
type PatientSource interface {
	PatientID() string
}

type Translator interface {
	T(key string) string
}

type englishTranslator struct{}

func (englishTranslator) T(key string) string { return i18n.Lookup(i18n.DefaultLanguage, key) }

type Options struct {
	StepInterval time.Duration
	SettleDelay  time.Duration
	NoticeTTL    time.Duration
	// Translator renders stage labels and user-visible messages. Labels are
	// computed once when the flow is created.
	Translator Translator
}

func (o *Options) withDefaults() {
	if o.StepInterval <= 0 {
		o.StepInterval = 1500 * time.Millisecond
	}
	if o.SettleDelay < 0 {
		o.SettleDelay = 0
	}
	if o.NoticeTTL <= 0 {
		o.NoticeTTL = 3 * time.Second
	}
	if o.Translator == nil {
		o.Translator = englishTranslator{}
	}
}

// Snapshot is a point-in-time copy of the flow for rendering.
type Snapshot struct {
	State      State
	Step       int
	Steps      []string
	Form       SubmissionForm
	Result     *models.AnalysisResult
	Ranked     models.Predictions
	SavedTitle string
	Failure    string
	Validation string
	Saving     bool
	Notice     string
	SaveError  string
}

// Flow drives one report from draft to analysis result. It performs exactly
// one analysis request per Submit while a cosmetic stage counter runs next
// to it.
type Flow struct {
	analyzer Analyzer
	titles   TitleStore
	patients PatientSource
	opts     Options
	steps    []string

	// scope is cancelled by Close.
	scope  context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State
	step        int
	form        SubmissionForm
	result      *models.AnalysisResult
	savedTitle  string
	failure     string
	validation  string
	saving      bool
	notice      string
	noticeTimer *time.Timer
	saveErr     string
	closed      bool

	notifyMu  sync.Mutex
	listeners map[int]func(Snapshot)
	nextID    int
}

func NewFlow(analyzer Analyzer, titles TitleStore, patients PatientSource, opts Options) *Flow {
	opts.withDefaults()

	steps := make([]string, len(StepKeys))
	for i, k := range StepKeys {
		steps[i] = opts.Translator.T(k)
	}

	scope, cancel := context.WithCancel(context.Background())
	return &Flow{
		analyzer:  analyzer,
		titles:    titles,
		patients:  patients,
		opts:      opts,
		steps:     steps,
		scope:     scope,
		cancel:    cancel,
		state:     StateEditing,
		form:      NewForm(),
		listeners: map[int]func(Snapshot){},
	}
}

// Subscribe registers fn to receive a snapshot after every change. fn must
// not call back into Flow mutators. The returned func unsubscribes.
func (f *Flow) Subscribe(fn func(Snapshot)) func() {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.notifyMu.Lock()
		defer f.notifyMu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *Flow) notify() {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()
	if len(f.listeners) == 0 {
		return
	}
	snap := f.Snapshot()
	for _, fn := range f.listeners {
		fn(snap)
	}
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		State:      f.state,
		Step:       f.step,
		Steps:      append([]string(nil), f.steps...),
		Form:       f.form.clone(),
		Result:     f.result.Clone(),
		SavedTitle: f.savedTitle,
		Failure:    f.failure,
		Validation: f.validation,
		Saving:     f.saving,
		Notice:     f.notice,
		SaveError:  f.saveErr,
	}
	if f.result != nil {
		snap.Ranked = f.result.Predictions.Ranked()
	}
	return snap
}

// Form returns a copy of the current draft.
func (f *Flow) Form() SubmissionForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.clone()
}

// Edit applies fn to the draft. A failed submission returns to editing on
// the first edit.
func (f *Flow) Edit(fn func(*SubmissionForm)) error {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return ErrClosed
	case f.state == StateSubmitting:
		f.mu.Unlock()
		return ErrBusy
	case f.state == StateResolved:
		f.mu.Unlock()
		return ErrResolved
	}
	fn(&f.form)
	if f.form.Vitals == nil {
		f.form.Vitals = map[string]string{}
	}
	if f.state == StateFailed {
		f.state = StateEditing
		f.failure = ""
	}
	if f.form.Validate() == nil {
		f.validation = ""
	}
	f.mu.Unlock()
	f.notify()
	return nil
}

func (f *Flow) SetVital(name, value string) error {
	return f.Edit(func(form *SubmissionForm) {
		form.Vitals[name] = value
	})
}

func (f *Flow) SetMode(mode Mode) error {
	return f.Edit(func(form *SubmissionForm) {
		form.Mode = mode
	})
}

func (f *Flow) AttachFile(name string, data []byte) error {
	return f.Edit(func(form *SubmissionForm) {
		form.File = &Attachment{Name: name, Data: data}
	})
}

// Submit sends the draft for analysis and blocks until the flow has
// resolved or failed. The draft is kept on failure so it can be submitted
// again as is.
func (f *Flow) Submit(ctx context.Context) (*models.AnalysisResult, error) {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return nil, ErrClosed
	case f.state == StateSubmitting:
		f.mu.Unlock()
		return nil, ErrBusy
	case f.state == StateResolved:
		f.mu.Unlock()
		return nil, ErrResolved
	}
	if err := f.form.Validate(); err != nil {
		f.validation = f.opts.Translator.T("report.fileRequired")
		f.mu.Unlock()
		f.notify()
		return nil, err
	}

	var patientID string
	if f.patients != nil {
		patientID = f.patients.PatientID()
	}
	req := f.form.request(patientID)
	mode := f.form.Mode
	f.state = StateSubmitting
	f.step = 0
	f.failure = ""
	f.validation = ""
	f.mu.Unlock()
	f.notify()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(f.scope, cancel)
	defer stopAfter()

	logCtx := log.WithFields(log.Fields{
		"mode":        string(mode),
		"has_patient": patientID != "",
	})
	logCtx.Info("submitting report for analysis")

	stopStepper := f.startStepper(ctx)
	defer stopStepper()

	res, err := f.analyzer.Analyze(ctx, req)
	stopStepper()
	if err != nil {
		logCtx.WithError(err).Warn("analysis failed")
		return nil, f.fail(fmt.Errorf("analyze report: %w", err))
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrClosed
	}
	f.step = LastStep
	f.mu.Unlock()
	f.notify()

	// Hold the final stage long enough to be seen.
	settle := time.NewTimer(f.opts.SettleDelay)
	defer settle.Stop()
	select {
	case <-settle.C:
	case <-ctx.Done():
		return nil, f.fail(fmt.Errorf("analyze report: %w", ctx.Err()))
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrClosed
	}
	f.state = StateResolved
	f.result = res
	f.savedTitle = ""
	f.mu.Unlock()
	f.notify()

	logCtx.WithFields(log.Fields{
		"report_id":    res.ReportID,
		"health_score": res.HealthScore,
		"triage":       string(res.TriageCategory),
	}).Info("analysis resolved")
	return res.Clone(), nil
}

func (f *Flow) fail(err error) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	f.state = StateFailed
	f.failure = f.opts.Translator.T("report.analysisFailed")
	f.mu.Unlock()
	f.notify()
	return err
}

// Save stores title against the shown result. Only one save runs at a
// time; a second call while one is outstanding sends nothing.
func (f *Flow) Save(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)

	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return ErrClosed
	case f.state != StateResolved || f.result == nil:
		f.mu.Unlock()
		return ErrNotResolved
	case f.saving:
		f.mu.Unlock()
		return ErrSaveInFlight
	case title == "":
		f.validation = f.opts.Translator.T("report.titleRequired")
		f.mu.Unlock()
		f.notify()
		return ErrEmptyTitle
	case f.result.ReportID == 0:
		f.validation = f.opts.Translator.T("report.noReportID")
		f.mu.Unlock()
		f.notify()
		return ErrNoReportID
	}
	res := f.result
	f.saving = true
	f.saveErr = ""
	f.validation = ""
	f.mu.Unlock()
	f.notify()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(f.scope, cancel)
	defer stopAfter()

	err := f.titles.UpdateReportTitle(ctx, res.ReportID, title)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.result != res {
		// Reset while the request was out; the result it belonged to is gone.
		f.mu.Unlock()
		return err
	}
	f.saving = false
	if err != nil {
		f.saveErr = f.opts.Translator.T("report.saveFailed")
		f.mu.Unlock()
		f.notify()
		log.WithError(err).WithField("report_id", res.ReportID).Warn("save report title failed")
		return fmt.Errorf("save report %d: %w", res.ReportID, err)
	}
	f.savedTitle = title
	f.showNoticeLocked(f.opts.Translator.T("report.saved"))
	f.mu.Unlock()
	f.notify()
	log.WithField("report_id", res.ReportID).Info("report title saved")
	return nil
}

// showNoticeLocked sets a transient message that clears itself after
// NoticeTTL. f.mu must be held.
func (f *Flow) showNoticeLocked(msg string) {
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
	}
	f.notice = msg
	var t *time.Timer
	t = time.AfterFunc(f.opts.NoticeTTL, func() {
		f.mu.Lock()
		if f.closed || f.noticeTimer != t {
			f.mu.Unlock()
			return
		}
		f.notice = ""
		f.noticeTimer = nil
		f.mu.Unlock()
		f.notify()
	})
	f.noticeTimer = t
}

// Reset discards the result and the draft and starts a new analysis.
func (f *Flow) Reset() error {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return ErrClosed
	case f.state == StateSubmitting:
		f.mu.Unlock()
		return ErrBusy
	}
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	f.state = StateEditing
	f.step = 0
	f.form = NewForm()
	f.result = nil
	f.savedTitle = ""
	f.failure = ""
	f.validation = ""
	f.saving = false
	f.notice = ""
	f.saveErr = ""
	f.mu.Unlock()
	f.notify()
	return nil
}

// Close detaches the flow. Outstanding requests are cancelled and pending
// timers stop without touching state.
func (f *Flow) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	if f.noticeTimer != nil {
		f.noticeTimer.Stop()
		f.noticeTimer = nil
	}
	f.mu.Unlock()
	f.cancel()
}
