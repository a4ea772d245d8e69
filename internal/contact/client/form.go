package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tsenadheera/portfolio/internal/contact/domain"
	"github.com/tsenadheera/portfolio/internal/schedule"
)

// MsgNetworkError is shown when the request never produced a response.
const MsgNetworkError = "Network error. Please check your connection and try again."

// ErrBusy is returned by Submit while the submit control is still loading.
var ErrBusy = errors.New("submission in progress")

// Sender is satisfied by *Client.
type Sender interface {
	Submit(ctx context.Context, sub domain.Submission) (*Response, error)
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient banner shown after a submission.
type Notice struct {
	Kind NoticeKind
	Text string
}

type FormConfig struct {
	// LoadingTimeout is how long the submit control stays loading after the
	// exchange completes.
	LoadingTimeout time.Duration
	// NoticeTTL is how long a notice stays visible.
	NoticeTTL time.Duration
}

func DefaultFormConfig() FormConfig {
	return FormConfig{
		LoadingTimeout: 2 * time.Second,
		NoticeTTL:      5 * time.Second,
	}
}

// Form holds field values, inline errors, the loading flag and the current
// notice.
type Form struct {
	mu     sync.Mutex
	sched  schedule.Scheduler
	cfg    FormConfig
	sender Sender

	fields  domain.Submission
	errs    map[string]string
	loading bool
	notice  *Notice

	loadingTask schedule.Task
	noticeTask  schedule.Task
	noticeGen   uint64
}

func NewForm(sched schedule.Scheduler, cfg FormConfig, sender Sender) *Form {
	return &Form{
		sched:  sched,
		cfg:    cfg,
		sender: sender,
		errs:   map[string]string{},
	}
}

// Set updates one field. Unknown field names are ignored.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.FieldName:
		f.fields.Name = value
	case domain.FieldEmail:
		f.fields.Email = value
	case domain.FieldSubject:
		f.fields.Subject = value
	case domain.FieldMessage:
		f.fields.Message = value
	}
}

func (f *Form) Fields() domain.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Errors returns a copy of the inline field errors.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Notice returns the visible notice, if any.
func (f *Form) Notice() (Notice, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notice == nil {
		return Notice{}, false
	}
	return *f.notice, true
}

// DismissNotice hides the notice early (the close button).
func (f *Form) DismissNotice() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearNoticeLocked()
}

// Submit validates locally and, when the fields pass, sends one request.
// It reports whether a request was sent. Inline errors leave the form
// editable and send nothing.
func (f *Form) Submit(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return false, ErrBusy
	}

	f.errs = map[string]string{}
	if errs := f.fields.FieldErrors(); len(errs) > 0 {
		f.errs = errs
		f.mu.Unlock()
		return false, nil
	}

	sub := f.fields
	f.loading = true
	schedule.Stop(f.loadingTask)
	f.loadingTask = nil
	f.mu.Unlock()

	resp, err := f.sender.Submit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case err != nil:
		f.showNoticeLocked(NoticeError, MsgNetworkError)
	case resp.Success:
		f.fields = domain.Submission{}
		f.showNoticeLocked(NoticeSuccess, resp.Message)
	default:
		f.showNoticeLocked(NoticeError, resp.Message)
	}

	f.loadingTask = f.sched.AfterFunc(f.cfg.LoadingTimeout, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loading = false
		f.loadingTask = nil
	})
	return true, err
}

// Close cancels pending timers.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	schedule.Stop(f.loadingTask)
	f.loadingTask = nil
	f.loading = false
	f.clearNoticeLocked()
}

// showNoticeLocked replaces any visible notice.
func (f *Form) showNoticeLocked(kind NoticeKind, text string) {
	f.clearNoticeLocked()
	f.notice = &Notice{Kind: kind, Text: text}

	gen := f.noticeGen
	f.noticeTask = f.sched.AfterFunc(f.cfg.NoticeTTL, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.noticeGen {
			return
		}
		f.notice = nil
		f.noticeTask = nil
	})
}

func (f *Form) clearNoticeLocked() {
	schedule.Stop(f.noticeTask)
	f.noticeTask = nil
	f.notice = nil
	f.noticeGen++
}
