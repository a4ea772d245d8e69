package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsenadheera/portfolio/internal/contact/domain"
	"github.com/tsenadheera/portfolio/internal/schedule"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type stubSender struct {
	calls []domain.Submission
	resp  *Response
	err   error
}

func (s *stubSender) Submit(_ context.Context, sub domain.Submission) (*Response, error) {
	s.calls = append(s.calls, sub)
	return s.resp, s.err
}

func fillValid(f *Form) {
	f.Set(domain.FieldName, "Jane Doe")
	f.Set(domain.FieldEmail, "jane@example.com")
	f.Set(domain.FieldSubject, "Hello")
	f.Set(domain.FieldMessage, "This is a ten-plus character message.")
}

func newForm(sender Sender) (*Form, *schedule.Manual) {
	clock := schedule.NewManual(epoch)
	return NewForm(clock, DefaultFormConfig(), sender), clock
}

func TestForm_InlineErrorsSendNothing(t *testing.T) {
	sender := &stubSender{}
	f, _ := newForm(sender)
	f.Set(domain.FieldName, "J4ne")
	f.Set(domain.FieldEmail, "nope")

	sent, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, sender.calls)
	assert.False(t, f.Loading(), "form stays editable")

	errs := f.Errors()
	assert.Equal(t, domain.ReasonName, errs[domain.FieldName])
	assert.Equal(t, domain.ReasonEmail, errs[domain.FieldEmail])
	assert.Contains(t, errs, domain.FieldSubject)
	assert.Contains(t, errs, domain.FieldMessage)

	fillValid(f)
	f.sender = &stubSender{resp: &Response{Status: 200, Result: domain.Result{Success: true}}}
	sent, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Empty(t, f.Errors(), "prior inline errors are cleared")
}

func TestForm_SuccessResetsFields(t *testing.T) {
	sender := &stubSender{resp: &Response{Status: 200, Result: domain.Result{Success: true, Message: domain.MsgSuccess}}}
	f, clock := newForm(sender)
	fillValid(f)

	sent, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, sent)
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "Jane Doe", sender.calls[0].Name)

	assert.Equal(t, domain.Submission{}, f.Fields())
	n, ok := f.Notice()
	require.True(t, ok)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: domain.MsgSuccess}, n)

	assert.True(t, f.Loading())
	clock.Advance(2 * time.Second)
	assert.False(t, f.Loading())

	clock.Advance(3 * time.Second)
	_, ok = f.Notice()
	assert.False(t, ok, "notice auto-dismisses")
}

func TestForm_RejectionKeepsFields(t *testing.T) {
	sender := &stubSender{resp: &Response{Status: 429, Result: domain.Result{Message: msgRateLimited}}}
	f, _ := newForm(sender)
	fillValid(f)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", f.Fields().Name)
	n, ok := f.Notice()
	require.True(t, ok)
	assert.Equal(t, NoticeError, n.Kind)
	assert.Equal(t, msgRateLimited, n.Text)
}

func TestForm_NetworkErrorTakesErrorPath(t *testing.T) {
	sender := &stubSender{err: errors.New("connection refused")}
	f, clock := newForm(sender)
	fillValid(f)

	sent, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, sent)

	n, ok := f.Notice()
	require.True(t, ok)
	assert.Equal(t, Notice{Kind: NoticeError, Text: MsgNetworkError}, n)

	clock.Advance(2 * time.Second)
	assert.False(t, f.Loading(), "loading reverts regardless of outcome")
}

func TestForm_BusyWhileLoading(t *testing.T) {
	sender := &stubSender{resp: &Response{Status: 400, Result: domain.Result{Message: "x"}}}
	f, clock := newForm(sender)
	fillValid(f)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	_, err = f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	assert.Len(t, sender.calls, 1)

	clock.Advance(2 * time.Second)
	_, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.Len(t, sender.calls, 2)
}

func TestForm_NewNoticeReplacesOld(t *testing.T) {
	sender := &stubSender{resp: &Response{Status: 400, Result: domain.Result{Message: "first"}}}
	f, clock := newForm(sender)
	fillValid(f)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	clock.Advance(4 * time.Second)

	sender.resp = &Response{Status: 400, Result: domain.Result{Message: "second"}}
	_, err = f.Submit(context.Background())
	require.NoError(t, err)

	// The first notice's timer would fire here; it must not hide the second.
	clock.Advance(1500 * time.Millisecond)
	n, ok := f.Notice()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	clock.Advance(4 * time.Second)
	_, ok = f.Notice()
	assert.False(t, ok)
}

func TestForm_DismissAndClose(t *testing.T) {
	sender := &stubSender{resp: &Response{Status: 200, Result: domain.Result{Success: true, Message: "ok"}}}
	f, clock := newForm(sender)
	fillValid(f)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	f.DismissNotice()
	_, ok := f.Notice()
	assert.False(t, ok)

	f.Close()
	assert.False(t, f.Loading())
	assert.Zero(t, clock.Pending())
}
