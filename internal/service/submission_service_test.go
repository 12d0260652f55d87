package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/contract"
	"lumera-client/internal/repository/memory"
	"lumera-client/pkg/api"

	"github.com/stretchr/testify/assert"
)

type fakeUploader struct {
	calls       int
	response    *dto.AnalysisResponse
	err         error
	beforeReply func()
}

func (f *fakeUploader) UploadAnalysis(ctx context.Context, filename, contentType string, file io.Reader) (*dto.AnalysisResponse, error) {
	f.calls++
	if f.beforeReply != nil {
		f.beforeReply()
	}
	return f.response, f.err
}

type fakeNavigator struct {
	targets []string
}

func (f *fakeNavigator) Navigate(to string) {
	f.targets = append(f.targets, to)
}

type fixture struct {
	manager  *SubmissionManager
	uploader *fakeUploader
	nav      *fakeNavigator
	sessions *sessionsWrapper
	timers   []scheduledTimer
}

type scheduledTimer struct {
	delay time.Duration
	fn    func()
}

type sessionsWrapper struct {
	repo    contract.SessionRepository
	cleared int
}

func (s *sessionsWrapper) Get() entity.Session               { return s.repo.Get() }
func (s *sessionsWrapper) Set(t string, u entity.User) error { return s.repo.Set(t, u) }
func (s *sessionsWrapper) Clear() error                      { s.cleared++; return s.repo.Clear() }

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()
	sessions := &sessionsWrapper{repo: memory.NewSessionRepository()}
	if loggedIn {
		_ = sessions.Set("token-123", entity.User{Id: 7, Email: "a@b.c", Username: "a"})
	}

	uploader := &fakeUploader{}
	nav := &fakeNavigator{}
	f := &fixture{uploader: uploader, nav: nav, sessions: sessions}

	f.manager = NewSubmissionManager(uploader, sessions, nav, logger.NewNopLogger())
	// Capture timers instead of racing real delays
	f.manager.schedule = func(d time.Duration, fn func()) {
		f.timers = append(f.timers, scheduledTimer{delay: d, fn: fn})
	}
	return f
}

func TestSelectRejectsNonImageType(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()

	err := w.Select("notes.pdf", "application/pdf", 1024)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindInvalidFileType, apiErr.Kind)
	assert.Equal(t, StateIdle, w.State())
	assert.Nil(t, w.File())
}

func TestSelectRejectsOversizedFile(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()

	err := w.Select("huge.jpg", "image/jpeg", MaxUploadBytes+1)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindFileTooLarge, apiErr.Kind)
	assert.Equal(t, StateIdle, w.State())
}

func TestSelectAcceptsImageAtCeiling(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()

	err := w.Select("face.png", "image/png", MaxUploadBytes)

	assert.NoError(t, err)
	assert.Equal(t, StateFileSelected, w.State())
	assert.Equal(t, "/preview/face.png", w.File().Preview)
}

func TestSubmitWithoutFile(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()

	err := w.Submit(context.Background(), nil)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindNoFileSelected, apiErr.Kind)
	assert.Equal(t, 0, f.uploader.calls, "no network call expected")
}

func TestSubmitWithoutTokenNeverHitsNetwork(t *testing.T) {
	f := newFixture(t, false)
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	err := w.Submit(context.Background(), nil)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindNotAuthenticated, apiErr.Kind)
	assert.Equal(t, 0, f.uploader.calls, "no network call expected")
}

func TestSubmitSuccessNavigatesToRecord(t *testing.T) {
	f := newFixture(t, true)
	f.uploader.response = &dto.AnalysisResponse{Analysis: entity.Analysis{Id: 42}}
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	err := w.Submit(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, StateSucceeded, w.State())
	assert.Equal(t, 42, w.RecordId())
	assert.Equal(t, []string{"/results/42"}, f.nav.targets)
}

func TestStaleInstanceDiscardsNavigation(t *testing.T) {
	f := newFixture(t, true)
	f.uploader.response = &dto.AnalysisResponse{Analysis: entity.Analysis{Id: 42}}
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	// The user opens the upload view again while the request is in flight
	f.uploader.beforeReply = func() { f.manager.NewInstance() }

	err := w.Submit(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, f.nav.targets, "stale response must not drive navigation")
	assert.NotEqual(t, StateSucceeded, w.State())
}

func TestSessionExpiredDelayedRedirect(t *testing.T) {
	f := newFixture(t, true)
	f.uploader.err = api.Classify(401, nil, true)
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	err := w.Submit(context.Background(), nil)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindSessionExpired, apiErr.Kind)
	assert.Equal(t, StateFailed, w.State())
	assert.Equal(t, "Session expired. Please log in again.", w.Failure().Message)

	// Before the delay elapses: session intact, no redirect
	assert.Empty(t, f.nav.targets)
	assert.Equal(t, 0, f.sessions.cleared)
	assert.True(t, f.sessions.Get().Authenticated())

	// Fire the scheduled transition
	assert.Len(t, f.timers, 1)
	assert.Equal(t, SessionExpiredRedirectDelay, f.timers[0].delay)
	f.timers[0].fn()

	assert.Equal(t, []string{"/login"}, f.nav.targets)
	assert.Equal(t, 1, f.sessions.cleared)
	assert.False(t, f.sessions.Get().Authenticated())
}

func TestSessionExpiredRedirectSkippedForStaleInstance(t *testing.T) {
	f := newFixture(t, true)
	f.uploader.err = api.Classify(422, nil, true)
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	_ = w.Submit(context.Background(), nil)
	assert.Len(t, f.timers, 1)

	// Superseded before the timer fires: no forced redirect from a dead run
	f.manager.NewInstance()
	f.timers[0].fn()

	assert.Empty(t, f.nav.targets)
	assert.Equal(t, 0, f.sessions.cleared)
}

func TestGenericFailureIsRetryable(t *testing.T) {
	f := newFixture(t, true)
	f.uploader.err = errors.New("connection refused")
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	err := w.Submit(context.Background(), nil)

	apiErr := api.AsError(err)
	assert.Equal(t, api.KindRequestFailed, apiErr.Kind)
	assert.Equal(t, StateFailed, w.State())
	assert.Empty(t, f.timers, "only SessionExpired schedules a redirect")

	// Failed -> FileSelected is implicit: selecting again just works
	assert.NoError(t, w.Select("other.png", "image/png", 256))
	assert.Equal(t, StateFileSelected, w.State())
	assert.Nil(t, w.Failure())

	// And a retry reaches the network again
	f.uploader.err = nil
	f.uploader.response = &dto.AnalysisResponse{Analysis: entity.Analysis{Id: 9}}
	assert.NoError(t, w.Submit(context.Background(), nil))
	assert.Equal(t, StateSucceeded, w.State())
	assert.Equal(t, 2, f.uploader.calls)
}

func TestNoConcurrentSubmissions(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	// Re-enter Submit while the first request is still outstanding
	var nested error
	f.uploader.beforeReply = func() {
		nested = w.Submit(context.Background(), nil)
	}
	f.uploader.response = &dto.AnalysisResponse{Analysis: entity.Analysis{Id: 1}}

	_ = w.Submit(context.Background(), nil)

	assert.Error(t, nested)
	assert.Equal(t, 1, f.uploader.calls)
}

func TestSelectRejectedWhileUploadOutstanding(t *testing.T) {
	f := newFixture(t, true)
	w := f.manager.NewInstance()
	_ = w.Select("face.jpg", "image/jpeg", 512)

	// A second form post must not swap the file mid-flight
	var nested error
	f.uploader.beforeReply = func() {
		nested = w.Select("other.png", "image/png", 256)
	}
	f.uploader.response = &dto.AnalysisResponse{Analysis: entity.Analysis{Id: 1}}

	err := w.Submit(context.Background(), nil)

	assert.NoError(t, err)
	assert.Error(t, nested)
	assert.Equal(t, "face.jpg", w.File().Name)
	assert.Equal(t, StateSucceeded, w.State())
}
