package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"lumera-client/internal/dto"
	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/contract"
	"lumera-client/pkg/api"

	"github.com/google/uuid"
)

// MaxUploadBytes is the submission size ceiling (16 MiB), matching the
// server's MAX_CONTENT_LENGTH so oversized files are rejected locally
// instead of burning an upload.
const MaxUploadBytes = 16 * 1024 * 1024

// SessionExpiredRedirectDelay is how long an expired-session message stays on
// screen before the forced redirect to login.
const SessionExpiredRedirectDelay = 2 * time.Second

// SubmissionState is the explicit machine for one image submission.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateFileSelected
	StateValidating
	StateUploading
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateFileSelected:
		return "FileSelected"
	case StateValidating:
		return "Validating"
	case StateUploading:
		return "Uploading"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Idle"
	}
}

// Navigator is how the workflow drives the browser. The web layer redirects;
// tests record.
type Navigator interface {
	Navigate(to string)
}

// AnalysisUploader is the slice of the API client the workflow needs.
type AnalysisUploader interface {
	UploadAnalysis(ctx context.Context, filename, contentType string, file io.Reader) (*dto.AnalysisResponse, error)
}

// SelectedFile is the accepted file plus its local preview reference.
type SelectedFile struct {
	Name        string
	ContentType string
	Size        int64
	Preview     string
}

// SubmissionWorkflow is one run of the submission machine, scoped to a single
// file-to-result attempt. Instances are created by the manager; an instance
// superseded by a newer one discards every side effect of its late responses,
// including navigation.
type SubmissionWorkflow struct {
	id      uuid.UUID
	manager *SubmissionManager

	mu       sync.Mutex
	state    SubmissionState
	file     *SelectedFile
	recordId int
	failure  *api.Error
	inFlight bool
}

// SubmissionManager creates workflow instances and tracks which one is
// current. There is at most one current instance; opening the upload view
// again supersedes the previous run.
type SubmissionManager struct {
	client   AnalysisUploader
	sessions contract.SessionRepository
	nav      Navigator
	logger   logger.ILogger
	schedule func(d time.Duration, fn func())

	mu      sync.Mutex
	current *SubmissionWorkflow
}

func NewSubmissionManager(client AnalysisUploader, sessions contract.SessionRepository, nav Navigator, log logger.ILogger) *SubmissionManager {
	return &SubmissionManager{
		client:   client,
		sessions: sessions,
		nav:      nav,
		logger:   log,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// NewInstance starts a fresh workflow and makes it the current one.
func (m *SubmissionManager) NewInstance() *SubmissionWorkflow {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := &SubmissionWorkflow{
		id:      uuid.New(),
		manager: m,
		state:   StateIdle,
	}
	m.current = w
	return w
}

// Current returns the current instance, creating one if the upload view was
// entered without passing through NewInstance.
func (m *SubmissionManager) Current() *SubmissionWorkflow {
	m.mu.Lock()
	if m.current != nil {
		w := m.current
		m.mu.Unlock()
		return w
	}
	m.mu.Unlock()
	return m.NewInstance()
}

func (m *SubmissionManager) isCurrent(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && m.current.id == id
}

func (w *SubmissionWorkflow) State() SubmissionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *SubmissionWorkflow) Failure() *api.Error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

func (w *SubmissionWorkflow) File() *SelectedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file
}

func (w *SubmissionWorkflow) RecordId() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recordId
}

// Select handles the file-choice transition. A rejected file leaves the
// machine exactly where it was; an accepted one moves to FileSelected (also
// out of Failed, the implicit retry path) and derives a preview reference.
func (w *SubmissionWorkflow) Select(name, contentType string, size int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight {
		return api.NewError(api.KindRequestFailed, "An analysis is already in progress")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return api.NewError(api.KindInvalidFileType, "Please select an image file")
	}
	if size > MaxUploadBytes {
		return api.NewError(api.KindFileTooLarge, "File size must be less than 16MB")
	}

	w.file = &SelectedFile{
		Name:        name,
		ContentType: contentType,
		Size:        size,
		Preview:     "/preview/" + name,
	}
	w.state = StateFileSelected
	w.failure = nil
	return nil
}

// Submit drives FileSelected through Uploading to Succeeded or Failed. The
// preconditions (file selected, token stored) are checked before any network
// activity; at most one request per instance is ever in flight.
func (w *SubmissionWorkflow) Submit(ctx context.Context, file io.Reader) error {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return api.NewError(api.KindRequestFailed, "An analysis is already in progress")
	}
	if w.file == nil {
		w.mu.Unlock()
		return api.NewError(api.KindNoFileSelected, "Please select an image")
	}
	if !w.manager.sessions.Get().Authenticated() {
		w.mu.Unlock()
		return api.NewError(api.KindNotAuthenticated, "You are not logged in. Please login again.")
	}

	// Retrying out of Failed needs nothing reset beyond the error itself
	w.failure = nil
	w.state = StateValidating
	selected := *w.file
	w.state = StateUploading
	w.inFlight = true
	w.mu.Unlock()

	res, err := w.manager.client.UploadAnalysis(ctx, selected.Name, selected.ContentType, file)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if !w.manager.isCurrent(w.id) {
		// The user navigated away; this response no longer matters and
		// must not drive navigation.
		w.manager.logger.Debug("submission", "discarding response for stale instance", map[string]interface{}{
			"instance": w.id.String(),
		})
		return nil
	}

	if err != nil {
		classified := api.AsError(err)
		w.state = StateFailed
		w.failure = classified
		w.manager.logger.Warn("submission", "upload failed", map[string]interface{}{
			"instance": w.id.String(),
			"kind":     classified.Kind.String(),
			"error":    classified.Message,
		})
		if classified.Kind == api.KindSessionExpired {
			w.scheduleExpiryRedirect()
		}
		return classified
	}

	w.state = StateSucceeded
	w.recordId = res.Analysis.Id
	w.manager.logger.Info("submission", "upload succeeded", map[string]interface{}{
		"instance":    w.id.String(),
		"analysis_id": res.Analysis.Id,
	})
	w.manager.nav.Navigate(fmt.Sprintf("/results/%d", res.Analysis.Id))
	return nil
}

// scheduleExpiryRedirect surfaces the message first, then after the fixed
// delay clears the stale session and forces reauthentication. Caller holds
// the lock.
func (w *SubmissionWorkflow) scheduleExpiryRedirect() {
	w.manager.schedule(SessionExpiredRedirectDelay, func() {
		if !w.manager.isCurrent(w.id) {
			return
		}
		if err := w.manager.sessions.Clear(); err != nil {
			w.manager.logger.Error("submission", "failed to clear expired session", map[string]interface{}{
				"error": err.Error(),
			})
		}
		w.manager.nav.Navigate("/login")
	})
}
