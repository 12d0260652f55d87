package controller

import "sync"

// RedirectRecorder adapts the workflow's Navigator port to the web layer:
// the machine records where the browser should go, the handler that owns the
// current request consumes it and issues the actual redirect. This client
// serves a single local user, so one pending target is enough.
type RedirectRecorder struct {
	mu     sync.Mutex
	target string
	set    bool
}

func NewRedirectRecorder() *RedirectRecorder {
	return &RedirectRecorder{}
}

func (r *RedirectRecorder) Navigate(to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = to
	r.set = true
}

// Consume returns and clears the pending target.
func (r *RedirectRecorder) Consume() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.set {
		return "", false
	}
	r.set = false
	return r.target, true
}
