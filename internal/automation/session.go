package automation

import (
	"log/slog"
	"sync"
)

// Session owns the process's single Word application handle. The handle is
// acquired lazily, revalidated by probing before every reuse, and discarded
// on probe failure so the next acquire starts fresh. At most one live handle
// exists at a time.
type Session struct {
	mu      sync.Mutex
	factory Factory
	app     Application
	logger  *slog.Logger
}

// NewSession creates a session around the given factory.
func NewSession(factory Factory, logger *slog.Logger) *Session {
	return &Session{factory: factory, logger: logger}
}

// Acquire returns a live application handle, creating one if the cached
// handle is missing or fails its liveness probe. A creation failure leaves
// the session with no handle so the next call retries from scratch.
func (s *Session) Acquire() (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.app != nil {
		if err := probe(s.app); err != nil {
			s.logger.Warn("Cached Word handle failed liveness probe, discarding", "error", err)
			s.app = nil
		}
	}

	if s.app == nil {
		app, err := s.factory.Dispatch()
		if err != nil {
			return nil, &InitializationError{Err: err}
		}
		// Keep the window visible so a human can observe what the
		// tools are doing.
		if err := app.SetVisible(true); err != nil {
			return nil, &InitializationError{Err: err}
		}
		s.app = app
		s.logger.Info("Acquired Word application handle")
	}

	return s.app, nil
}

// ActiveDocument returns the currently focused document, acquiring the
// application handle first. Returns ErrNoActiveDocument when no document is
// open.
func (s *Session) ActiveDocument() (Document, error) {
	app, err := s.Acquire()
	if err != nil {
		return nil, err
	}
	doc, err := app.ActiveDocument()
	if err != nil || doc == nil {
		return nil, ErrNoActiveDocument
	}
	return doc, nil
}

// Selection returns the active document's selection. The selection is
// transient: callers must not hold it past the current operation.
func (s *Session) Selection() (Selection, error) {
	doc, err := s.ActiveDocument()
	if err != nil {
		return nil, err
	}
	return doc.Selection()
}

// Quit asks Word to terminate without saving changes. Errors are logged and
// swallowed since the process may already be gone; the handle is always
// cleared.
func (s *Session) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.app == nil {
		return
	}
	if err := s.app.Quit(WdDoNotSaveChanges); err != nil {
		s.logger.Warn("Word quit reported an error", "error", err)
	}
	s.app = nil
}

// probe checks handle liveness by reading two properties. Any error means
// the handle is stale (Word crashed or was closed by the user).
func probe(app Application) error {
	if _, err := app.Visible(); err != nil {
		return err
	}
	docs, err := app.Documents()
	if err != nil {
		return err
	}
	if _, err := docs.Count(); err != nil {
		return err
	}
	return nil
}
