package automation_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/automation/automationtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAcquireCreatesHandleLazily(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	if len(factory.Apps) != 0 {
		t.Fatal("session should not dispatch before the first Acquire")
	}

	app, err := session.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if app == nil {
		t.Fatal("Acquire returned nil application")
	}
	if len(factory.Apps) != 1 {
		t.Fatalf("expected 1 dispatched app, got %d", len(factory.Apps))
	}
	if !factory.App().VisibleFlag {
		t.Error("Acquire should make the application visible")
	}
}

func TestAcquireReusesHealthyHandle(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	first, err := session.Acquire()
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	second, err := session.Acquire()
	if err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}

	if first != second {
		t.Error("healthy handle should be reused, not recreated")
	}
	if len(factory.Apps) != 1 {
		t.Errorf("expected 1 dispatched app, got %d", len(factory.Apps))
	}
}

func TestAcquireReplacesStaleHandle(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	first, err := session.Acquire()
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}

	// Simulate Word being closed by the user: the liveness probe fails.
	factory.Apps[0].ProbeErr = errors.New("RPC server unavailable")

	second, err := session.Acquire()
	if err != nil {
		t.Fatalf("Acquire after stale probe failed: %v", err)
	}
	if second == first {
		t.Error("stale handle must not be reused")
	}
	if len(factory.Apps) != 2 {
		t.Fatalf("expected a fresh dispatch after probe failure, got %d apps", len(factory.Apps))
	}
	if second != factory.Apps[1] {
		t.Error("Acquire should return the freshly dispatched handle")
	}
}

func TestAcquireFailureLeavesNoHandle(t *testing.T) {
	factory := automationtest.NewFactory()
	factory.DispatchErr = errors.New("Word is not installed")
	session := automation.NewSession(factory, testLogger())

	_, err := session.Acquire()
	if err == nil {
		t.Fatal("expected Acquire to fail")
	}
	if !automation.IsInitialization(err) {
		t.Errorf("expected InitializationError, got %T: %v", err, err)
	}

	// The next call retries from scratch and succeeds once the factory
	// recovers.
	factory.DispatchErr = nil
	if _, err := session.Acquire(); err != nil {
		t.Fatalf("Acquire after recovery failed: %v", err)
	}
	if len(factory.Apps) != 1 {
		t.Errorf("expected exactly 1 live app, got %d", len(factory.Apps))
	}
}

func TestActiveDocument(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	_, err := session.ActiveDocument()
	if !automation.IsNoActiveDocument(err) {
		t.Fatalf("expected ErrNoActiveDocument with no document open, got %v", err)
	}

	docs := factory.App().Docs()
	if _, err := docs.Add(); err != nil {
		t.Fatalf("fake Add failed: %v", err)
	}

	doc, err := session.ActiveDocument()
	if err != nil {
		t.Fatalf("ActiveDocument failed: %v", err)
	}
	name, _ := doc.Name()
	if name != "Document1" {
		t.Errorf("active document name = %q, want Document1", name)
	}
}

func TestQuitClearsHandle(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	if _, err := session.Acquire(); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}

	session.Quit()

	app := factory.Apps[0]
	if app.QuitCalls != 1 {
		t.Errorf("QuitCalls = %d, want 1", app.QuitCalls)
	}
	if app.QuitSaveOption != automation.WdDoNotSaveChanges {
		t.Errorf("quit save option = %d, want WdDoNotSaveChanges", app.QuitSaveOption)
	}

	// After quit the session holds nothing; the next Acquire dispatches a
	// fresh handle.
	if _, err := session.Acquire(); err != nil {
		t.Fatalf("Acquire after Quit failed: %v", err)
	}
	if len(factory.Apps) != 2 {
		t.Errorf("expected a fresh dispatch after Quit, got %d apps", len(factory.Apps))
	}
}

func TestQuitWithoutHandleIsNoOp(t *testing.T) {
	factory := automationtest.NewFactory()
	session := automation.NewSession(factory, testLogger())

	session.Quit()

	if len(factory.Apps) != 0 {
		t.Error("Quit must not dispatch an application")
	}
}
