package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestJournal_SessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	j := s.Journal()

	id, err := j.BeginSession(1920, 1080)
	if err != nil {
		t.Fatalf("BeginSession() error = %v", err)
	}
	if id == "" {
		t.Fatal("BeginSession() returned an empty ID")
	}

	sess, err := j.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if sess.ScreenWidth != 1920 || sess.ScreenHeight != 1080 {
		t.Errorf("screen dims = %dx%d, want 1920x1080", sess.ScreenWidth, sess.ScreenHeight)
	}
	if sess.EndedAt.Valid {
		t.Error("session should not be ended yet")
	}

	if err := j.EndSession(id); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}

	sess, err = j.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession() after end error = %v", err)
	}
	if !sess.EndedAt.Valid {
		t.Error("session end time not recorded")
	}
}

func TestJournal_RecordAndList(t *testing.T) {
	s := newTestStore(t)
	j := s.Journal()

	id, err := j.BeginSession(1920, 1080)
	if err != nil {
		t.Fatalf("BeginSession() error = %v", err)
	}

	records := []struct {
		kind      string
		x, y, amt int
	}{
		{"move_cursor", 960, 570, 0},
		{"scroll_down", 0, 0, -50},
		{"left_click", 0, 0, 0},
	}
	for _, r := range records {
		if err := j.Record(id, r.kind, r.x, r.y, r.amt); err != nil {
			t.Fatalf("Record(%s) error = %v", r.kind, err)
		}
	}

	events, err := j.Events(id)
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if len(events) != len(records) {
		t.Fatalf("got %d events, want %d", len(events), len(records))
	}

	for i, e := range events {
		want := records[i]
		if e.Kind != want.kind || e.X != want.x || e.Y != want.y || e.Amount != want.amt {
			t.Errorf("event %d = %+v, want %+v", i, e, want)
		}
		if e.SessionID != id {
			t.Errorf("event %d session = %s, want %s", i, e.SessionID, id)
		}
	}
}

func TestJournal_NotFound(t *testing.T) {
	s := newTestStore(t)
	j := s.Journal()

	if _, err := j.GetSession("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSession(missing) error = %v, want ErrNotFound", err)
	}
	if err := j.EndSession("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("EndSession(missing) error = %v, want ErrNotFound", err)
	}
}

func TestJournal_EventsIsolatedPerSession(t *testing.T) {
	s := newTestStore(t)
	j := s.Journal()

	first, _ := j.BeginSession(1920, 1080)
	second, _ := j.BeginSession(1920, 1080)

	if err := j.Record(first, "zoom_in", 0, 0, 0); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	events, err := j.Events(second)
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("second session has %d events, want 0", len(events))
	}
}
