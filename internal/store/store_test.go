package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPrefSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	prefs := s.PrefRepo()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	// Absent key.
	var got payload
	found, err := prefs.Load(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if found {
		t.Fatal("expected absent key to report not found")
	}

	// Round trip.
	if err := prefs.Save(ctx, "p", payload{Name: "x", Count: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}
	found, err = prefs.Load(ctx, "p", &got)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found || got.Name != "x" || got.Count != 3 {
		t.Errorf("loaded %+v found=%v", got, found)
	}
}

func TestPrefSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	prefs := s.PrefRepo()
	ctx := context.Background()

	if err := prefs.Save(ctx, "k", []string{"a"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := prefs.Save(ctx, "k", []string{"b", "c"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var got []string
	found, err := prefs.Load(ctx, "k", &got)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(got) != 2 || got[0] != "b" {
		t.Errorf("expected overwritten value, got %v", got)
	}
}

func TestPrefLoadCorruptValueReportsAbsent(t *testing.T) {
	s := openTestStore(t)
	prefs := s.PrefRepo()
	ctx := context.Background()

	if err := prefs.Save(ctx, "k", "just a string"); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Decoding a string into a struct fails; the caller sees absent.
	var dest struct{ X int }
	found, err := prefs.Load(ctx, "k", &dest)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("expected unreadable value to report absent")
	}
}

func TestPrefDelete(t *testing.T) {
	s := openTestStore(t)
	prefs := s.PrefRepo()
	ctx := context.Background()

	if err := prefs.Save(ctx, "k", 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := prefs.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got int
	found, err := prefs.Load(ctx, "k", &got)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Error("expected deleted key to report absent")
	}

	// Deleting again is not an error.
	if err := prefs.Delete(ctx, "k"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestAppendAndRecentSessions(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := events.AppendSession(ctx, SessionEventData{
			SessionID: "s" + string(rune('a'+i)),
			Action:    "start",
			Section:   "all",
		}); err != nil {
			t.Fatalf("append start %d: %v", i, err)
		}
		if err := events.AppendSession(ctx, SessionEventData{
			SessionID:  "s" + string(rune('a'+i)),
			Action:     "end",
			Section:    "all",
			Questions:  10,
			Correct:    i,
			BestStreak: i,
		}); err != nil {
			t.Fatalf("append end %d: %v", i, err)
		}
	}

	recent, err := events.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recent))
	}
	// Newest first, and only "end" events.
	if recent[0].SessionID != "sc" || recent[1].SessionID != "sb" {
		t.Errorf("unexpected order: %s, %s", recent[0].SessionID, recent[1].SessionID)
	}
	for _, ev := range recent {
		if ev.Action != "end" {
			t.Errorf("expected only end events, got %q", ev.Action)
		}
	}
}

func TestAppendAnswer(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = events.AppendAnswer(ctx, AnswerEventData{
		SessionID:   "s1",
		ItemID:      "k1",
		Section:     "1",
		Mode:        "k2m",
		AnswerStyle: "mc",
		Given:       "sun",
		Expected:    "sun",
		Correct:     true,
		TimeMs:      1200,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	count, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 answer event, got %d", count)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}
	ctx := context.Background()

	prev, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("first next: %v", err)
	}
	for i := 0; i < 5; i++ {
		cur, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if cur != prev+1 {
			t.Errorf("sequence jumped from %d to %d", prev, cur)
		}
		prev = cur
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	if err := events.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start", Section: "all"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := events.AppendAnswer(ctx, AnswerEventData{SessionID: "s1", ItemID: "k1", Section: "1"}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := events.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "end", Section: "all"}); err != nil {
		t.Fatalf("append session end: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}

	seen := map[int64]bool{}
	for _, e := range se {
		seen[e.Sequence] = true
	}
	for _, e := range ae {
		if seen[e.Sequence] {
			t.Errorf("sequence %d reused across event types", e.Sequence)
		}
	}
}
