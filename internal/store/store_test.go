package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/katype/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "katype.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	langs := []string{"en", "es", "en"}
	for i, lang := range langs {
		run := &model.Run{
			StartedAt:    base.Add(time.Duration(i) * time.Hour),
			EndedAt:      base.Add(time.Duration(i)*time.Hour + 10*time.Second),
			Lang:         lang,
			Words:        2,
			TypedWords:   2,
			CorrectWords: 2,
			DurationS:    10,
			WPM:          12,
			Accuracy:     100,
			Consistency:  100,
			Code:         "WyJhIiwiYiJd",
		}
		id, err := st.InsertResult(ctx, run)
		if err != nil {
			t.Fatalf("insert result: %v", err)
		}
		if id == 0 || run.ID != id {
			t.Fatalf("expected id written back, got %d/%d", id, run.ID)
		}
		if run.RunID == "" {
			t.Fatalf("expected generated run id")
		}
	}

	all, err := st.ListResults(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if !all[0].EndedAt.Before(all[2].EndedAt) {
		t.Fatalf("expected oldest first: %+v", all)
	}
	if all[0].WPM != 12 || all[0].Code != "WyJhIiwiYiJd" {
		t.Fatalf("unexpected stored run: %+v", all[0])
	}

	en, err := st.ListResults(ctx, model.StatsConfig{Lang: "en"})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(en) != 2 {
		t.Fatalf("expected 2 english runs, got %d", len(en))
	}

	since := base.Add(90 * time.Minute)
	recent, err := st.ListResults(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent run, got %d", len(recent))
	}
}

func TestInsertResultRejectsBadRunID(t *testing.T) {
	st := openTestStore(t)
	run := &model.Run{RunID: "not-a-uuid", Lang: "en"}
	if _, err := st.InsertResult(context.Background(), run); err == nil {
		t.Fatalf("expected invalid run id error")
	}
}

func TestListResultsSinceAcrossOffsets(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	east := time.FixedZone("east", 2*3600)
	west := time.FixedZone("west", -5*3600)
	// 09:30 UTC written with a +02:00 offset, 10:00:00.5 UTC with -05:00.
	ended := []time.Time{
		time.Date(2026, 3, 29, 11, 30, 0, 0, east),
		time.Date(2026, 3, 29, 5, 0, 0, 500_000_000, west),
	}
	for _, e := range ended {
		run := &model.Run{StartedAt: e.Add(-10 * time.Second), EndedAt: e, Lang: "en", DurationS: 10}
		if _, err := st.InsertResult(ctx, run); err != nil {
			t.Fatalf("insert result: %v", err)
		}
	}

	since := time.Date(2026, 3, 29, 10, 0, 0, 0, time.UTC)
	recent, err := st.ListResults(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(recent) != 1 || !recent[0].EndedAt.Equal(ended[1]) {
		t.Fatalf("expected only the 10:00 UTC run, got %+v", recent)
	}

	all, err := st.ListResults(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(all) != 2 || !all[0].EndedAt.Equal(ended[0]) {
		t.Fatalf("expected runs ordered by UTC time, got %+v", all)
	}
}
