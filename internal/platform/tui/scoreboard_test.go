package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/smash-out/internal/storage"
)

type fakeRunSource struct {
	top    []storage.Run
	recent []storage.Run
	stats  *storage.Stats
	err    error
	calls  []string
}

func (f *fakeRunSource) TopRuns(limit int) ([]storage.Run, error) {
	f.calls = append(f.calls, "top")
	return f.top, f.err
}

func (f *fakeRunSource) RecentRuns(limit int) ([]storage.Run, error) {
	f.calls = append(f.calls, "recent")
	return f.recent, f.err
}

func (f *fakeRunSource) Stats() (*storage.Stats, error) {
	return f.stats, nil
}

func sampleRuns() *fakeRunSource {
	at := time.Date(2025, 5, 4, 18, 30, 0, 0, time.UTC)
	return &fakeRunSource{
		top: []storage.Run{
			{ID: 2, Score: 4200, Level: 5, Outcome: storage.OutcomeGameOver, Difficulty: "normal", Duration: 185 * time.Second, PlayedAt: at},
			{ID: 1, Score: 900, Level: 2, Outcome: storage.OutcomeGameOver, Difficulty: "easy", Duration: 40 * time.Second, PlayedAt: at},
		},
		recent: []storage.Run{
			{ID: 3, Score: 120, Level: 1, Outcome: storage.OutcomeGameOver, Difficulty: "hard", Duration: 12 * time.Second, PlayedAt: at},
		},
		stats: &storage.Stats{Runs: 3, HighScore: 4200, AvgScore: 1740, BestLevel: 5},
	}
}

func TestScoreboardLoadsTopRuns(t *testing.T) {
	src := sampleRuns()
	m := NewScoreboardModel(src, 80, 24)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "4200" || rows[0][5] != "3:05" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	for _, want := range []string{"RUN HISTORY", "4200", "3 runs", "best level 5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	src := sampleRuns()
	m := NewScoreboardModel(src, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	if m.view != ViewRecent {
		t.Errorf("view = %v, expected Recent", m.view)
	}
	if rows := m.table.Rows(); len(rows) != 1 || rows[0][1] != "120" {
		t.Errorf("rows = %v, expected the single recent run", rows)
	}
	if got := strings.Join(src.calls, ","); got != "top,recent" {
		t.Errorf("calls = %s, expected top,recent", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).view != ViewTop {
		t.Error("second tab should return to Top")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	tests := []struct {
		name   string
		source RunSource
		want   string
	}{
		{"no source", nil, "No runs recorded yet"},
		{"empty store", &fakeRunSource{}, "No runs recorded yet"},
		{"read error", &fakeRunSource{err: errors.New("disk gone")}, "disk gone"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.source, 80, 24)
			if view := m.View(); !strings.Contains(view, tc.want) {
				t.Errorf("view missing %q:\n%s", tc.want, view)
			}
		})
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(sampleRuns(), 80, 24)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 600*time.Millisecond, "1:02"},
		{12 * time.Minute, "12:00"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.in); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
