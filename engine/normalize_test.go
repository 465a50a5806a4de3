package engine

import (
	"testing"

	"github.com/ElizabethCF01/system-monitor-cli/model"
)

func TestRankProcessesFiltersIdle(t *testing.T) {
	procs := make([]model.Process, 0, 20)
	for i := 0; i < 15; i++ {
		procs = append(procs, model.Process{PID: int32(i + 1), Name: "idle"})
	}
	busy := []model.Process{
		{PID: 100, Name: "a", CPU: 5},
		{PID: 101, Name: "b", CPU: 80},
		{PID: 102, Name: "c", CPU: 12},
		{PID: 103, Name: "d", Memory: 3.5},
		{PID: 104, Name: "e", CPU: 40},
	}
	procs = append(procs, busy...)

	got := RankProcesses(procs, ProcessLimit)
	if len(got) != 5 {
		t.Fatalf("RankProcesses kept %d processes, want 5", len(got))
	}
	wantOrder := []int32{101, 104, 102, 100, 103}
	for i, pid := range wantOrder {
		if got[i].PID != pid {
			t.Errorf("rank %d: pid = %d, want %d", i, got[i].PID, pid)
		}
	}
}

func TestRankProcessesTruncates(t *testing.T) {
	procs := make([]model.Process, 30)
	for i := range procs {
		procs[i] = model.Process{PID: int32(i + 1), Name: "p", CPU: float64(30 - i)}
	}
	got := RankProcesses(procs, ProcessLimit)
	if len(got) != ProcessLimit {
		t.Errorf("len = %d, want %d", len(got), ProcessLimit)
	}
	if got[0].CPU != 30 {
		t.Errorf("top cpu = %v, want 30", got[0].CPU)
	}
}

func TestRankProcessesStableTies(t *testing.T) {
	procs := []model.Process{
		{PID: 1, Name: "first", CPU: 10},
		{PID: 2, Name: "second", CPU: 10},
		{PID: 3, Name: "third", CPU: 10},
	}
	got := RankProcesses(procs, ProcessLimit)
	for i, pid := range []int32{1, 2, 3} {
		if got[i].PID != pid {
			t.Errorf("tie order broken at %d: pid = %d, want %d", i, got[i].PID, pid)
		}
	}
}

func TestRankProcessesFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		proc     model.Process
		wantName string
		wantUser string
	}{
		{"name from command", model.Process{CPU: 1, Command: "/usr/bin/foo"}, "/usr/bin/foo", "-"},
		{"unknown name", model.Process{CPU: 1}, "unknown", "-"},
		{"kept as is", model.Process{CPU: 1, Name: "bar", User: "root"}, "bar", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankProcesses([]model.Process{tt.proc}, ProcessLimit)
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if got[0].Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got[0].Name, tt.wantName)
			}
			if got[0].User != tt.wantUser {
				t.Errorf("User = %q, want %q", got[0].User, tt.wantUser)
			}
		})
	}
}

func TestRankProcessesNoPadding(t *testing.T) {
	got := RankProcesses([]model.Process{{PID: 1, CPU: 2, Name: "x"}}, ProcessLimit)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (no padding to limit)", len(got))
	}
}
