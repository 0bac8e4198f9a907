package fights

import (
	"errors"
	"testing"

	"logtime/internal/wclogs"
)

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func TestBuildRowsAlignsToVideoStart(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 101, Name: "Kurog", StartTime: 10000, EndTime: int64Ptr(250000), Kill: true},
		{Boss: 102, Name: "Raszageth", StartTime: 70000, EndTime: int64Ptr(95000)},
	}

	rows, err := BuildRows(fights, 100)
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Pull != 1 || first.VideoSeconds != 100.0 || first.Timestamp != "00:01:40" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Result != "KILL" || !first.Kill {
		t.Fatalf("expected first row to be a kill, got %+v", first)
	}
	if first.DurationSeconds != 240.0 || first.DurationText != "04:00" {
		t.Fatalf("unexpected first row duration: %+v", first)
	}

	second := rows[1]
	if second.Pull != 2 || second.VideoSeconds != 160.0 || second.Timestamp != "00:02:40" {
		t.Fatalf("unexpected second row: %+v", second)
	}
	if second.Result != "Wipe" || second.Kill {
		t.Fatalf("expected second row to be a wipe, got %+v", second)
	}
}

func TestBuildRowsFiltersTrashAndOrdersByStartTime(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 0, Name: "Trash Pack", StartTime: 5000},
		{Boss: 7, Name: "Third", StartTime: 300000},
		{Boss: 7, Name: "First", StartTime: 60000},
		{Boss: 0, Name: "More Trash", StartTime: 90000},
		{Boss: 7, Name: "Second", StartTime: 120000},
	}

	rows, err := BuildRows(fights, 0)
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	names := []string{"First", "Second", "Third"}
	for i, row := range rows {
		if row.Pull != i+1 {
			t.Fatalf("expected pull %d at index %d, got %d", i+1, i, row.Pull)
		}
		if row.BossName != names[i] {
			t.Fatalf("expected boss %q at pull %d, got %q", names[i], i+1, row.BossName)
		}
	}
}

func TestBuildRowsStableForEqualStartTimes(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 1, Name: "A", StartTime: 1000},
		{Boss: 1, Name: "B", StartTime: 1000},
		{Boss: 1, Name: "C", StartTime: 1000},
	}

	rows, err := BuildRows(fights, 10)
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	for i, want := range []string{"A", "B", "C"} {
		if rows[i].BossName != want {
			t.Fatalf("tie order broken: expected %q at pull %d, got %q", want, i+1, rows[i].BossName)
		}
	}
}

func TestBuildRowsNoBossFights(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 0, Name: "Trash", StartTime: 1000},
		{Boss: 0, Name: "More Trash", StartTime: 2000},
	}

	rows, err := BuildRows(fights, 0)
	if !errors.Is(err, ErrNoBossFights) {
		t.Fatalf("expected ErrNoBossFights, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows on error, got %d", len(rows))
	}

	if _, err := BuildRows(nil, 0); !errors.Is(err, ErrNoBossFights) {
		t.Fatalf("expected ErrNoBossFights for empty input, got %v", err)
	}
}

func TestBuildRowsDefaultsMissingFields(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 3, StartTime: 42000},
	}

	rows, err := BuildRows(fights, 0)
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}
	row := rows[0]
	if row.BossName != "Unknown Boss" {
		t.Fatalf("expected placeholder boss name, got %q", row.BossName)
	}
	if row.DurationSeconds != 0 || row.DurationText != "00:00" {
		t.Fatalf("expected zero duration for missing end_time, got %+v", row)
	}
}

func TestBuildRowsBossPercentagePriority(t *testing.T) {
	fights := []wclogs.Fight{
		{Boss: 1, Name: "BossOnly", StartTime: 1000, BossPercentage: float64Ptr(35.0)},
		{Boss: 1, Name: "FightWins", StartTime: 2000,
			FightPercentage: float64Ptr(12.5), BossPercentage: float64Ptr(90.0)},
		{Boss: 1, Name: "NPCFallback", StartTime: 3000, EnemyNPCPercentage: float64Ptr(80.0)},
		{Boss: 1, Name: "None", StartTime: 4000},
	}

	rows, err := BuildRows(fights, 0)
	if err != nil {
		t.Fatalf("BuildRows returned error: %v", err)
	}

	if rows[0].BossHPLeft == nil || *rows[0].BossHPLeft != 35.0 {
		t.Fatalf("expected boss_hp_left 35.0, got %+v", rows[0].BossHPLeft)
	}
	if rows[0].BossProgress == nil || *rows[0].BossProgress != 65.0 {
		t.Fatalf("expected boss_progress 65.0, got %+v", rows[0].BossProgress)
	}
	if rows[1].BossHPLeft == nil || *rows[1].BossHPLeft != 12.5 {
		t.Fatalf("expected fightPercentage to win, got %+v", rows[1].BossHPLeft)
	}
	if rows[2].BossHPLeft == nil || *rows[2].BossHPLeft != 80.0 {
		t.Fatalf("expected enemyNPCPercentage fallback, got %+v", rows[2].BossHPLeft)
	}
	if rows[3].BossHPLeft != nil || rows[3].BossProgress != nil {
		t.Fatalf("expected absent percentages, got %+v", rows[3])
	}
}
