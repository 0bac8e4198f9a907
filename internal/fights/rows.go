package fights

import (
	"errors"
	"sort"

	"logtime/internal/timefmt"
	"logtime/internal/wclogs"
)

// ErrNoBossFights reports a fight list with no boss encounters in it.
var ErrNoBossFights = errors.New("report contains no boss fights")

const unknownBossName = "Unknown Boss"

// Row is one boss encounter aligned to the video timeline. JSON tags keep the
// upstream snake_case names so json output matches the report tooling that
// consumes these rows elsewhere.
type Row struct {
	Pull            int      `json:"pull"`
	BossName        string   `json:"boss_name"`
	Kill            bool     `json:"kill"`
	Result          string   `json:"result"`
	Timestamp       string   `json:"timestamp"`
	VideoSeconds    float64  `json:"video_seconds"`
	BossHPLeft      *float64 `json:"boss_hp_left"`
	BossProgress    *float64 `json:"boss_progress"`
	DurationSeconds float64  `json:"duration_seconds"`
	DurationText    string   `json:"duration_text"`
}

// BuildRows filters fights down to boss encounters, sorts them by start time,
// and shifts every pull by a constant offset so the first one lands exactly on
// vodStartSeconds. Ties on start time keep their input order.
func BuildRows(fights []wclogs.Fight, vodStartSeconds int) ([]Row, error) {
	bossFights := make([]wclogs.Fight, 0, len(fights))
	for _, fight := range fights {
		if fight.Boss != 0 {
			bossFights = append(bossFights, fight)
		}
	}
	if len(bossFights) == 0 {
		return nil, ErrNoBossFights
	}

	sort.SliceStable(bossFights, func(i, j int) bool {
		return bossFights[i].StartTime < bossFights[j].StartTime
	})

	firstStartSeconds := float64(bossFights[0].StartTime) / 1000.0
	videoOffset := float64(vodStartSeconds) - firstStartSeconds

	rows := make([]Row, 0, len(bossFights))
	for idx, fight := range bossFights {
		videoSeconds := float64(fight.StartTime)/1000.0 + videoOffset

		endTime := fight.StartTime
		if fight.EndTime != nil {
			endTime = *fight.EndTime
		}
		durationSeconds := float64(endTime-fight.StartTime) / 1000.0
		if durationSeconds < 0 {
			durationSeconds = 0
		}

		name := fight.Name
		if name == "" {
			name = unknownBossName
		}

		result := "Wipe"
		if fight.Kill {
			result = "KILL"
		}

		hpLeft := bossPercentage(fight)
		var progress *float64
		if hpLeft != nil {
			value := 100.0 - *hpLeft
			progress = &value
		}

		storedSeconds := videoSeconds
		if storedSeconds < 0 {
			storedSeconds = 0
		}

		rows = append(rows, Row{
			Pull:            idx + 1,
			BossName:        name,
			Kill:            fight.Kill,
			Result:          result,
			Timestamp:       timefmt.FormatHHMMSS(videoSeconds),
			VideoSeconds:    storedSeconds,
			BossHPLeft:      hpLeft,
			BossProgress:    progress,
			DurationSeconds: durationSeconds,
			DurationText:    timefmt.FormatDuration(durationSeconds),
		})
	}
	return rows, nil
}

// bossPercentage returns the first present percentage field, tried in fixed
// priority order. Absent on every key means absent, never zero.
func bossPercentage(fight wclogs.Fight) *float64 {
	for _, field := range []*float64{fight.FightPercentage, fight.BossPercentage, fight.EnemyNPCPercentage} {
		if field != nil {
			value := *field
			return &value
		}
	}
	return nil
}
