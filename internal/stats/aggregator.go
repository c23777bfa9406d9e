// Package stats aggregates logged workouts into the progress chart and card numbers.
package stats

import (
	"sort"
	"time"

	"github.com/2beens/gympro/internal/training"
)

// daysToUnixEpoch is the number of days from 0001-01-01 to 1970-01-01.
const daysToUnixEpoch = 719162

const secondsPerDay = 24 * 60 * 60

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Chart struct {
	Volume []Point `json:"volume"`
	Reps   []Point `json:"reps"`

	XMin  float64 `json:"xmin"`
	XMax  float64 `json:"xmax"`
	XTick float64 `json:"xtick"`

	YMin  float64 `json:"ymin"`
	YMax  float64 `json:"ymax"`
	YTick float64 `json:"ytick"`

	RepsMax float64 `json:"repsMax"`
}

type WorkoutTotals struct {
	Volume float64 `json:"volume"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
}

type HistoryEntry struct {
	Date time.Time      `json:"date"`
	Sets []training.Set `json:"sets"`
}

// DateNum converts a timestamp to fractional days since 0001-01-01 UTC.
// The full timestamp is kept, two workouts on one day map to different values.
func DateNum(t time.Time) float64 {
	t = t.UTC()
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return daysToUnixEpoch + seconds/secondsPerDay
}

// Aggregate sums volume (reps × weight) and reps per workout timestamp.
// Returns nil when there is nothing to chart.
func Aggregate(workouts []training.Workout) *Chart {
	if len(workouts) == 0 {
		return nil
	}

	volumes := map[float64]float64{}
	reps := map[float64]float64{}
	for _, w := range workouts {
		key := DateNum(w.Date)
		for _, e := range w.ExercisesInWorkout {
			volumes[key] += e.Volume()
			reps[key] += float64(e.Reps())
		}
	}

	if len(volumes) == 0 {
		return nil
	}

	keys := make([]float64, 0, len(volumes))
	for k := range volumes {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	chart := &Chart{
		Volume: make([]Point, 0, len(keys)),
		Reps:   make([]Point, 0, len(keys)),
		XMin:   keys[0],
		XMax:   keys[len(keys)-1],
	}
	for _, k := range keys {
		chart.Volume = append(chart.Volume, Point{X: k, Y: volumes[k]})
		chart.Reps = append(chart.Reps, Point{X: k, Y: reps[k]})
		chart.YMax = max(chart.YMax, volumes[k])
		chart.RepsMax = max(chart.RepsMax, reps[k])
	}
	chart.XTick = (chart.XMax - chart.XMin) / 4
	chart.YTick = chart.YMax / 2

	return chart
}

// WorkoutSummary returns the numbers shown on a past workout card.
func WorkoutSummary(w training.Workout) WorkoutTotals {
	var totals WorkoutTotals
	for _, e := range w.ExercisesInWorkout {
		totals.Volume += e.Volume()
		totals.Sets += len(e.Sets)
		totals.Reps += e.Reps()
	}
	return totals
}

// ExerciseHistory lists the sets logged for one exercise, in workout order.
func ExerciseHistory(workouts []training.Workout, exerciseID string) []HistoryEntry {
	history := []HistoryEntry{}
	for _, w := range workouts {
		for _, e := range w.ExercisesInWorkout {
			if e.ExerciseID == exerciseID {
				history = append(history, HistoryEntry{Date: w.Date, Sets: e.Sets})
			}
		}
	}
	return history
}
