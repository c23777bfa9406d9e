// Package training holds the routine and workout documents stored with a user.
package training

import "time"

// Routine is a named template of exercises with planned set counts.
type Routine struct {
	Name               string            `json:"name"`
	ExercisesInRoutine []RoutineExercise `json:"exercises_in_routine"`
}

// RoutineExercise keeps the planned set count as a string, the stored documents have it that way.
type RoutineExercise struct {
	ExerciseID string `json:"exercise_id"`
	Sets       string `json:"sets"`
}

// Workout is an immutable record of sets performed at Date.
type Workout struct {
	ID                 string            `json:"id"`
	Date               time.Time         `json:"date"`
	Title              string            `json:"title"`
	ExercisesInWorkout []WorkoutExercise `json:"exercises_in_workout"`
}

type WorkoutExercise struct {
	ExerciseID string `json:"exercise_id"`
	Sets       []Set  `json:"sets"`
}

type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (s Set) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

func (e WorkoutExercise) Volume() float64 {
	var volume float64
	for _, s := range e.Sets {
		volume += s.Volume()
	}
	return volume
}

func (e WorkoutExercise) Reps() int {
	reps := 0
	for _, s := range e.Sets {
		reps += s.Reps
	}
	return reps
}

// ExerciseIDs returns the distinct exercise ids, in order of first appearance.
func (r Routine) ExerciseIDs() []string {
	ids := make([]string, 0, len(r.ExercisesInRoutine))
	seen := map[string]bool{}
	for _, e := range r.ExercisesInRoutine {
		if !seen[e.ExerciseID] {
			seen[e.ExerciseID] = true
			ids = append(ids, e.ExerciseID)
		}
	}
	return ids
}

// ExerciseIDs returns the distinct exercise ids, in order of first appearance.
func (w Workout) ExerciseIDs() []string {
	ids := make([]string, 0, len(w.ExercisesInWorkout))
	seen := map[string]bool{}
	for _, e := range w.ExercisesInWorkout {
		if !seen[e.ExerciseID] {
			seen[e.ExerciseID] = true
			ids = append(ids, e.ExerciseID)
		}
	}
	return ids
}
