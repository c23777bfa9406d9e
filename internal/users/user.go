package users

import (
	"time"

	"github.com/2beens/gympro/internal/training"
)

type User struct {
	ID           int                `json:"-"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	Routines     []training.Routine `json:"routines"`
	Workouts     []training.Workout `json:"workouts"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoutineCount int    `json:"routineCount"`
	WorkoutCount int    `json:"workoutCount"`
}

type RoutineCard struct {
	Name      string                     `json:"name"`
	Summary   string                     `json:"summary"`
	Exercises []training.RoutineExercise `json:"exercises"`
}

type WorkoutCardExercise struct {
	ExerciseID string         `json:"exerciseId"`
	Name       string         `json:"name"`
	Sets       []training.Set `json:"sets"`
}

type WorkoutCard struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Date      time.Time             `json:"date"`
	Volume    float64               `json:"volume"`
	Sets      int                   `json:"sets"`
	Exercises []WorkoutCardExercise `json:"exercises"`
}

// SessionExercise is one exercise of a routine, ready to be logged in a workout session.
type SessionExercise struct {
	ExerciseID  string `json:"exerciseId"`
	Name        string `json:"name"`
	PlannedSets int    `json:"plannedSets"`
}

type WorkoutSession struct {
	Title     string            `json:"title"`
	Exercises []SessionExercise `json:"exercises"`
}
