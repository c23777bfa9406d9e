//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gympro/internal/stats"
	"github.com/2beens/gympro/internal/training"
	"github.com/2beens/gympro/internal/users"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerAndLogin(ctx, t)

	// same email again
	status, _ := s.doRequest(ctx, t, "POST", "/a/register", "", users.RegisterRequest{
		Name:     "Someone Else",
		Email:    user.Email,
		Password: "whatever-password",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.doRequest(ctx, t, "POST", "/a/register", "", users.RegisterRequest{
		Name:  "No Password",
		Email: "no-password@gympro.app",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, t, "POST", "/a/login", "", users.LoginRequest{
		Email:    user.Email,
		Password: "bad-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, t, "POST", "/a/login", "", users.LoginRequest{
		Email:    "nobody@gympro.app",
		Password: user.Password,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, respBytes := s.doRequest(ctx, t, "GET", "/me", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var profile users.Profile
	require.NoError(t, json.Unmarshal(respBytes, &profile))
	assert.Equal(t, user.Name, profile.Name)
	assert.Equal(t, user.Email, profile.Email)
	assert.Zero(t, profile.RoutineCount)
	assert.Zero(t, profile.WorkoutCount)

	status, _ = s.doRequest(ctx, t, "PUT", "/me", user.Token, users.UpdateProfileRequest{Name: "Renamed"})
	require.Equal(t, http.StatusOK, status)
	status, respBytes = s.doRequest(ctx, t, "GET", "/me", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &profile))
	assert.Equal(t, "Renamed", profile.Name)

	status, _ = s.doRequest(ctx, t, "GET", "/a/logout", user.Token, nil)
	assert.Equal(t, http.StatusOK, status)

	// session is gone
	status, _ = s.doRequest(ctx, t, "GET", "/me", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.doRequest(ctx, t, "GET", "/a/logout", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestRoutines() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerAndLogin(ctx, t)

	fullBody := training.Routine{
		Name: "full body",
		ExercisesInRoutine: []training.RoutineExercise{
			{ExerciseID: "0025", Sets: "3"},
			{ExerciseID: "0043", Sets: "5"},
		},
	}
	status, _ := s.doRequest(ctx, t, "POST", "/routines", user.Token, fullBody)
	require.Equal(t, http.StatusCreated, status)

	status, _ = s.doRequest(ctx, t, "POST", "/routines", user.Token, training.Routine{Name: "empty"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, respBytes := s.doRequest(ctx, t, "GET", "/routines", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var cards []users.RoutineCard
	require.NoError(t, json.Unmarshal(respBytes, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "full body", cards[0].Name)
	assert.Equal(t, "barbell bench press, barbell full squat", cards[0].Summary)

	status, respBytes = s.doRequest(ctx, t, "GET", "/routines/full%20body/session", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var session users.WorkoutSession
	require.NoError(t, json.Unmarshal(respBytes, &session))
	assert.Equal(t, "full body", session.Title)
	assert.Equal(t, []users.SessionExercise{
		{ExerciseID: "0025", Name: "barbell bench press", PlannedSets: 3},
		{ExerciseID: "0043", Name: "barbell full squat", PlannedSets: 5},
	}, session.Exercises)

	// edit flow
	upper := training.Routine{
		Name:               "upper",
		ExercisesInRoutine: []training.RoutineExercise{{ExerciseID: "0047", Sets: "4"}},
	}
	status, _ = s.doRequest(ctx, t, "POST", "/routines?replace=full%20body", user.Token, upper)
	require.Equal(t, http.StatusCreated, status)

	status, respBytes = s.doRequest(ctx, t, "GET", "/routines", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "upper", cards[0].Name)

	status, _ = s.doRequest(ctx, t, "DELETE", "/routines/upper", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, t, "DELETE", "/routines/upper", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// exercise ids are not validated on save, a dangling one shows up when rendering
	dangling := training.Routine{
		Name:               "dangling",
		ExercisesInRoutine: []training.RoutineExercise{{ExerciseID: "9999", Sets: "1"}},
	}
	status, _ = s.doRequest(ctx, t, "POST", "/routines", user.Token, dangling)
	require.Equal(t, http.StatusCreated, status)
	status, _ = s.doRequest(ctx, t, "GET", "/routines", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestWorkoutsAndStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerAndLogin(ctx, t)

	status, respBytes := s.doRequest(ctx, t, "GET", "/stats", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var statsResp users.StatsResponse
	require.NoError(t, json.Unmarshal(respBytes, &statsResp))
	assert.Nil(t, statsResp.Chart)

	status, respBytes = s.doRequest(ctx, t, "POST", "/workouts", user.Token, users.FinishWorkoutRequest{
		Title: "push day",
		Exercises: []training.WorkoutExercise{
			{ExerciseID: "0025", Sets: []training.Set{{Reps: 10, Weight: 60}, {Reps: 8, Weight: 70}}},
			// nothing logged, dropped
			{ExerciseID: "0047"},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	var workout training.Workout
	require.NoError(t, json.Unmarshal(respBytes, &workout))
	assert.NotEmpty(t, workout.ID)
	require.Len(t, workout.ExercisesInWorkout, 1)

	status, respBytes = s.doRequest(ctx, t, "GET", "/workouts", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var cards []users.WorkoutCard
	require.NoError(t, json.Unmarshal(respBytes, &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, workout.ID, cards[0].ID)
	assert.Equal(t, "push day", cards[0].Title)
	assert.Equal(t, float64(1160), cards[0].Volume)
	assert.Equal(t, 2, cards[0].Sets)
	require.Len(t, cards[0].Exercises, 1)
	assert.Equal(t, "barbell bench press", cards[0].Exercises[0].Name)

	status, respBytes = s.doRequest(ctx, t, "GET", "/stats", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &statsResp))
	require.NotNil(t, statsResp.Chart)
	require.Len(t, statsResp.Chart.Volume, 1)
	assert.Equal(t, float64(1160), statsResp.Chart.Volume[0].Y)
	assert.Equal(t, float64(18), statsResp.Chart.Reps[0].Y)
	assert.Equal(t, float64(1160), statsResp.Chart.YMax)
	assert.Equal(t, float64(580), statsResp.Chart.YTick)

	status, respBytes = s.doRequest(ctx, t, "GET", "/exercises/0025/history", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var history []stats.HistoryEntry
	require.NoError(t, json.Unmarshal(respBytes, &history))
	require.Len(t, history, 1)
	assert.Equal(t, []training.Set{{Reps: 10, Weight: 60}, {Reps: 8, Weight: 70}}, history[0].Sets)

	status, _ = s.doRequest(ctx, t, "GET", "/exercises/9999/history", user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.doRequest(ctx, t, "DELETE", "/workouts/"+workout.ID, user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = s.doRequest(ctx, t, "DELETE", "/workouts/"+workout.ID, user.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, respBytes = s.doRequest(ctx, t, "GET", "/workouts", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &cards))
	assert.Empty(t, cards)
}
