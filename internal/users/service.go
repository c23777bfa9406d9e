package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/exercises"
	"github.com/2beens/gympro/internal/stats"
	"github.com/2beens/gympro/internal/telemetry/metrics"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/internal/training"
	"github.com/2beens/gympro/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateName(ctx context.Context, email, name string) error
	PushRoutine(ctx context.Context, email string, routine training.Routine) error
	ReplaceRoutine(ctx context.Context, email, oldName string, routine training.Routine) error
	PullRoutine(ctx context.Context, email, name string) error
	PushWorkout(ctx context.Context, email string, workout training.Workout) error
	PullWorkout(ctx context.Context, email, id string) error
}

type exerciseCatalog interface {
	GetByIDs(ctx context.Context, ids []string) ([]exercises.Exercise, error)
}

const defaultPlannedSets = 1

type Service struct {
	repo           usersRepo
	catalog        exerciseCatalog
	metricsManager *metrics.Manager

	// injectable for tests
	NewIDFunc        func() string
	HashPasswordFunc func(password string) (string, error)
}

func NewService(repo usersRepo, catalog exerciseCatalog, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:             repo,
		catalog:          catalog,
		metricsManager:   metricsManager,
		NewIDFunc:        uuid.NewString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, name, email, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", apperr.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, apperr.ErrValidation)
	}

	passwordHash, err := s.HashPasswordFunc(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRegistrations.Inc()
	}
	log.Debugf("new user registered: %d", user.ID)

	return user, nil
}

// Authenticate does not tell apart a wrong email from a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.ErrAuthenticationFailed
	}

	return user, nil
}

func (s *Service) Profile(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:         user.Name,
		Email:        user.Email,
		RoutineCount: len(user.Routines),
		WorkoutCount: len(user.Workouts),
	}, nil
}

func (s *Service) UpdateName(ctx context.Context, email, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updatename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	return s.repo.UpdateName(ctx, email, name)
}

// SaveRoutine adds a new routine, or replaces the one named replaceName when set.
func (s *Service) SaveRoutine(ctx context.Context, email string, routine training.Routine, replaceName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.saveroutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine", routine.Name))

	routine.Name = strings.TrimSpace(routine.Name)
	if routine.Name == "" {
		return fmt.Errorf("routine name is required: %w", apperr.ErrValidation)
	}
	if len(routine.ExercisesInRoutine) == 0 {
		return fmt.Errorf("routine has no exercises: %w", apperr.ErrValidation)
	}
	for _, e := range routine.ExercisesInRoutine {
		if e.ExerciseID == "" {
			return fmt.Errorf("routine exercise id is empty: %w", apperr.ErrValidation)
		}
	}

	if replaceName != "" {
		return s.repo.ReplaceRoutine(ctx, email, replaceName, routine)
	}
	return s.repo.PushRoutine(ctx, email, routine)
}

func (s *Service) DeleteRoutine(ctx context.Context, email, name string) error {
	return s.repo.PullRoutine(ctx, email, name)
}

// FinishWorkout stores the performed sets. Exercises without a logged set are left out.
func (s *Service) FinishWorkout(
	ctx context.Context,
	email, title string,
	performed []training.WorkoutExercise,
	at time.Time,
) (_ *training.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.finishworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout := training.Workout{
		ID:                 s.NewIDFunc(),
		Date:               at.UTC(),
		Title:              strings.TrimSpace(title),
		ExercisesInWorkout: []training.WorkoutExercise{},
	}
	for _, e := range performed {
		if len(e.Sets) == 0 {
			continue
		}
		workout.ExercisesInWorkout = append(workout.ExercisesInWorkout, e)
	}
	span.SetAttributes(attribute.String("workout.id", workout.ID))
	span.SetAttributes(attribute.Int("workout.exercises", len(workout.ExercisesInWorkout)))

	if err := s.repo.PushWorkout(ctx, email, workout); err != nil {
		return nil, fmt.Errorf("push workout: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsSaved.Inc()
	}

	return &workout, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, email, id string) error {
	return s.repo.PullWorkout(ctx, email, id)
}

// ExerciseHistory fails with not found when the exercise is missing from the catalog.
func (s *Service) ExerciseHistory(ctx context.Context, email, exerciseID string) (_ []stats.HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.exercisehistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	if _, err := s.exercisesByID(ctx, []string{exerciseID}); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return stats.ExerciseHistory(user.Workouts, exerciseID), nil
}

func (s *Service) RoutineCards(ctx context.Context, email string) (_ []RoutineCard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.routinecards")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, r := range user.Routines {
		ids = append(ids, r.ExerciseIDs()...)
	}
	byID, err := s.exercisesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]RoutineCard, 0, len(user.Routines))
	for _, r := range user.Routines {
		names := make([]string, 0, len(r.ExercisesInRoutine))
		for _, e := range r.ExercisesInRoutine {
			names = append(names, byID[e.ExerciseID].Name)
		}
		cards = append(cards, RoutineCard{
			Name:      r.Name,
			Summary:   exercises.RoutineSummary(names),
			Exercises: r.ExercisesInRoutine,
		})
	}

	return cards, nil
}

// WorkoutCards lists the past workouts, newest first.
func (s *Service) WorkoutCards(ctx context.Context, email string) (_ []WorkoutCard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.workoutcards")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, w := range user.Workouts {
		ids = append(ids, w.ExerciseIDs()...)
	}
	byID, err := s.exercisesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]WorkoutCard, 0, len(user.Workouts))
	for _, w := range slices.Backward(user.Workouts) {
		totals := stats.WorkoutSummary(w)
		card := WorkoutCard{
			ID:        w.ID,
			Title:     w.Title,
			Date:      w.Date,
			Volume:    totals.Volume,
			Sets:      totals.Sets,
			Exercises: make([]WorkoutCardExercise, 0, len(w.ExercisesInWorkout)),
		}
		for _, e := range w.ExercisesInWorkout {
			card.Exercises = append(card.Exercises, WorkoutCardExercise{
				ExerciseID: e.ExerciseID,
				Name:       byID[e.ExerciseID].Name,
				Sets:       e.Sets,
			})
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// RoutineSession prepares a workout session from the routine named name.
func (s *Service) RoutineSession(ctx context.Context, email, name string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.routinesession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(user.Routines, func(r training.Routine) bool {
		return r.Name == name
	})
	if idx < 0 {
		return nil, fmt.Errorf("routine %s: %w", name, apperr.ErrRecordNotFound)
	}
	routine := user.Routines[idx]

	byID, err := s.exercisesByID(ctx, routine.ExerciseIDs())
	if err != nil {
		return nil, err
	}

	session := &WorkoutSession{
		Title:     routine.Name,
		Exercises: make([]SessionExercise, 0, len(routine.ExercisesInRoutine)),
	}
	for _, e := range routine.ExercisesInRoutine {
		plannedSets, err := strconv.Atoi(strings.TrimSpace(e.Sets))
		if err != nil || plannedSets < 1 {
			plannedSets = defaultPlannedSets
		}
		session.Exercises = append(session.Exercises, SessionExercise{
			ExerciseID:  e.ExerciseID,
			Name:        byID[e.ExerciseID].Name,
			PlannedSets: plannedSets,
		})
	}

	return session, nil
}

func (s *Service) Stats(ctx context.Context, email string) (_ *stats.Chart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return stats.Aggregate(user.Workouts), nil
}

// exercisesByID resolves catalog entries, any id missing from the catalog is a not found error.
func (s *Service) exercisesByID(ctx context.Context, ids []string) (map[string]exercises.Exercise, error) {
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	if len(ids) == 0 {
		return map[string]exercises.Exercise{}, nil
	}

	found, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}

	byID := exercises.ByID(found)
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("exercise %s: %w", id, apperr.ErrRecordNotFound)
		}
	}

	return byID, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperr.ErrRecordNotFound)
}
