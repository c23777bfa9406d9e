package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/internal/training"
	"github.com/2beens/gympro/pkg"
)

// Repo stores users as documents: routines and workouts are ordered jsonb arrays.
// Array updates mirror push/pull document operations and touch one row only.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
		RETURNING id, created_at;`,
		user.Email, user.Name, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("email taken: %w", apperr.ErrRegistrationFailed)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	user.Routines = []training.Routine{}
	user.Workouts = []training.Workout{}

	return &user, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	var routinesBytes, workoutsBytes []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, routines, workouts, created_at
			FROM users WHERE email = $1;`,
		email,
	).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &routinesBytes, &workoutsBytes, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", apperr.ErrRecordNotFound)
		}
		return nil, err
	}

	if err := json.Unmarshal(routinesBytes, &user.Routines); err != nil {
		return nil, fmt.Errorf("unmarshal routines for user %d: %w", user.ID, err)
	}
	if err := json.Unmarshal(workoutsBytes, &user.Workouts); err != nil {
		return nil, fmt.Errorf("unmarshal workouts for user %d: %w", user.ID, err)
	}
	if user.Routines == nil {
		user.Routines = []training.Routine{}
	}
	if user.Workouts == nil {
		user.Workouts = []training.Workout{}
	}

	return &user, nil
}

func (r *Repo) UpdateName(ctx context.Context, email, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $2 WHERE email = $1;`, email, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user: %w", apperr.ErrRecordNotFound)
	}
	return nil
}

func (r *Repo) PushRoutine(ctx context.Context, email string, routine training.Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.pushroutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine", routine.Name))

	routineJson, err := json.Marshal([]training.Routine{routine})
	if err != nil {
		return fmt.Errorf("marshal routine: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET routines = routines || $2::jsonb WHERE email = $1;`,
		email, routineJson,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user: %w", apperr.ErrRecordNotFound)
	}
	return nil
}

// ReplaceRoutine pulls the routine named oldName and pushes the new one, in a single statement.
func (r *Repo) ReplaceRoutine(ctx context.Context, email, oldName string, routine training.Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.replaceroutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.old", oldName))
	span.SetAttributes(attribute.String("routine", routine.Name))

	routineJson, err := json.Marshal([]training.Routine{routine})
	if err != nil {
		return fmt.Errorf("marshal routine: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET routines = `+pullByKey("routines", "name", "$2")+` || $3::jsonb
			WHERE email = $1 AND routines @> jsonb_build_array(jsonb_build_object('name', $2::text));`,
		email, oldName, routineJson,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("routine %s: %w", oldName, apperr.ErrRecordNotFound)
	}
	return nil
}

func (r *Repo) PullRoutine(ctx context.Context, email, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.pullroutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine", name))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET routines = `+pullByKey("routines", "name", "$2")+`
			WHERE email = $1 AND routines @> jsonb_build_array(jsonb_build_object('name', $2::text));`,
		email, name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("routine %s: %w", name, apperr.ErrRecordNotFound)
	}
	return nil
}

func (r *Repo) PushWorkout(ctx context.Context, email string, workout training.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.pushworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	workoutJson, err := json.Marshal([]training.Workout{workout})
	if err != nil {
		return fmt.Errorf("marshal workout: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET workouts = workouts || $2::jsonb WHERE email = $1;`,
		email, workoutJson,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user: %w", apperr.ErrRecordNotFound)
	}
	return nil
}

func (r *Repo) PullWorkout(ctx context.Context, email, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.pullworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET workouts = `+pullByKey("workouts", "id", "$2")+`
			WHERE email = $1 AND workouts @> jsonb_build_array(jsonb_build_object('id', $2::text));`,
		email, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout %s: %w", id, apperr.ErrRecordNotFound)
	}
	return nil
}

// pullByKey builds the expression for the array column without the elements whose key equals param.
// Element order is kept.
func pullByKey(column, key, param string) string {
	return fmt.Sprintf(
		`COALESCE((SELECT jsonb_agg(el.value ORDER BY el.idx)
			FROM jsonb_array_elements(%[1]s) WITH ORDINALITY AS el(value, idx)
			WHERE el.value->>'%[2]s' IS DISTINCT FROM %[3]s::text), '[]'::jsonb)`,
		column, key, param,
	)
}
