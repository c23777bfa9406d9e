package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/telemetry/tracing"
)

const selectColumns = `id, name, body_part, target, secondary_muscles, equipment, instructions, gif_url`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM exercises WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, fmt.Errorf("exercise %s: %w", id, apperr.ErrRecordNotFound)
	}

	return &exercises[0], nil
}

// GetByIDs returns the found exercises, missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.getbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	if len(ids) == 0 {
		return []Exercise{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM exercises WHERE id = ANY($1) ORDER BY id;`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) ListByBodyPart(ctx context.Context, bodyPart string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listbybodypart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("body_part", bodyPart))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM exercises WHERE body_part = $1 ORDER BY name;`,
		bodyPart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM exercises ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) BodyParts(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.bodyparts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT body_part FROM exercises ORDER BY body_part;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bodyParts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect body parts: %w", err)
	}
	return bodyParts, nil
}

// Upsert is used by the catalog import only.
func (r *Repo) Upsert(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	batch := &pgx.Batch{}
	for _, e := range exercises {
		secondaryJson, err := json.Marshal(nonNil(e.SecondaryMuscles))
		if err != nil {
			return 0, fmt.Errorf("marshal secondary muscles [%s]: %w", e.ID, err)
		}
		instructionsJson, err := json.Marshal(nonNil(e.Instructions))
		if err != nil {
			return 0, fmt.Errorf("marshal instructions [%s]: %w", e.ID, err)
		}
		batch.Queue(
			`INSERT INTO exercises (`+selectColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				body_part = EXCLUDED.body_part,
				target = EXCLUDED.target,
				secondary_muscles = EXCLUDED.secondary_muscles,
				equipment = EXCLUDED.equipment,
				instructions = EXCLUDED.instructions,
				gif_url = EXCLUDED.gif_url;`,
			e.ID, e.Name, e.BodyPart, e.Target, secondaryJson, e.Equipment, instructionsJson, e.GifURL,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	upserted := 0
	for i := range exercises {
		if _, err := br.Exec(); err != nil {
			return upserted, fmt.Errorf("upsert exercise [%s]: %w", exercises[i].ID, err)
		}
		upserted++
	}

	return upserted, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		var secondaryBytes, instructionsBytes []byte
		if err := rows.Scan(
			&e.ID, &e.Name, &e.BodyPart, &e.Target, &secondaryBytes, &e.Equipment, &instructionsBytes, &e.GifURL,
		); err != nil {
			return nil, err
		}

		if len(secondaryBytes) > 0 {
			if err := json.Unmarshal(secondaryBytes, &e.SecondaryMuscles); err != nil {
				return nil, fmt.Errorf("unmarshal secondary muscles for exercise %s: %w", e.ID, err)
			}
		}
		if len(instructionsBytes) > 0 {
			if err := json.Unmarshal(instructionsBytes, &e.Instructions); err != nil {
				return nil, fmt.Errorf("unmarshal instructions for exercise %s: %w", e.ID, err)
			}
		}

		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
