package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Get(ctx context.Context, id string) (*Exercise, error)
	ListByBodyPart(ctx context.Context, bodyPart string) ([]Exercise, error)
	BodyParts(ctx context.Context) ([]string, error)
}

type ToggleRequest struct {
	Selected []string `json:"selected"`
	Toggle   string   `json:"toggle"`
}

type ToggleResponse struct {
	Selected   []string `json:"selected"`
	IsSelected bool     `json:"isSelected"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleBodyParts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.bodyparts")
	defer span.End()

	bodyParts, err := handler.repo.BodyParts(ctx)
	if err != nil {
		log.Errorf("failed to get body parts: %s", err)
		http.Error(w, "failed to get body parts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, bodyParts)
}

func (handler *Handler) HandleListByBodyPart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.listbybodypart")
	defer span.End()

	bodyPart := mux.Vars(r)["bodyPart"]
	if bodyPart == "" {
		http.Error(w, "error, body part empty", http.StatusBadRequest)
		return
	}

	list, err := handler.repo.ListByBodyPart(ctx, bodyPart)
	if err != nil {
		log.Errorf("failed to list exercises for body part [%s]: %s", bodyPart, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	writeJSON(w, FilterByName(list, r.URL.Query().Get("q")))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	e, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	writeJSON(w, NewDetails(*e))
}

// HandleToggleSelection is stateless, the client sends its current selection.
func (handler *Handler) HandleToggleSelection(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.toggle")
	defer span.End()

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("toggle selection, unmarshal json params: %s", err)
		http.Error(w, "invalid toggle request", http.StatusBadRequest)
		return
	}
	if req.Toggle == "" {
		http.Error(w, "error, toggle id empty", http.StatusBadRequest)
		return
	}

	selection := NewSelection(req.Selected...)
	isSelected := selection.Toggle(req.Toggle)

	writeJSON(w, ToggleResponse{
		Selected:   selection.IDs,
		IsSelected: isSelected,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
