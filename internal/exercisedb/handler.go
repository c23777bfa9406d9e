package exercisedb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/exercises"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercisedb_test

type exerciseGetter interface {
	Get(ctx context.Context, id string) (*exercises.Exercise, error)
}

type demoFinder interface {
	DemoURL(ctx context.Context, name string) (string, error)
}

type DemoResponse struct {
	ExerciseID string `json:"exerciseId"`
	URL        string `json:"url"`
}

type Handler struct {
	catalog exerciseGetter
	demos   demoFinder
}

func NewHandler(catalog exerciseGetter, demos demoFinder) *Handler {
	return &Handler{
		catalog: catalog,
		demos:   demos,
	}
}

func (handler *Handler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercisedb.demo")
	defer span.End()

	id := mux.Vars(r)["id"]
	e, err := handler.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrRecordNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %s: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	// the catalog url is used when present, no need to ask the remote database
	demoURL := e.GifURL
	if demoURL == "" {
		demoURL, err = handler.demos.DemoURL(ctx, e.Name)
	}
	switch {
	case errors.Is(err, apperr.ErrRecordNotFound):
		http.Error(w, "exercise demo not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrNotConfigured):
		http.Error(w, "exercise demo not available", http.StatusServiceUnavailable)
		return
	case err != nil:
		log.Errorf("failed to get exercise demo for %s: %s", id, err)
		http.Error(w, "failed to get exercise demo", http.StatusBadGateway)
		return
	}

	respJson, err := json.Marshal(DemoResponse{ExerciseID: id, URL: demoURL})
	if err != nil {
		log.Errorf("failed to marshal demo response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
