package users

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gympro/internal/apperr"
	"github.com/2beens/gympro/internal/auth"
	"github.com/2beens/gympro/internal/middleware"
	"github.com/2beens/gympro/internal/stats"
	"github.com/2beens/gympro/internal/telemetry/metrics"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/internal/training"
	"github.com/2beens/gympro/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Profile(ctx context.Context, email string) (*Profile, error)
	UpdateName(ctx context.Context, email, name string) error
	SaveRoutine(ctx context.Context, email string, routine training.Routine, replaceName string) error
	DeleteRoutine(ctx context.Context, email, name string) error
	FinishWorkout(ctx context.Context, email, title string, performed []training.WorkoutExercise, at time.Time) (*training.Workout, error)
	DeleteWorkout(ctx context.Context, email, id string) error
	ExerciseHistory(ctx context.Context, email, exerciseID string) ([]stats.HistoryEntry, error)
	RoutineCards(ctx context.Context, email string) ([]RoutineCard, error)
	WorkoutCards(ctx context.Context, email string) ([]WorkoutCard, error)
	RoutineSession(ctx context.Context, email, name string) (*WorkoutSession, error)
	Stats(ctx context.Context, email string) (*stats.Chart, error)
}

type sessionService interface {
	Login(ctx context.Context, email string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type FinishWorkoutRequest struct {
	Title     string                     `json:"title"`
	Exercises []training.WorkoutExercise `json:"exercises"`
}

type StatsResponse struct {
	Chart *stats.Chart `json:"chart"`
}

type Handler struct {
	service        usersService
	sessions       sessionService
	metricsManager *metrics.Manager
	// injectable clock for tests
	now func() time.Time
}

func NewHandler(service usersService, sessions sessionService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		sessions:       sessions,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitPerMin int,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authSubrouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	// rate limit login and register to prevent abuse
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "auth", loginRateLimitPerMin, handler.metricsManager))

	mainRouter.HandleFunc("/me", handler.HandleProfile).Methods("GET").Name("profile")
	mainRouter.HandleFunc("/me", handler.HandleUpdateProfile).Methods("PUT").Name("profile-update")

	mainRouter.HandleFunc("/routines", handler.HandleRoutineCards).Methods("GET").Name("routines")
	mainRouter.HandleFunc("/routines", handler.HandleSaveRoutine).Methods("POST").Name("routine-save")
	mainRouter.HandleFunc("/routines/{name}", handler.HandleDeleteRoutine).Methods("DELETE").Name("routine-delete")
	mainRouter.HandleFunc("/routines/{name}/session", handler.HandleRoutineSession).Methods("GET").Name("routine-session")

	mainRouter.HandleFunc("/workouts", handler.HandleWorkoutCards).Methods("GET").Name("workouts")
	mainRouter.HandleFunc("/workouts", handler.HandleFinishWorkout).Methods("POST").Name("workout-finish")
	mainRouter.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE").Name("workout-delete")

	mainRouter.HandleFunc("/stats", handler.HandleStats).Methods("GET").Name("stats")
	mainRouter.HandleFunc("/exercises/{id}/history", handler.HandleExerciseHistory).Methods("GET").Name("exercise-history")
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if loginReq.Email == "" || loginReq.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Authenticate(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		handler.countLogin("failed")
		writeError(w, err, "error, wrong credentials")
		return
	}

	token, err := handler.sessions.Login(ctx, user.Email, handler.now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.countLogin("ok")
	log.Trace("new login success")
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Name: user.Name})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(middleware.AuthTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var registerReq RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "registration failed", http.StatusBadRequest)
		return
	}

	user, err := handler.service.Register(ctx, registerReq.Name, registerReq.Email, registerReq.Password)
	if err != nil {
		writeError(w, err, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, Profile{
		Name:  user.Name,
		Email: user.Email,
	})
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := handler.service.Profile(ctx, email)
	if err != nil {
		writeError(w, err, "failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateprofile")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var updateReq UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		http.Error(w, "invalid profile update", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateName(ctx, email, updateReq.Name); err != nil {
		writeError(w, err, "failed to update profile")
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleRoutineCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.routinecards")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	cards, err := handler.service.RoutineCards(ctx, email)
	if err != nil {
		writeError(w, err, "failed to get routines")
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (handler *Handler) HandleSaveRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.saveroutine")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var routine training.Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("save routine, unmarshal json params: %s", err)
		http.Error(w, "invalid routine", http.StatusBadRequest)
		return
	}

	replaceName := r.URL.Query().Get("replace")
	span.SetAttributes(attribute.String("replace", replaceName))

	if err := handler.service.SaveRoutine(ctx, email, routine, replaceName); err != nil {
		writeError(w, err, "failed to save routine")
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "saved", http.StatusCreated)
}

func (handler *Handler) HandleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.deleteroutine")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	name := mux.Vars(r)["name"]
	if err := handler.service.DeleteRoutine(ctx, email, name); err != nil {
		writeError(w, err, "failed to delete routine")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleRoutineSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.routinesession")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	session, err := handler.service.RoutineSession(ctx, email, mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err, "failed to start workout")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (handler *Handler) HandleWorkoutCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.workoutcards")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	cards, err := handler.service.WorkoutCards(ctx, email)
	if err != nil {
		writeError(w, err, "failed to get workouts")
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (handler *Handler) HandleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.finishworkout")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var finishReq FinishWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&finishReq); err != nil {
		log.Tracef("finish workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.FinishWorkout(ctx, email, finishReq.Title, finishReq.Exercises, handler.now())
	if err != nil {
		writeError(w, err, "failed to save workout")
		return
	}

	writeJSON(w, http.StatusCreated, workout)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.deleteworkout")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.service.DeleteWorkout(ctx, email, mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "failed to delete workout")
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.stats")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	chart, err := handler.service.Stats(ctx, email)
	if err != nil {
		writeError(w, err, "failed to get stats")
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{Chart: chart})
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.exercisehistory")
	defer span.End()

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	history, err := handler.service.ExerciseHistory(ctx, email, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "failed to get exercise history")
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (handler *Handler) countLogin(result string) {
	if handler.metricsManager == nil {
		return
	}
	handler.metricsManager.CounterLogins.WithLabelValues(result).Inc()
}

func writeError(w http.ResponseWriter, err error, msg string) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", msg, err)
	} else {
		log.Debugf("%s: %s", msg, err)
	}
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
