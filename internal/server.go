package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gympro/internal/auth"
	"github.com/2beens/gympro/internal/config"
	"github.com/2beens/gympro/internal/db"
	"github.com/2beens/gympro/internal/exercisedb"
	"github.com/2beens/gympro/internal/exercises"
	"github.com/2beens/gympro/internal/middleware"
	"github.com/2beens/gympro/internal/misc"
	"github.com/2beens/gympro/internal/telemetry/metrics"
	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/internal/users"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config     *config.Config
	dbPool     *pgxpool.Pool
	catalog    *exercises.CachedRepo
	exerciseDB *exercisedb.Client

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         secrets.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if secrets.HoneycombEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	ttl := sessionTTL(cfg)
	authService := auth.NewAuthService(ttl, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "gympro-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	if secrets.ExerciseDBAPIKey == "" {
		log.Warnln("exercise database api key not set, use EXERCISEDB_API_KEY env var to set it")
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		catalog: exercises.NewCachedRepo(
			exercises.NewRepo(dbPool),
			cfg.CatalogCacheSizeMB,
			metricsManager,
		),
		exerciseDB: exercisedb.NewClient(
			cfg.ExerciseDBBaseURL,
			cfg.ExerciseDBHost,
			secrets.ExerciseDBAPIKey,
			tracedHttpClient,
			rdb,
		),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(ttl, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func sessionTTL(cfg *config.Config) time.Duration {
	if cfg.SessionTTLHours <= 0 {
		return auth.DefaultTTL
	}
	return time.Duration(cfg.SessionTTLHours) * time.Hour
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	// static paths before the {id} ones
	exercisesHandler := exercises.NewHandler(s.catalog)
	r.HandleFunc("/exercises/bodyparts", exercisesHandler.HandleBodyParts).Methods("GET").Name("body-parts")
	r.HandleFunc("/exercises/bodypart/{bodyPart}", exercisesHandler.HandleListByBodyPart).Methods("GET").Name("exercises-by-body-part")
	r.HandleFunc("/exercises/selection/toggle", exercisesHandler.HandleToggleSelection).Methods("POST").Name("selection-toggle")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET").Name("exercise")

	exerciseDBHandler := exercisedb.NewHandler(s.catalog, s.exerciseDB)
	r.HandleFunc("/exercises/{id}/demo", exerciseDBHandler.HandleDemo).Methods("GET").Name("exercise-demo")

	usersHandler := users.NewHandler(
		users.NewService(users.NewRepo(s.dbPool), s.catalog, s.metricsManager),
		s.authService,
		s.metricsManager,
	)
	usersHandler.SetupRoutes(r, redis_rate.NewLimiter(s.redisClient), s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	allowedOrigins := make(map[string]bool, len(s.config.CorsAllowedOrigins))
	for _, origin := range s.config.CorsAllowedOrigins {
		allowedOrigins[origin] = true
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(allowedOrigins))
	r.Use(middleware.NewAuthMiddlewareHandler(s.loginChecker).AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing the stores behind them
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
