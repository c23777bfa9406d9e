package misc

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gympro/internal/telemetry/tracing"
	"github.com/2beens/gympro/pkg"
)

type Handler struct {
	versionInfo string
}

func NewHandler(versionInfo string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.getMyIp")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		span.SetStatus(codes.Error, "failed to get user IP address")
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	pkg.WriteTextResponseOK(w, ip)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
