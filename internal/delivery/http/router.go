package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// RouterDeps are the handlers mounted by NewRouter. WS may be nil.
type RouterDeps struct {
	Assessments    *AssessmentHandler
	Tokens         *TokenHandler
	Test           *TestHandler
	WS             http.Handler
	AllowedOrigins []string
	Log            *zap.Logger
}

// NewRouter wires every endpoint behind CORS and request logging.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Full paths on the root router so a method mismatch answers 405.
	r.HandleFunc("/api/assessments", d.Assessments.Catalog).Methods(http.MethodGet)
	r.HandleFunc("/api/energy-loop", d.Assessments.EnergyLoop).Methods(http.MethodPost)
	r.HandleFunc("/api/metabolic-age", d.Assessments.MetabolicAge).Methods(http.MethodPost)
	r.HandleFunc("/api/longevity-nutrition", d.Assessments.LongevityNutrition).Methods(http.MethodPost)
	r.HandleFunc("/api/products/match", d.Assessments.MatchProducts).Methods(http.MethodPost)
	r.HandleFunc("/api/products/bundle", d.Assessments.BundlePrice).Methods(http.MethodPost)
	r.HandleFunc("/api/suggestions", d.Assessments.Suggestions).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{userId}/assessments", d.Assessments.ListAssessments).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{userId}/dashboard", d.Assessments.Dashboard).Methods(http.MethodGet)

	r.HandleFunc("/api/notifications/register", d.Tokens.HandleRegisterToken).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications/unregister", d.Tokens.HandleUnregisterToken).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications/count", d.Tokens.HandleGetTokenCount).Methods(http.MethodGet)
	if d.Test != nil {
		r.HandleFunc("/api/notifications/test", d.Test.SendTestNotification).Methods(http.MethodPost)
	}

	if d.WS != nil {
		r.Handle("/ws", d.WS).Methods(http.MethodGet)
	}

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return c.Handler(loggingMiddleware(log)(r))
}
