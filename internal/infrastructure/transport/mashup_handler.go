package transport

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mashup/app/usecase"
	"mashup/internal/domain/entity"
	"mashup/internal/infrastructure/llm"
)

//go:embed demo.html
var demoPage []byte

type MashupHandler struct {
	mashupService usecase.MashupUsecase
	logger        *slog.Logger

	reqDuration *prometheus.HistogramVec
	reqCount    *prometheus.CounterVec
	errCount    *prometheus.CounterVec
}

func NewMashupHandler(
	mashupService usecase.MashupUsecase,
	logger *slog.Logger,
) *MashupHandler {

	reqDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	reqCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path"},
	)

	errCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of HTTP request errors.",
		},
		[]string{"method", "path", "status"},
	)

	prometheus.MustRegister(reqDuration, reqCount, errCount)

	return &MashupHandler{
		mashupService: mashupService,
		logger:        logger,
		reqDuration:   reqDuration,
		reqCount:      reqCount,
		errCount:      errCount,
	}
}

func (h *MashupHandler) withMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path
		method := r.Method

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		duration := time.Since(start).Seconds()
		statusStr := strconv.Itoa(rw.status)

		h.reqCount.WithLabelValues(method, path).Inc()
		h.reqDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		if rw.status >= 400 {
			h.errCount.WithLabelValues(method, path, statusStr).Inc()
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *MashupHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.withMetrics(h.handleRoot)).Methods(http.MethodGet)
	r.HandleFunc("/use", h.withMetrics(h.handleDemoPage)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/create-mashup", h.withMetrics(h.handleCreateMashup)).Methods(http.MethodPost)
	api.HandleFunc("/test", h.withMetrics(h.handleTest)).Methods(http.MethodPost)
	api.HandleFunc("/health", h.withMetrics(h.handleHealth)).Methods(http.MethodGet)

	// Prometheus
	r.Handle("/metrics", promhttp.Handler())
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// statusFor maps the generation error taxonomy to HTTP codes: caller faults
// to 400, missing credential to 503, upstream failures to 500.
func statusFor(err error) int {
	var genErr *entity.GenerationError
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case entity.ErrKindValidation:
			return http.StatusBadRequest
		case entity.ErrKindConfiguration:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}

// POST /api/create-mashup
func (h *MashupHandler) handleCreateMashup(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		writeError(w, http.StatusBadRequest, errors.New("No JSON data provided"))
		return
	}

	result, err := h.mashupService.CreateMashup(r.Context(), payload)
	if err != nil {
		h.logger.Error("create mashup failed", "err", err)
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// sampleMashupPayload exercises the full pipeline without caller input.
var sampleMashupPayload = map[string]interface{}{
	"mashup_name": "TestMash Concept",
	"game1_data":  "Tetris - A classic puzzle game where players arrange falling geometric blocks (tetrominoes) to complete horizontal lines. The game speeds up as you progress, requiring quick thinking and spatial reasoning. Simple controls, addictive gameplay, and endless replayability have made it one of the most popular games of all time.",
	"game2_data":  "Dark Souls - A challenging action RPG known for its punishing difficulty, intricate level design, and atmospheric world. Players explore interconnected environments, fight formidable enemies, and learn from repeated deaths. Features stamina-based combat, character progression through souls currency, and environmental storytelling.",
}

// POST /api/test
func (h *MashupHandler) handleTest(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("running test with sample mashup data")

	result, err := h.mashupService.CreateMashup(r.Context(), sampleMashupPayload)
	if err != nil {
		h.logger.Error("test mashup failed", "err", err)
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GET /api/health
func (h *MashupHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "Game Mashup Creator",
		"environment": map[string]interface{}{
			"openai_configured": h.mashupService.GeneratorReady(),
		},
	})
}

// GET /
func (h *MashupHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Game Mashup Creator API is running!",
		"status":  "healthy",
		"endpoints": map[string]string{
			"health": "/api/health",
			"mashup": "/api/create-mashup (POST)",
			"test":   "/api/test (POST)",
			"demo":   "/use (GET - Web Interface)",
		},
		"environment_check": map[string]interface{}{
			"openai_key_set": llm.CredentialFromEnv() != "",
			"client_ready":   h.mashupService.GeneratorReady(),
		},
	})
}

// GET /use
func (h *MashupHandler) handleDemoPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(demoPage)
}
