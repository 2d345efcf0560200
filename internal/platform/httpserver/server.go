package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	drinkservice "cantina/contexts/catalog/drink-service"
	catalogtransport "cantina/contexts/catalog/drink-service/transport/http"
	tokenservice "cantina/contexts/identity-access/token-service"
	autherrors "cantina/contexts/identity-access/token-service/domain/errors"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "cantina/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	catalog drinkservice.Module
	tokens  tokenservice.Module
}

func New(
	catalog drinkservice.Module,
	tokens tokenservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		catalog: catalog,
		tokens:  tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler returns the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /items", s.authorized("get:items", s.handleListItems))
	s.mux.HandleFunc("POST /items", s.authorized("post:items", s.handleCreateItem))
	s.mux.HandleFunc("/items", s.handleMethodNotAllowed)

	s.mux.HandleFunc("GET /items-detail", s.authorized("get:items-detail", s.handleListItemsDetail))
	s.mux.HandleFunc("/items-detail", s.handleMethodNotAllowed)

	s.mux.HandleFunc("PATCH /items/{id}", s.authorized("patch:items", s.handleUpdateItem))
	s.mux.HandleFunc("DELETE /items/{id}", s.authorized("delete:items", s.handleDeleteItem))
	s.mux.HandleFunc("/items/{id}", s.handleMethodNotAllowed)

	s.mux.HandleFunc("/", s.handleNotFound)
}

// authorized verifies the bearer token and checks the required scope before
// invoking the handler. A rejected request never reaches handler logic.
func (s *Server) authorized(scope string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.tokens.Verifier.VerifyHeader(r.Context(), r.Header.Get("Authorization"))
		if err == nil {
			err = s.tokens.Authorizer.Require(claims, scope)
		}
		if err != nil {
			s.writeAuthError(w, r, err)
			return
		}

		s.logger.Debug("request authorized",
			"event", "request_authorized",
			"subject", claims.Subject,
			"scope", scope,
		)
		next(w, r)
	}
}

func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *autherrors.AuthError
	if errors.As(err, &authErr) {
		s.logger.Warn("request rejected",
			"event", "auth_rejected",
			"code", authErr.Code,
			"method", r.Method,
			"path", r.URL.Path,
		)
		writeError(w, authErr.StatusCode, authErr.Description)
		return
	}
	writeError(w, http.StatusInternalServerError, statusMessage(http.StatusInternalServerError))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, statusMessage(http.StatusMethodNotAllowed))
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, statusMessage(http.StatusNotFound))
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		s.logger.Info("request handled",
			"event", "http_request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, catalogtransport.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "internal server error"
	}
}
