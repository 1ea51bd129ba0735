package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/vbonduro/boxqr/internal/domain"
	"github.com/vbonduro/boxqr/internal/service"
	"github.com/vbonduro/boxqr/internal/store"
)

type Server struct {
	service   *service.BoxService
	templates embed.FS
	adminPIN  string
	assistOn  bool
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc *service.BoxService, tmpl embed.FS, adminPIN string, assistOn bool, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		templates: tmpl,
		adminPIN:  adminPIN,
		assistOn:  assistOn,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"firstN": firstN,
			"sub":    func(a, b int) int { return a - b },
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /boxes", s.handleCreateBox)
	s.mux.HandleFunc("GET /b/{id}", s.handleBoxPublic)
	s.mux.HandleFunc("GET /boxes/{id}", s.handleBoxAdmin)
	s.mux.HandleFunc("POST /boxes/{id}", s.handleUpdateBox)
	s.mux.HandleFunc("POST /boxes/{id}/delete", s.handleDeleteBox)
	s.mux.HandleFunc("POST /boxes/{id}/items", s.handleAddItem)
	s.mux.HandleFunc("POST /boxes/{id}/items/{idx}", s.handleUpdateItem)
	s.mux.HandleFunc("POST /boxes/{id}/items/{idx}/delete", s.handleDeleteItem)
	s.mux.HandleFunc("GET /labels", s.handleLabels)
	s.mux.HandleFunc("GET /qr/{file}", s.handleQRImage)
	s.mux.HandleFunc("GET /export", s.handleExport)
	s.mux.HandleFunc("POST /import", s.handleImport)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"form-action 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses base.html plus the given page file and executes the
// "base" template; pages supply the "content" block.
func (s *Server) renderPage(w http.ResponseWriter, page string, data map[string]any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, "base.html", page)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	if data == nil {
		data = map[string]any{}
	}
	data["PINRequired"] = s.adminPIN != ""
	data["AssistEnabled"] = s.assistOn
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// authorized enforces the shared admin PIN on mutating requests. Always true
// when no PIN is configured.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request) bool {
	if s.adminPIN == "" {
		return true
	}
	if r.FormValue("pin") != s.adminPIN {
		http.Error(w, "invalid PIN", http.StatusForbidden)
		return false
	}
	return true
}

// writeError maps store error kinds to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, store.ErrInvalid), errors.Is(err, store.ErrItemIndex):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}

func firstN(items []domain.Item, n int) []domain.Item {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
