// Package devtools exposes the injection kit's on-demand tools — validate,
// clear, registry inspection — over a local HTTP surface for use during
// development. It stands in for the editor buttons of the original Unity
// pattern.
package devtools

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-scene-di/framework/inject"
)

// Server serves the DI debug endpoints for one kernel:
//
//	GET  /di/registry   registered type names, sorted
//	POST /di/validate   run a validation pass; 200 on pass, 422 on failures
//	POST /di/clear      reset every guarded injectable field
type Server struct {
	kernel *inject.Kernel
	mux    chi.Router
}

// NewServer builds a Server around k.
func NewServer(k *inject.Kernel) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	s := &Server{kernel: k, mux: r}
	r.Get("/di/registry", s.handleRegistry)
	r.Post("/di/validate", s.handleValidate)
	r.Post("/di/clear", s.handleClear)
	return s
}

// Handler returns the underlying http.Handler (for embedding and testing).
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks serving the debug endpoints on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// ── Handlers ─────────────────────────────────────────────────────────────────

func (s *Server) handleRegistry(w http.ResponseWriter, _ *http.Request) {
	types := s.kernel.Registry().Types()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	respond(w, http.StatusOK, envelope{"data": map[string]any{
		"scene": s.kernel.Scene().Name(),
		"types": names,
	}})
}

func (s *Server) handleValidate(w http.ResponseWriter, _ *http.Request) {
	rep := s.kernel.Validate()
	status := http.StatusOK
	if !rep.OK() {
		status = http.StatusUnprocessableEntity
	}
	respond(w, status, envelope{"data": rep})
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	cleared := s.kernel.Clear()
	respond(w, http.StatusOK, envelope{"data": map[string]any{
		"scene":   s.kernel.Scene().Name(),
		"cleared": cleared,
	}})
}

// ── JSON helpers ─────────────────────────────────────────────────────────────

type envelope map[string]any

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
