// Package flagserver is the HTTP control plane spec.md §6.2 describes:
// a thin REST surface over internal/flags.Store, letting an operator
// toggle AutoStrum/AutoPlay per profile without restarting the engine.
package flagserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rbergman/fretengine/internal/flags"
	"github.com/rbergman/fretengine/internal/obs"
)

// New builds the control-plane router, backed by store.
func New(store *flags.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/flags", func(r chi.Router) {
		r.Get("/status", statusHandler(store))
		r.Put("/set/{profileId}/{flagName}/{value}", setHandler(store))

		// Deprecated aliases kept for callers written against the
		// earlier enable/disable verbs (spec.md §6.2).
		r.Put("/enable/{profileId}/{flagName}", legacyHandler(store, true))
		r.Put("/disable/{profileId}/{flagName}", legacyHandler(store, false))
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func statusHandler(store *flags.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.Status())
	}
}

func setHandler(store *flags.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, flag, ok := parseProfileAndFlag(w, r)
		if !ok {
			return
		}
		value := chi.URLParam(r, "value")
		enabled, err := parseBool(value)
		if err != nil {
			writeError(w, http.StatusBadRequest, "value must be true or false")
			return
		}
		store.Set(id, flag, enabled)
		writeJSON(w, http.StatusOK, map[string]any{
			"profileId": id,
			"flag":      flag.String(),
			"enabled":   enabled,
		})
	}
}

func legacyHandler(store *flags.Store, enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, flag, ok := parseProfileAndFlag(w, r)
		if !ok {
			return
		}
		obs.L().Warn().Str("path", r.URL.Path).Msg("deprecated flag endpoint used")
		store.Set(id, flag, enabled)
		writeJSON(w, http.StatusOK, map[string]any{
			"profileId": id,
			"flag":      flag.String(),
			"enabled":   enabled,
		})
	}
}

func parseProfileAndFlag(w http.ResponseWriter, r *http.Request) (uuid.UUID, flags.Flag, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "profileId must be a UUID")
		return uuid.Nil, flags.None, false
	}
	flag, ok := flags.ParseFlag(chi.URLParam(r, "flagName"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown flag name")
		return uuid.Nil, flags.None, false
	}
	return id, flag, true
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		var b bool
		return b, &unknownBoolError{s}
	}
}

type unknownBoolError struct{ s string }

func (e *unknownBoolError) Error() string { return "not a bool: " + e.s }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes spec.md §6.2's {"error": ...} JSON body, the shape
// every error response (400s, 404s) must use instead of net/http's
// plain-text default.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		obs.L().Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("flagserver request")
		next.ServeHTTP(w, r)
	})
}
