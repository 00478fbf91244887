package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/cors"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
)

// renderRequest is the body of POST /api/render.
type renderRequest struct {
	Markdown string `json:"markdown"`
}

// Validate bounds the markdown field. Empty markdown is valid and renders
// to a single empty paragraph.
func (r renderRequest) Validate(maxBytes int) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Markdown, validation.Length(0, maxBytes)),
	)
}

// buildHandler assembles the serve mux with its middleware chain.
func buildHandler(cfg *config.Config, env *Environment, logger *slog.Logger) (http.Handler, error) {
	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return nil, err
		}
		loader = resolver
	}

	editorPage, err := loader.LoadTemplate("editor")
	if err != nil {
		return nil, fmt.Errorf("loading editor template: %w", err)
	}

	maxRender := cfg.Serve.MaxRenderBytes
	if maxRender <= 0 {
		maxRender = config.DefaultMaxRenderBytes
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, editorPage)
	})

	mux.HandleFunc("POST /api/render", handleRender(maxRender))

	mux.HandleFunc("GET /api/styles", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"styles": md2html.BuiltinStyles()})
	})

	mux.HandleFunc("GET /api/styles/{name}", handleStyle(loader))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Wrap inside out: requests pass CORS, then get an ID, then logging,
	// then panic recovery, then the mux.
	var handler http.Handler = mux
	handler = recoveryMiddleware(logger)(handler)
	handler = requestLogMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = corsHandler.Handler(handler)
	return handler, nil
}

// handleRender renders markdown to HTML fragments for the editor page.
func handleRender(maxRenderBytes int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The body cap leaves headroom for JSON escaping; the markdown
		// field itself is bounded separately by Validate.
		r.Body = http.MaxBytesReader(w, r.Body, int64(2*maxRenderBytes)+1024)

		var req renderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := req.Validate(maxRenderBytes); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"html": md2html.ToHTML(req.Markdown)})
	}
}

// handleStyle serves a single stylesheet for the editor's theme picker.
func handleStyle(loader assets.AssetLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		css, err := loader.LoadStyle(name)
		if err != nil {
			switch {
			case errors.Is(err, assets.ErrStyleNotFound),
				errors.Is(err, assets.ErrInvalidAssetName),
				errors.Is(err, assets.ErrPathTraversal):
				respondError(w, http.StatusNotFound, "style not found")
			default:
				respondError(w, http.StatusInternalServerError, "failed to load style")
			}
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		fmt.Fprint(w, css)
	}
}

// allowedOrigins returns the configured CORS origins, allowing all by default.
func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.Serve.AllowedOrigins) > 0 {
		return cfg.Serve.AllowedOrigins
	}
	return []string{"*"}
}

// respondJSON writes a JSON response. The payload is marshaled before any
// bytes are written so a marshal failure can still produce a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondError writes a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// requestIDKey is the context key for the per-request ID.
type requestIDKey struct{}

// requestIDFrom returns the request ID stored by requestIDMiddleware.
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestIDMiddleware tags each request with a unique ID, echoed in the
// X-Request-ID response header. An ID supplied by the client is kept.
func requestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogMiddleware logs one line per request.
func requestLogMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).Round(time.Microsecond).String(),
				"request_id", requestIDFrom(r.Context()),
			)
		})
	}
}

// recoveryMiddleware converts handler panics into 500 responses so one
// bad request cannot take the editor down.
func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"error", fmt.Sprint(rec),
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					respondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
