// Package server serves the catalog over HTTP for browser previews.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/storyshelf/internal/argtypes"
	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	"github.com/alexisbeaulieu97/storyshelf/internal/logger"
	"github.com/alexisbeaulieu97/storyshelf/internal/presentation"
	"github.com/alexisbeaulieu97/storyshelf/internal/story"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the renderer through a chi router.
type Server struct {
	renderer *catalog.Renderer
	library  *components.Library
	logger   *logger.Logger
	router   chi.Router
}

// New builds the router.
func New(r *catalog.Renderer, lib *components.Library, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{renderer: r, library: lib, logger: log}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Get("/", s.handleIndex)
	router.Get("/tokens.css", s.handleTokens)
	router.Get("/stories/{id}", s.handleStory)
	router.Get("/iframe/{id}", s.handleIframe)
	router.Put("/background/{name}", s.handleBackground)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, storyerrors.New(storyerrors.CodeNotFound, r.URL.Path, "route not found"))
	})

	s.router = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("preview server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type groupView struct {
	Title       string           `json:"title"`
	Tags        []string         `json:"tags"`
	Description string           `json:"description,omitempty"`
	Schema      *argtypes.Schema `json:"schema,omitempty"`
}

type indexView struct {
	Groups      []groupView               `json:"groups"`
	Stories     []story.Ref               `json:"stories"`
	Backgrounds []presentation.Background `json:"backgrounds"`
	Active      string                    `json:"activeBackground"`
}

type storyView struct {
	story.Ref
	Explicit bool              `json:"explicit"`
	Args     map[string]string `json:"args"`
	Schema   *argtypes.Schema  `json:"schema,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	reg := s.renderer.Registry()
	pres := s.renderer.Presentation()

	view := indexView{
		Stories:     reg.Stories(),
		Backgrounds: pres.Backgrounds(),
		Active:      pres.ActiveBackground().Name,
	}
	for _, g := range reg.Groups() {
		view.Groups = append(view.Groups, groupView{Title: g.Title, Tags: g.Tags, Description: g.Description, Schema: g.Schema})
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleTokens(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.library.Tokens().Stylesheet() + "\n"))
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, _, err := s.renderer.Registry().ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	overrides, err := queryArgs(r, g.Schema)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.renderer.RenderID(id, overrides)
	if err != nil {
		writeError(w, err)
		return
	}

	view := storyView{Ref: res.Ref, Explicit: res.Explicit, Args: map[string]string{}, Schema: res.Schema}
	for _, k := range res.Args.Keys() {
		view.Args[k] = res.Args.String(k)
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleIframe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, _, err := s.renderer.Registry().ByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	overrides, err := queryArgs(r, g.Schema)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.renderer.PreviewID(id, overrides)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := s.library.Document(components.DocumentProps{
		Title:      res.Ref.Title + " · " + res.Ref.Name,
		Stylesheet: "/tokens.css",
		Body:       res.Fragment.HTML(),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	pres := s.renderer.Presentation()
	if err := pres.SetActiveBackground(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pres.ActiveBackground())
}

// queryArgs reads control overrides from the query string. The last value
// of a repeated key wins.
func queryArgs(r *http.Request, schema *argtypes.Schema) (argtypes.Args, error) {
	query := r.URL.Query()
	raw := make(map[string]string, len(query))
	for name, values := range query {
		raw[name] = values[len(values)-1]
	}
	return argtypes.Parse(schema, raw)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

type errorBody struct {
	Code    string   `json:"code"`
	Key     string   `json:"key,omitempty"`
	Message string   `json:"message"`
	Domain  []string `json:"domain,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	body := errorBody{Code: string(storyerrors.CodeOf(err)), Key: storyerrors.KeyOf(err), Message: err.Error()}
	var cerr *storyerrors.CatalogError
	if errors.As(err, &cerr) {
		body.Domain = cerr.Domain
	}
	if body.Code == "" {
		body.Code = "Internal"
	}
	writeJSON(w, statusFor(err), body)
}

func statusFor(err error) int {
	switch storyerrors.CodeOf(err) {
	case storyerrors.CodeNotFound, storyerrors.CodeUnknownPreset:
		return http.StatusNotFound
	case storyerrors.CodeUnknownArgument, storyerrors.CodeInvalidOption, storyerrors.CodeInvalidValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
