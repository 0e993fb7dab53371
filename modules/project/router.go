package project

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/reqcheck/pkg/handler"
	"github.com/dmitrymomot/reqcheck/pkg/logger"
)

// RouterOptions configures the project module.
type RouterOptions struct {
	Storage Storage
	Logger  *slog.Logger
	// Handler options applied to every validated endpoint (binder, policy resolver, metrics).
	HandlerOptions []handler.Option
	// Now defaults to time.Now.
	Now func() time.Time
}

type service struct {
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// Router mounts the project endpoints:
//
//	POST /       create a project (201, 409 on duplicate name, 422 on invalid input)
//	GET  /{id}   fetch a project (200, 404)
//
//	r.Mount("/v1/projects", project.Router(project.RouterOptions{
//	    Storage:        project.NewMemoryStorage(),
//	    HandlerOptions: []handler.Option{handler.WithMetrics(m)},
//	}))
func Router(opts RouterOptions) chi.Router {
	s := &service{storage: opts.Storage, log: opts.Logger, now: opts.Now}
	if s.storage == nil {
		s.storage = NewMemoryStorage()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	hopts := append([]handler.Option{handler.WithLogger(s.log)}, opts.HandlerOptions...)

	r := chi.NewRouter()
	r.Method(http.MethodPost, "/", handler.Validated(s.create, hopts...))
	r.Get("/{id}", s.get)
	return r
}

func (s *service) create(ctx context.Context, req CreateProjectRequest) handler.Response {
	p := NewProject(req, s.now())
	if err := s.storage.CreateProject(ctx, p); err != nil {
		if errors.Is(err, ErrProjectExists) {
			return handler.Error(http.StatusConflict, "project_exists", err.Error(), nil)
		}
		s.log.ErrorContext(ctx, "failed to store project", logger.Component("project"), logger.Error(err))
		return handler.Error(http.StatusInternalServerError, handler.CodeInternal, "", nil)
	}

	s.log.InfoContext(ctx, "project created", logger.Component("project"), slog.String("project_id", p.ID.String()))
	return handler.Created(p)
}

func (s *service) get(w http.ResponseWriter, r *http.Request) {
	var resp handler.Response

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		resp = handler.Error(http.StatusNotFound, "project_not_found", ErrProjectNotFound.Error(), nil)
	} else if p, err := s.storage.GetProject(r.Context(), id); errors.Is(err, ErrProjectNotFound) {
		resp = handler.Error(http.StatusNotFound, "project_not_found", err.Error(), nil)
	} else if err != nil {
		s.log.ErrorContext(r.Context(), "failed to load project", logger.Component("project"), logger.Error(err))
		resp = handler.Error(http.StatusInternalServerError, handler.CodeInternal, "", nil)
	} else {
		resp = handler.JSON(http.StatusOK, p)
	}

	if err := resp.Render(w, r); err != nil {
		s.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
	}
}
