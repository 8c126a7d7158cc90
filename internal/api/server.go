// Package api exposes the platform over HTTP: task and learner
// administration, roadmap views, and submission intake.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/roadmap"
	"github.com/frontforge/frontforge/internal/store"
	"github.com/frontforge/frontforge/internal/submission"
)

// Submitter grades and records one submission.
type Submitter interface {
	Submit(ctx context.Context, req submission.Request) (*submission.Result, error)
}

// RoadmapViewer renders a roadmap for one learner.
type RoadmapViewer interface {
	ViewFor(ctx context.Context, roadmapID, learnerID int) (*roadmap.View, error)
}

// TaskDeleter removes a task and reverses its ledger contributions.
type TaskDeleter interface {
	DeleteTask(ctx context.Context, taskID int) error
}

// Server is the HTTP API server.
type Server struct {
	router         *chi.Mux
	learners       store.LearnerRepo
	tasks          store.TaskRepo
	roadmaps       store.RoadmapRepo
	viewer         RoadmapViewer
	submitter      Submitter
	deleter        TaskDeleter
	logger         *zap.Logger
	requestTimeout time.Duration
}

// NewServer creates an API server over the given services.
func NewServer(
	learners store.LearnerRepo,
	tasks store.TaskRepo,
	roadmaps store.RoadmapRepo,
	viewer RoadmapViewer,
	submitter Submitter,
	deleter TaskDeleter,
	logger *zap.Logger,
	requestTimeout time.Duration,
) *Server {
	if requestTimeout <= 0 {
		requestTimeout = 2 * time.Minute
	}
	s := &Server{
		learners:       learners,
		tasks:          tasks,
		roadmaps:       roadmaps,
		viewer:         viewer,
		submitter:      submitter,
		deleter:        deleter,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	// Grading calls are slow; the timeout must cover them.
	r.Use(middleware.Timeout(s.requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/learners", func(r chi.Router) {
			r.Post("/", s.handleCreateLearner)
			r.Get("/{id}", s.handleGetLearner)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Get("/{id}", s.handleGetTask)
			r.Delete("/{id}", s.handleDeleteTask)
		})

		r.Route("/roadmaps", func(r chi.Router) {
			r.Post("/", s.handleCreateRoadmap)
			r.Get("/{id}", s.handleGetRoadmap)
			r.Post("/{id}/tasks", s.handleAddRoadmapTask)
			r.Get("/{id}/learners/{learnerID}", s.handleRoadmapView)
		})

		r.Post("/submissions", s.handleSubmit)
	})

	s.router = r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
