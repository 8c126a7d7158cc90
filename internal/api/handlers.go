package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/store"
	"github.com/frontforge/frontforge/internal/submission"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Learner handlers

type createLearnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type learnerResponse struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	TotalScore         int    `json:"totalScore"`
	CompletedTaskCount int    `json:"completedTaskCount"`
}

func toLearnerResponse(l *store.Learner) learnerResponse {
	return learnerResponse{
		ID:                 l.ID,
		Name:               l.Name,
		Email:              l.Email,
		TotalScore:         l.TotalScore,
		CompletedTaskCount: l.CompletedTaskCount,
	}
}

func (s *Server) handleCreateLearner(w http.ResponseWriter, r *http.Request) {
	var req createLearnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" {
		s.respondError(w, http.StatusBadRequest, "validation_error", "name and email are required")
		return
	}

	learner, err := s.learners.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toLearnerResponse(learner))
}

func (s *Server) handleGetLearner(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	learner, err := s.learners.Get(r.Context(), id)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toLearnerResponse(learner))
}

// Task handlers

type createTaskRequest struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Languages         []string          `json:"languages"`
	OptimalSolution   map[string]string `json:"optimalSolution"`
	ReferenceImageURL string            `json:"referenceImageUrl"`
}

type taskResponse struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Languages         []string `json:"languages"`
	ReferenceImageURL string   `json:"referenceImageUrl"`
}

func toTaskResponse(t *store.Task) taskResponse {
	return taskResponse{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Languages:         t.Languages.Strings(),
		ReferenceImageURL: t.ReferenceImageURL,
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Title == "" {
		s.respondError(w, http.StatusBadRequest, "validation_error", "title is required")
		return
	}
	if req.ReferenceImageURL == "" {
		s.respondError(w, http.StatusBadRequest, "validation_error", "referenceImageUrl is required")
		return
	}

	set, err := lang.ParseSet(req.Languages)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	solution, err := parseSolution(req.OptimalSolution)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	task, err := s.tasks.Create(r.Context(), store.NewTask{
		Title:             req.Title,
		Description:       req.Description,
		Languages:         set,
		OptimalSolution:   solution,
		ReferenceImageURL: req.ReferenceImageURL,
	})
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		s.respondMappedError(w, err)
		return
	}

	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := s.tasks.Get(r.Context(), id)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toTaskResponse(task))
}

// handleDeleteTask routes through the accountant so score reversal and
// row cleanup commit atomically.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.deleter.DeleteTask(r.Context(), id); err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int{"deleted": id})
}

// Roadmap handlers

type createRoadmapRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req createRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Title == "" {
		s.respondError(w, http.StatusBadRequest, "validation_error", "title is required")
		return
	}

	rm, err := s.roadmaps.Create(r.Context(), req.Title)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, rm)
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	rm, err := s.roadmaps.Get(r.Context(), id)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rm)
}

type addRoadmapTaskRequest struct {
	TaskID int `json:"taskId"`
}

func (s *Server) handleAddRoadmapTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}

	var req addRoadmapTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.TaskID <= 0 {
		s.respondError(w, http.StatusBadRequest, "validation_error", "taskId is required")
		return
	}

	if err := s.roadmaps.AddTask(r.Context(), id, req.TaskID); err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]int{"roadmapId": id, "taskId": req.TaskID})
}

func (s *Server) handleRoadmapView(w http.ResponseWriter, r *http.Request) {
	roadmapID, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	learnerID, ok := s.pathID(w, r, "learnerID")
	if !ok {
		return
	}

	view, err := s.viewer.ViewFor(r.Context(), roadmapID, learnerID)
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, view)
}

// Submission handlers

type submitRequest struct {
	LearnerID        int               `json:"learnerId"`
	TaskID           int               `json:"taskId"`
	SubmissionKey    string            `json:"submissionKey,omitempty"`
	SourceByLanguage map[string]string `json:"sourceByLanguage"`

	// Screenshot is the rendered output, base64-encoded.
	Screenshot     string `json:"screenshot"`
	ScreenshotMIME string `json:"screenshotMimeType"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	screenshot, err := base64.StdEncoding.DecodeString(req.Screenshot)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "validation_error", "screenshot is not valid base64")
		return
	}

	source, err := parseSolution(req.SourceByLanguage)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := s.submitter.Submit(r.Context(), submission.Request{
		LearnerID:      req.LearnerID,
		TaskID:         req.TaskID,
		SubmissionKey:  req.SubmissionKey,
		Source:         source,
		Screenshot:     screenshot,
		ScreenshotMIME: req.ScreenshotMIME,
	})
	if err != nil {
		s.respondMappedError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// Helpers

func (s *Server) pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		s.respondError(w, http.StatusBadRequest, "validation_error", param+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func parseSolution(src map[string]string) (map[lang.Language]string, error) {
	if len(src) == 0 {
		return nil, nil
	}
	out := make(map[lang.Language]string, len(src))
	for name, text := range src {
		l, err := lang.Parse(name)
		if err != nil {
			return nil, err
		}
		out[l] = text
	}
	return out, nil
}
