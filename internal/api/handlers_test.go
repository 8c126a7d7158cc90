package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/evaluation"
	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/roadmap"
	"github.com/frontforge/frontforge/internal/scoring"
	"github.com/frontforge/frontforge/internal/store"
	"github.com/frontforge/frontforge/internal/submission"
)

type fakeLearners struct {
	learners map[int]*store.Learner
	nextID   int
}

func (f *fakeLearners) Create(_ context.Context, name, email string) (*store.Learner, error) {
	f.nextID++
	l := &store.Learner{ID: f.nextID, Name: name, Email: email}
	f.learners[l.ID] = l
	return l, nil
}

func (f *fakeLearners) Get(_ context.Context, id int) (*store.Learner, error) {
	l, ok := f.learners[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return l, nil
}

type fakeTasks struct {
	tasks  map[int]*store.Task
	nextID int
}

func (f *fakeTasks) Create(_ context.Context, t store.NewTask) (*store.Task, error) {
	if err := lang.Validate(t.Languages); err != nil {
		return nil, err
	}
	f.nextID++
	task := &store.Task{
		ID:                f.nextID,
		Title:             t.Title,
		Description:       t.Description,
		Languages:         t.Languages,
		OptimalSolution:   t.OptimalSolution,
		ReferenceImageURL: t.ReferenceImageURL,
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeTasks) Get(_ context.Context, id int) (*store.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (f *fakeTasks) List(context.Context) ([]*store.Task, error) {
	out := make([]*store.Task, 0, len(f.tasks))
	for i := 1; i <= f.nextID; i++ {
		if t, ok := f.tasks[i]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeRoadmaps struct {
	roadmaps map[int]*store.Roadmap
	entries  map[int][]store.RoadmapEntry
	nextID   int
}

func (f *fakeRoadmaps) Create(_ context.Context, title string) (*store.Roadmap, error) {
	f.nextID++
	rm := &store.Roadmap{ID: f.nextID, Title: title}
	f.roadmaps[rm.ID] = rm
	return rm, nil
}

func (f *fakeRoadmaps) Get(_ context.Context, id int) (*store.Roadmap, error) {
	rm, ok := f.roadmaps[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rm, nil
}

func (f *fakeRoadmaps) AddTask(_ context.Context, roadmapID, taskID int) error {
	if _, ok := f.roadmaps[roadmapID]; !ok {
		return store.ErrNotFound
	}
	f.entries[roadmapID] = append(f.entries[roadmapID], store.RoadmapEntry{
		TaskID:  taskID,
		Ordinal: len(f.entries[roadmapID]) + 1,
	})
	return nil
}

func (f *fakeRoadmaps) Entries(_ context.Context, roadmapID int) ([]store.RoadmapEntry, error) {
	return f.entries[roadmapID], nil
}

type fakeViewer struct {
	view *roadmap.View
	err  error
}

func (f *fakeViewer) ViewFor(context.Context, int, int) (*roadmap.View, error) {
	return f.view, f.err
}

type fakeSubmitter struct {
	result *submission.Result
	err    error
	last   submission.Request
}

func (f *fakeSubmitter) Submit(_ context.Context, req submission.Request) (*submission.Result, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeDeleter struct {
	err     error
	deleted []int
}

func (f *fakeDeleter) DeleteTask(_ context.Context, taskID int) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, taskID)
	return nil
}

type testEnv struct {
	server    *Server
	learners  *fakeLearners
	tasks     *fakeTasks
	roadmaps  *fakeRoadmaps
	viewer    *fakeViewer
	submitter *fakeSubmitter
	deleter   *fakeDeleter
}

func newTestEnv() *testEnv {
	env := &testEnv{
		learners:  &fakeLearners{learners: map[int]*store.Learner{}},
		tasks:     &fakeTasks{tasks: map[int]*store.Task{}},
		roadmaps:  &fakeRoadmaps{roadmaps: map[int]*store.Roadmap{}, entries: map[int][]store.RoadmapEntry{}},
		viewer:    &fakeViewer{},
		submitter: &fakeSubmitter{},
		deleter:   &fakeDeleter{},
	}
	env.server = NewServer(
		env.learners, env.tasks, env.roadmaps,
		env.viewer, env.submitter, env.deleter,
		zap.NewNop(), time.Minute,
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return resp.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	if resp.Error == nil {
		t.Fatalf("no error in response %q", rec.Body.String())
	}
	return resp.Error.Code
}

func TestHealth(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateAndGetLearner(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/learners", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[learnerResponse](t, rec)
	if created.ID == 0 || created.Name != "Ada" {
		t.Fatalf("created = %+v", created)
	}

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/learners/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/learners/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing learner status = %d, want 404", rec.Code)
	}
}

func TestCreateLearnerValidation(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodPost, "/api/v1/learners", map[string]string{"name": "Ada"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":       "Profile card",
		"description": "Centered card with an avatar.",
		"languages":   []string{"html", "css"},
		"optimalSolution": map[string]string{
			"html": "<div></div>",
			"css":  "div {}",
		},
		"referenceImageUrl": "https://assets.example.com/card.png",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[taskResponse](t, rec)
	if len(created.Languages) != 2 {
		t.Errorf("Languages = %v", created.Languages)
	}

	rec = env.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":             "Broken",
		"languages":         []string{"html", "fortran"},
		"referenceImageUrl": "https://assets.example.com/broken.png",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown language status = %d, want 400", rec.Code)
	}
}

func TestCreateTaskRequiresReferenceImage(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/tasks", map[string]any{
		"title":     "No image",
		"languages": []string{"html"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorCode(t, rec); got != "validation_error" {
		t.Errorf("code = %q, want validation_error", got)
	}
}

func TestDeleteTaskUsesAccountant(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodDelete, "/api/v1/tasks/3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(env.deleter.deleted) != 1 || env.deleter.deleted[0] != 3 {
		t.Errorf("deleter calls = %v, want [3]", env.deleter.deleted)
	}

	env.deleter.err = scoring.ErrConflict
	rec = env.do(t, http.MethodDelete, "/api/v1/tasks/3", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("conflict status = %d, want 409", rec.Code)
	}
}

func TestRoadmapView(t *testing.T) {
	env := newTestEnv()
	env.viewer.view = &roadmap.View{
		RoadmapID: 1,
		Title:     "Foundations",
		Tasks: []roadmap.TaskView{
			{TaskID: 1, Locked: false, Completed: true},
			{TaskID: 2, Locked: false},
			{TaskID: 3, Locked: true},
		},
	}

	rec := env.do(t, http.MethodGet, "/api/v1/roadmaps/1/learners/10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	view := decodeData[roadmap.View](t, rec)
	if len(view.Tasks) != 3 || !view.Tasks[2].Locked {
		t.Errorf("view = %+v", view)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/roadmaps/abc/learners/10", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestSubmit(t *testing.T) {
	env := newTestEnv()
	env.submitter.result = &submission.Result{
		Passed: true,
		Verdict: &evaluation.Verdict{
			Type: "HTML+CSS", TotalScore: 80, Grade: evaluation.GradeVeryGood,
		},
		SubmissionKey: "key-1",
	}

	screenshot := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8})
	rec := env.do(t, http.MethodPost, "/api/v1/submissions", map[string]any{
		"learnerId": 1,
		"taskId":    2,
		"sourceByLanguage": map[string]string{
			"html": "<p>hi</p>",
			"css":  "p {}",
		},
		"screenshot":         screenshot,
		"screenshotMimeType": "image/jpeg",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	result := decodeData[submission.Result](t, rec)
	if !result.Passed || result.Verdict.TotalScore != 80 {
		t.Errorf("result = %+v", result)
	}

	if env.submitter.last.Source[lang.HTML] != "<p>hi</p>" {
		t.Errorf("source not forwarded: %+v", env.submitter.last.Source)
	}
	if len(env.submitter.last.Screenshot) != 2 {
		t.Errorf("screenshot not decoded: %v", env.submitter.last.Screenshot)
	}
}

func TestSubmitErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"validation", submission.ErrInvalidSubmission, http.StatusBadRequest, "validation_error"},
		{"task missing", evaluation.ErrTaskNotFound, http.StatusNotFound, "not_found"},
		{"unsupported languages", evaluation.ErrUnsupportedLanguages, http.StatusBadRequest, "unsupported_languages"},
		{"grader down", evaluation.ErrGraderUnavailable, http.StatusBadGateway, "upstream_unavailable"},
		{"image unavailable", evaluation.ErrReferenceImageUnavailable, http.StatusBadGateway, "upstream_unavailable"},
		{"malformed verdict", evaluation.ErrMalformedVerdict, http.StatusBadGateway, "malformed_grader_response"},
		{"conflict", scoring.ErrConflict, http.StatusConflict, "concurrency_conflict"},
		{"invalid target", scoring.ErrInvalidTarget, http.StatusInternalServerError, "accounting_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.submitter.err = tt.err

			rec := env.do(t, http.MethodPost, "/api/v1/submissions", map[string]any{
				"learnerId":          1,
				"taskId":             2,
				"sourceByLanguage":   map[string]string{"html": "<p></p>"},
				"screenshot":         base64.StdEncoding.EncodeToString([]byte{1}),
				"screenshotMimeType": "image/png",
			})
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if got := errorCode(t, rec); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestSubmitBadBase64(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodPost, "/api/v1/submissions", map[string]any{
		"learnerId":          1,
		"taskId":             2,
		"sourceByLanguage":   map[string]string{"html": "<p></p>"},
		"screenshot":         "!!not base64!!",
		"screenshotMimeType": "image/png",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
