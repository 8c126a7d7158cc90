package store

import (
	"context"
	"errors"

	"github.com/frontforge/frontforge/internal/lang"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Learner is a platform user with their score ledger.
type Learner struct {
	ID                 int
	Name               string
	Email              string
	TotalScore         int
	CompletedTaskCount int
}

// Task is a gradable design exercise.
type Task struct {
	ID                int
	Title             string
	Description       string
	Languages         lang.Set
	OptimalSolution   map[lang.Language]string
	ReferenceImageURL string
}

// NewTask carries the fields for task creation.
type NewTask struct {
	Title             string
	Description       string
	Languages         lang.Set
	OptimalSolution   map[lang.Language]string
	ReferenceImageURL string
}

// Progress is the per-learner, per-task completion record.
type Progress struct {
	ID        int
	LearnerID int
	TaskID    int
	Score     int
	HasScore  bool
	Status    bool
}

// Roadmap is an ordered task sequence.
type Roadmap struct {
	ID    int
	Title string
}

// RoadmapEntry is one task's position within a roadmap, joined with the
// task fields roadmap views need.
type RoadmapEntry struct {
	TaskID    int
	Ordinal   int
	Title     string
	Languages lang.Set
}

// LearnerRepo manages learner records.
type LearnerRepo interface {
	Create(ctx context.Context, name, email string) (*Learner, error)
	Get(ctx context.Context, id int) (*Learner, error)
}

// TaskRepo manages task records. Deletion goes through the completion
// accountant so ledger reversal runs in the same transaction.
type TaskRepo interface {
	Create(ctx context.Context, t NewTask) (*Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
}

// ProgressRepo reads completion records. Writes go through the
// completion accountant only.
type ProgressRepo interface {
	// Get returns the record for a (learner, task) pair, or ErrNotFound.
	Get(ctx context.Context, learnerID, taskID int) (*Progress, error)

	// ForLearner returns all of a learner's records keyed by task ID.
	ForLearner(ctx context.Context, learnerID int) (map[int]*Progress, error)
}

// RoadmapRepo manages roadmaps and their task ordering.
type RoadmapRepo interface {
	Create(ctx context.Context, title string) (*Roadmap, error)
	Get(ctx context.Context, id int) (*Roadmap, error)

	// AddTask appends a task at the next ordinal position.
	AddTask(ctx context.Context, roadmapID, taskID int) error

	// Entries returns the roadmap's tasks in ordinal order.
	Entries(ctx context.Context, roadmapID int) ([]RoadmapEntry, error)
}
