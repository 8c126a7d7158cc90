// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/frontforge/frontforge/ent/learner"
	"github.com/frontforge/frontforge/ent/progress"
	"github.com/frontforge/frontforge/ent/roadmap"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/ent/schema"
	"github.com/frontforge/frontforge/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[0].Descriptor()
	// learner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learner.NameValidator = learnerDescName.Validators[0].(func(string) error)
	// learnerDescEmail is the schema descriptor for email field.
	learnerDescEmail := learnerFields[1].Descriptor()
	// learner.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	learner.EmailValidator = learnerDescEmail.Validators[0].(func(string) error)
	// learnerDescTotalScore is the schema descriptor for total_score field.
	learnerDescTotalScore := learnerFields[2].Descriptor()
	// learner.DefaultTotalScore holds the default value on creation for the total_score field.
	learner.DefaultTotalScore = learnerDescTotalScore.Default.(int)
	// learner.TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	learner.TotalScoreValidator = learnerDescTotalScore.Validators[0].(func(int) error)
	// learnerDescCompletedTaskCount is the schema descriptor for completed_task_count field.
	learnerDescCompletedTaskCount := learnerFields[3].Descriptor()
	// learner.DefaultCompletedTaskCount holds the default value on creation for the completed_task_count field.
	learner.DefaultCompletedTaskCount = learnerDescCompletedTaskCount.Default.(int)
	// learner.CompletedTaskCountValidator is a validator for the "completed_task_count" field. It is called by the builders before save.
	learner.CompletedTaskCountValidator = learnerDescCompletedTaskCount.Validators[0].(func(int) error)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[4].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescStatus is the schema descriptor for status field.
	progressDescStatus := progressFields[3].Descriptor()
	// progress.DefaultStatus holds the default value on creation for the status field.
	progress.DefaultStatus = progressDescStatus.Default.(bool)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[4].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	roadmapFields := schema.Roadmap{}.Fields()
	_ = roadmapFields
	// roadmapDescTitle is the schema descriptor for title field.
	roadmapDescTitle := roadmapFields[0].Descriptor()
	// roadmap.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	roadmap.TitleValidator = roadmapDescTitle.Validators[0].(func(string) error)
	// roadmapDescCreatedAt is the schema descriptor for created_at field.
	roadmapDescCreatedAt := roadmapFields[1].Descriptor()
	// roadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmap.DefaultCreatedAt = roadmapDescCreatedAt.Default.(func() time.Time)
	roadmaptaskFields := schema.RoadmapTask{}.Fields()
	_ = roadmaptaskFields
	// roadmaptaskDescOrdinal is the schema descriptor for ordinal field.
	roadmaptaskDescOrdinal := roadmaptaskFields[2].Descriptor()
	// roadmaptask.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	roadmaptask.OrdinalValidator = roadmaptaskDescOrdinal.Validators[0].(func(int) error)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[0].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescReferenceImageURL is the schema descriptor for reference_image_url field.
	taskDescReferenceImageURL := taskFields[4].Descriptor()
	// task.ReferenceImageURLValidator is a validator for the "reference_image_url" field. It is called by the builders before save.
	task.ReferenceImageURLValidator = taskDescReferenceImageURL.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[5].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
