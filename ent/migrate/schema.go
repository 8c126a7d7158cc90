// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "completed_task_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeInt},
		{Name: "task_id", Type: field.TypeInt},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progresses_learners_progress",
				Columns:    []*schema.Column{ProgressesColumns[4]},
				RefColumns: []*schema.Column{LearnersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "progresses_tasks_progress",
				Columns:    []*schema.Column{ProgressesColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progress_learner_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[4], ProgressesColumns[5]},
			},
			{
				Name:    "progress_task_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[5]},
			},
		},
	}
	// RoadmapsColumns holds the columns for the "roadmaps" table.
	RoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoadmapsTable holds the schema information for the "roadmaps" table.
	RoadmapsTable = &schema.Table{
		Name:       "roadmaps",
		Columns:    RoadmapsColumns,
		PrimaryKey: []*schema.Column{RoadmapsColumns[0]},
	}
	// RoadmapTasksColumns holds the columns for the "roadmap_tasks" table.
	RoadmapTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "roadmap_id", Type: field.TypeInt},
		{Name: "task_id", Type: field.TypeInt},
	}
	// RoadmapTasksTable holds the schema information for the "roadmap_tasks" table.
	RoadmapTasksTable = &schema.Table{
		Name:       "roadmap_tasks",
		Columns:    RoadmapTasksColumns,
		PrimaryKey: []*schema.Column{RoadmapTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "roadmap_tasks_roadmaps_tasks",
				Columns:    []*schema.Column{RoadmapTasksColumns[2]},
				RefColumns: []*schema.Column{RoadmapsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "roadmap_tasks_tasks_roadmap_tasks",
				Columns:    []*schema.Column{RoadmapTasksColumns[3]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roadmaptask_roadmap_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{RoadmapTasksColumns[2], RoadmapTasksColumns[3]},
			},
			{
				Name:    "roadmaptask_roadmap_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{RoadmapTasksColumns[2], RoadmapTasksColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "languages", Type: field.TypeJSON},
		{Name: "optimal_solution", Type: field.TypeJSON},
		{Name: "reference_image_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearnersTable,
		ProgressesTable,
		RoadmapsTable,
		RoadmapTasksTable,
		TasksTable,
	}
)

func init() {
	ProgressesTable.ForeignKeys[0].RefTable = LearnersTable
	ProgressesTable.ForeignKeys[1].RefTable = TasksTable
	RoadmapTasksTable.ForeignKeys[0].RefTable = RoadmapsTable
	RoadmapTasksTable.ForeignKeys[1].RefTable = TasksTable
}
