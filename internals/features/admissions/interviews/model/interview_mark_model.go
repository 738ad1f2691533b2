// file: internals/features/admissions/interviews/model/interview_mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Recorded marks for one application. Subject linkage is by name, NOT a
// foreign key to interview_subjects: templates can be renamed or retired
// without breaking history. At most one row per (application_id, subject) —
// enforced by the full delete-then-insert replace on save, not a constraint.
type InterviewMarkModel struct {
	// PK is app-generated (uuid.New in the ledger), not a DB default: rows are
	// always written through the replace path which owns id assignment.
	InterviewMarkID              uuid.UUID `gorm:"type:uuid;primaryKey;column:interview_mark_id" json:"interview_mark_id"`
	InterviewMarkApplicationID   uuid.UUID `gorm:"type:uuid;not null;index:idx_interview_marks_application;column:interview_mark_application_id" json:"interview_mark_application_id"`
	InterviewMarkApplicationType string    `gorm:"type:varchar(16);not null;index:idx_interview_marks_application;column:interview_mark_application_type" json:"interview_mark_application_type"`

	InterviewMarkSubjectName   string `gorm:"type:text;not null;column:interview_mark_subject_name" json:"interview_mark_subject_name"`
	InterviewMarkMarksObtained int    `gorm:"type:integer;not null;column:interview_mark_marks_obtained" json:"interview_mark_marks_obtained"`
	InterviewMarkMaxMarks      int    `gorm:"type:integer;not null;column:interview_mark_max_marks" json:"interview_mark_max_marks"`

	InterviewMarkCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:interview_mark_created_at" json:"interview_mark_created_at"`
	InterviewMarkUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:interview_mark_updated_at" json:"interview_mark_updated_at"`
}

func (InterviewMarkModel) TableName() string { return "interview_marks" }
