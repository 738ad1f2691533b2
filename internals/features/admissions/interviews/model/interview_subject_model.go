// file: internals/features/admissions/interviews/model/interview_subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
)

// Admin-managed interview subject template, per form type. Versioned
// independently from any application's recorded marks: deactivation keeps the
// row so historical marks stay linked by name.
type InterviewSubjectModel struct {
	InterviewSubjectID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:interview_subject_id" json:"interview_subject_id"`
	InterviewSubjectFormType string    `gorm:"type:varchar(16);not null;index:idx_interview_subjects_form_name;column:interview_subject_form_type" json:"interview_subject_form_type"`
	// (form_type, name) should be unique among active rows; duplicates are
	// tolerated on read, never a crash.
	InterviewSubjectName string `gorm:"type:text;not null;index:idx_interview_subjects_form_name;column:interview_subject_name" json:"interview_subject_name"`

	InterviewSubjectMaxMarks     int  `gorm:"type:integer;not null;default:25;column:interview_subject_max_marks" json:"interview_subject_max_marks"`
	InterviewSubjectDisplayOrder int  `gorm:"type:integer;not null;default:0;column:interview_subject_display_order" json:"interview_subject_display_order"`
	InterviewSubjectIsActive     bool `gorm:"not null;default:true;column:interview_subject_is_active" json:"interview_subject_is_active"`

	InterviewSubjectCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:interview_subject_created_at" json:"interview_subject_created_at"`
	InterviewSubjectUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:interview_subject_updated_at" json:"interview_subject_updated_at"`
}

func (InterviewSubjectModel) TableName() string { return "interview_subjects" }

func (m *InterviewSubjectModel) BeforeSave(tx *gorm.DB) error {
	m.InterviewSubjectFormType = strings.TrimSpace(m.InterviewSubjectFormType)
	// Subject names are stored as-is (no trimming): marks link to templates by
	// exact string match, so silent normalization here would orphan history.
	if m.InterviewSubjectMaxMarks <= 0 {
		m.InterviewSubjectMaxMarks = constants.DefaultInterviewMaxMarks
	}
	return nil
}
