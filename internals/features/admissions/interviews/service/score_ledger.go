// file: internals/features/admissions/interviews/service/score_ledger.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/admissions/interviews/model"
)

var ErrMarksOutOfRange = errors.New("marks out of range")

/* ============================================
   Score ledger
============================================ */

type ScoreLedger struct {
	DB *gorm.DB
}

func NewScoreLedger(db *gorm.DB) *ScoreLedger {
	return &ScoreLedger{DB: db}
}

// GetScores returns every recorded mark for an application, orphans included.
// Unordered at this layer; ordering belongs to the merged view.
func (s *ScoreLedger) GetScores(applicationID uuid.UUID) ([]model.InterviewMarkModel, error) {
	var rows []model.InterviewMarkModel
	err := s.DB.
		Where("interview_mark_application_id = ?", applicationID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ValidateMarks rejects the whole set when any record is invalid: marks must
// sit in [0, max_marks] and max_marks must be positive. Out-of-range values
// are never clamped.
func ValidateMarks(marks []model.InterviewMarkModel) error {
	for _, m := range marks {
		if m.InterviewMarkSubjectName == "" {
			return fmt.Errorf("%w: empty subject name", ErrMarksOutOfRange)
		}
		if m.InterviewMarkMaxMarks <= 0 {
			return fmt.Errorf("%w: %q has non-positive max marks", ErrMarksOutOfRange, m.InterviewMarkSubjectName)
		}
		if m.InterviewMarkMarksObtained < 0 || m.InterviewMarkMarksObtained > m.InterviewMarkMaxMarks {
			return fmt.Errorf("%w: %q got %d of %d", ErrMarksOutOfRange,
				m.InterviewMarkSubjectName, m.InterviewMarkMarksObtained, m.InterviewMarkMaxMarks)
		}
	}
	return nil
}

// SaveScores replaces the full mark set for (application, type) atomically:
// delete everything, insert the new list, one transaction. A failure midway
// rolls back to the previous complete set — concurrent readers never see a
// partial mix. Saving an identical list twice is a visible no-op (row ids
// change, content does not).
func (s *ScoreLedger) SaveScores(applicationID uuid.UUID, applicationType string, marks []model.InterviewMarkModel) error {
	if err := ValidateMarks(marks); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("interview_mark_application_id = ? AND interview_mark_application_type = ?",
				applicationID, applicationType).
			Delete(&model.InterviewMarkModel{}).Error; err != nil {
			return err
		}
		if len(marks) == 0 {
			return nil
		}
		rows := make([]model.InterviewMarkModel, len(marks))
		for i, m := range marks {
			rows[i] = model.InterviewMarkModel{
				InterviewMarkID:              uuid.New(),
				InterviewMarkApplicationID:   applicationID,
				InterviewMarkApplicationType: applicationType,
				InterviewMarkSubjectName:     m.InterviewMarkSubjectName,
				InterviewMarkMarksObtained:   m.InterviewMarkMarksObtained,
				InterviewMarkMaxMarks:        m.InterviewMarkMaxMarks,
			}
		}
		return tx.Create(&rows).Error
	})
}
