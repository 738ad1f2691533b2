// file: internals/features/admissions/interviews/service/template_catalog.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/admissions/interviews/model"
)

/* ============================================
   Template catalog
============================================ */

type TemplateCatalog struct {
	DB *gorm.DB
}

func NewTemplateCatalog(db *gorm.DB) *TemplateCatalog {
	return &TemplateCatalog{DB: db}
}

// ListActive returns the current active subject set for a form type, ordered
// by display_order with subject name as tie-break. This ordering is the
// authoritative ordering for every merged interview view.
func (s *TemplateCatalog) ListActive(formType string) ([]model.InterviewSubjectModel, error) {
	var rows []model.InterviewSubjectModel
	err := s.DB.
		Where("interview_subject_form_type = ? AND interview_subject_is_active = ?", formType, true).
		Order("interview_subject_display_order ASC, interview_subject_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

/* ============================================
   Full replace (admin submits the whole list)
============================================ */

// SubjectSpec is the desired active subject set, in submitted order.
type SubjectSpec struct {
	Name     string
	MaxMarks int
}

// ReplacePlan is the write set derived from (existing rows, submitted list).
type ReplacePlan struct {
	Updates       []model.InterviewSubjectModel
	Inserts       []model.InterviewSubjectModel
	DeactivateIDs []uuid.UUID
}

// BuildReplacePlan computes the full-replace write set:
//   - existing rows (active or retired) matched by exact name are updated in
//     place: max marks, display order = position in the submitted list, and
//     reactivated if needed;
//   - names with no existing row become inserts;
//   - active rows absent from the submitted list are deactivated, never
//     deleted, so historical marks keep their name linkage.
//
// Duplicate existing rows for one name (a tolerated catalog violation) leave
// only the first matched row active.
func BuildReplacePlan(formType string, existing []model.InterviewSubjectModel, specs []SubjectSpec) ReplacePlan {
	matched := make(map[uuid.UUID]bool, len(existing))
	byName := make(map[string]*model.InterviewSubjectModel, len(existing))
	for i := range existing {
		row := &existing[i]
		if _, ok := byName[row.InterviewSubjectName]; !ok {
			byName[row.InterviewSubjectName] = row
		}
	}

	var plan ReplacePlan
	seen := make(map[string]bool, len(specs))
	order := 0
	for _, spec := range specs {
		if seen[spec.Name] {
			continue // a name submitted twice collapses to its first entry
		}
		seen[spec.Name] = true
		order++

		maxMarks := spec.MaxMarks
		if maxMarks <= 0 {
			maxMarks = constants.DefaultInterviewMaxMarks
		}

		if row, ok := byName[spec.Name]; ok {
			matched[row.InterviewSubjectID] = true
			upd := *row
			upd.InterviewSubjectMaxMarks = maxMarks
			upd.InterviewSubjectDisplayOrder = order
			upd.InterviewSubjectIsActive = true
			plan.Updates = append(plan.Updates, upd)
			continue
		}
		plan.Inserts = append(plan.Inserts, model.InterviewSubjectModel{
			InterviewSubjectFormType:     formType,
			InterviewSubjectName:         spec.Name,
			InterviewSubjectMaxMarks:     maxMarks,
			InterviewSubjectDisplayOrder: order,
			InterviewSubjectIsActive:     true,
		})
	}

	for i := range existing {
		row := &existing[i]
		if row.InterviewSubjectIsActive && !matched[row.InterviewSubjectID] {
			plan.DeactivateIDs = append(plan.DeactivateIDs, row.InterviewSubjectID)
		}
	}
	return plan
}

// Replace applies the full-replace policy for one form type in a single
// transaction and returns the resulting active set in display order.
func (s *TemplateCatalog) Replace(formType string, specs []SubjectSpec) ([]model.InterviewSubjectModel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing []model.InterviewSubjectModel
		if err := tx.
			Where("interview_subject_form_type = ?", formType).
			Order("interview_subject_display_order ASC, interview_subject_name ASC").
			Find(&existing).Error; err != nil {
			return err
		}

		plan := BuildReplacePlan(formType, existing, specs)

		if len(plan.DeactivateIDs) > 0 {
			if err := tx.Model(&model.InterviewSubjectModel{}).
				Where("interview_subject_id IN ?", plan.DeactivateIDs).
				Update("interview_subject_is_active", false).Error; err != nil {
				return err
			}
		}
		for i := range plan.Updates {
			if err := tx.Save(&plan.Updates[i]).Error; err != nil {
				return err
			}
		}
		if len(plan.Inserts) > 0 {
			if err := tx.Create(&plan.Inserts).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.ListActive(formType)
}
