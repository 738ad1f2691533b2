// file: internals/features/admissions/interviews/service/reconcile.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/admissions/interviews/model"
)

// InterviewResult is one row of the merged display/edit view.
type InterviewResult struct {
	SubjectName   string `json:"subject_name"`
	MaxMarks      int    `json:"max_marks"`
	MarksObtained int    `json:"marks_obtained"`
}

// MergeInterviewResults joins the current template snapshot with whatever
// marks exist for one application. The templates are authoritative for the
// subject set and the ordering; marks attach by EXACT subject-name match
// (case-sensitive, no trimming — that is the contract, not an oversight).
//
//   - scored subject: the recorded marks and the recorded max are surfaced;
//   - unscored subject: marks 0 with the template's current max;
//   - orphaned marks (no matching active template): excluded from the view,
//     still present in storage for audit.
//
// Templates must already be in display order; duplicate active names collapse
// to their first occurrence so the view has exactly one row per subject.
func MergeInterviewResults(templates []model.InterviewSubjectModel, marks []model.InterviewMarkModel) []InterviewResult {
	byName := make(map[string]*model.InterviewMarkModel, len(marks))
	for i := range marks {
		m := &marks[i]
		if _, ok := byName[m.InterviewMarkSubjectName]; !ok {
			byName[m.InterviewMarkSubjectName] = m
		}
	}

	out := make([]InterviewResult, 0, len(templates))
	seen := make(map[string]bool, len(templates))
	for _, t := range templates {
		if seen[t.InterviewSubjectName] {
			continue
		}
		seen[t.InterviewSubjectName] = true

		if m, ok := byName[t.InterviewSubjectName]; ok {
			out = append(out, InterviewResult{
				SubjectName:   t.InterviewSubjectName,
				MaxMarks:      m.InterviewMarkMaxMarks,
				MarksObtained: m.InterviewMarkMarksObtained,
			})
			continue
		}
		out = append(out, InterviewResult{
			SubjectName:   t.InterviewSubjectName,
			MaxMarks:      t.InterviewSubjectMaxMarks,
			MarksObtained: 0,
		})
	}
	return out
}

/* ============================================
   Reconciliation over live storage
============================================ */

type ReconciliationService struct {
	Templates *TemplateCatalog
	Scores    *ScoreLedger
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{
		Templates: NewTemplateCatalog(db),
		Scores:    NewScoreLedger(db),
	}
}

// ResultsFor produces the merged interview view for one application.
// A template-fetch failure fails the whole operation; an empty template set
// is the valid "interview not yet configured" state and yields an empty view;
// a score-fetch failure propagates — it is never downgraded to "no scores".
func (s *ReconciliationService) ResultsFor(applicationID uuid.UUID, formType string) ([]InterviewResult, error) {
	templates, err := s.Templates.ListActive(formType)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return []InterviewResult{}, nil
	}
	marks, err := s.Scores.GetScores(applicationID)
	if err != nil {
		return nil, err
	}
	return MergeInterviewResults(templates, marks), nil
}
