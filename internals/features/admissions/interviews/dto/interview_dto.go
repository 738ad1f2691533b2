// file: internals/features/admissions/interviews/dto/interview_dto.go
package dto

import (
	"sekolahku_backend/internals/features/admissions/interviews/model"
	service "sekolahku_backend/internals/features/admissions/interviews/service"
)

/* =======================
   Subject catalog
======================= */

type InterviewSubjectItemDTO struct {
	// Stored and matched verbatim — no trimming or case folding.
	SubjectName string `json:"subject_name" validate:"required"`
	MaxMarks    *int   `json:"max_marks,omitempty" validate:"omitempty,min=1,max=500"`
}

// The admin UI always submits the whole list; the backend applies it as a
// full replace (deactivate missing, update matched, insert new).
type InterviewSubjectsReplaceDTO struct {
	Subjects []InterviewSubjectItemDTO `json:"subjects" validate:"required,dive"`
}

func (p *InterviewSubjectsReplaceDTO) ToSpecs() []service.SubjectSpec {
	specs := make([]service.SubjectSpec, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		maxMarks := 0
		if s.MaxMarks != nil {
			maxMarks = *s.MaxMarks
		}
		specs = append(specs, service.SubjectSpec{Name: s.SubjectName, MaxMarks: maxMarks})
	}
	return specs
}

/* =======================
   Score sheet
======================= */

type InterviewMarkItemDTO struct {
	SubjectName   string `json:"subject_name"   validate:"required"`
	MarksObtained int    `json:"marks_obtained" validate:"min=0"`
	MaxMarks      int    `json:"max_marks"      validate:"required,min=1"`
}

type InterviewMarksSaveDTO struct {
	Marks []InterviewMarkItemDTO `json:"marks" validate:"dive"`
}

func (p *InterviewMarksSaveDTO) ToModels() []model.InterviewMarkModel {
	rows := make([]model.InterviewMarkModel, 0, len(p.Marks))
	for _, m := range p.Marks {
		rows = append(rows, model.InterviewMarkModel{
			InterviewMarkSubjectName:   m.SubjectName,
			InterviewMarkMarksObtained: m.MarksObtained,
			InterviewMarkMaxMarks:      m.MaxMarks,
		})
	}
	return rows
}
