package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/admissions/interviews/model"
)

func subject(name string, maxMarks, order int) model.InterviewSubjectModel {
	return model.InterviewSubjectModel{
		InterviewSubjectID:           uuid.New(),
		InterviewSubjectFormType:     constants.FormTypeKgStd,
		InterviewSubjectName:         name,
		InterviewSubjectMaxMarks:     maxMarks,
		InterviewSubjectDisplayOrder: order,
		InterviewSubjectIsActive:     true,
	}
}

func mark(subjectName string, obtained, maxMarks int) model.InterviewMarkModel {
	return model.InterviewMarkModel{
		InterviewMarkID:              uuid.New(),
		InterviewMarkApplicationID:   uuid.New(),
		InterviewMarkApplicationType: constants.FormTypeKgStd,
		InterviewMarkSubjectName:     subjectName,
		InterviewMarkMarksObtained:   obtained,
		InterviewMarkMaxMarks:        maxMarks,
	}
}

func TestMergeInterviewResults_NoScoresYieldsZeroes(t *testing.T) {
	templates := []model.InterviewSubjectModel{
		subject("English", 25, 1),
		subject("Maths", 25, 2),
	}

	got := MergeInterviewResults(templates, nil)

	assert.Equal(t, []InterviewResult{
		{SubjectName: "English", MaxMarks: 25, MarksObtained: 0},
		{SubjectName: "Maths", MaxMarks: 25, MarksObtained: 0},
	}, got)
}

func TestMergeInterviewResults_PartialScores(t *testing.T) {
	templates := []model.InterviewSubjectModel{
		subject("English", 25, 1),
		subject("Maths", 25, 2),
	}
	marks := []model.InterviewMarkModel{mark("English", 20, 25)}

	got := MergeInterviewResults(templates, marks)

	assert.Equal(t, []InterviewResult{
		{SubjectName: "English", MaxMarks: 25, MarksObtained: 20},
		{SubjectName: "Maths", MaxMarks: 25, MarksObtained: 0},
	}, got)
}

func TestMergeInterviewResults_OrphansExcluded(t *testing.T) {
	// "Maths" was retired from the catalog; its recorded mark stays in the
	// ledger but must not surface in the merged view.
	templates := []model.InterviewSubjectModel{subject("English", 25, 1)}
	marks := []model.InterviewMarkModel{
		mark("English", 18, 25),
		mark("Maths", 22, 25),
	}

	got := MergeInterviewResults(templates, marks)

	assert.Len(t, got, 1)
	assert.Equal(t, "English", got[0].SubjectName)
}

func TestMergeInterviewResults_ExactMatchOnly(t *testing.T) {
	// matching is case-sensitive and untrimmed; anything else orphans history
	templates := []model.InterviewSubjectModel{
		subject("English", 25, 1),
		subject("Maths", 25, 2),
	}
	marks := []model.InterviewMarkModel{
		mark("english", 20, 25),  // wrong case
		mark("Maths ", 15, 25),   // trailing space
	}

	got := MergeInterviewResults(templates, marks)

	assert.Equal(t, []InterviewResult{
		{SubjectName: "English", MaxMarks: 25, MarksObtained: 0},
		{SubjectName: "Maths", MaxMarks: 25, MarksObtained: 0},
	}, got)
}

func TestMergeInterviewResults_ScoredSubjectKeepsRecordedMax(t *testing.T) {
	// the template max changed after grading; the recorded max wins for
	// scored subjects, the current max only backs unscored ones
	templates := []model.InterviewSubjectModel{
		subject("English", 50, 1),
		subject("Maths", 50, 2),
	}
	marks := []model.InterviewMarkModel{mark("English", 20, 25)}

	got := MergeInterviewResults(templates, marks)

	assert.Equal(t, 25, got[0].MaxMarks)
	assert.Equal(t, 20, got[0].MarksObtained)
	assert.Equal(t, 50, got[1].MaxMarks)
}

func TestMergeInterviewResults_DuplicateTemplatesCollapse(t *testing.T) {
	// duplicate active names are a tolerated catalog violation: one row per
	// subject in the view, first occurrence wins
	templates := []model.InterviewSubjectModel{
		subject("English", 25, 1),
		subject("English", 30, 2),
	}

	got := MergeInterviewResults(templates, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, 25, got[0].MaxMarks)
}

func TestMergeInterviewResults_EmptyTemplates(t *testing.T) {
	marks := []model.InterviewMarkModel{mark("English", 20, 25)}
	assert.Empty(t, MergeInterviewResults(nil, marks))
}
