// file: internals/features/admissions/interviews/controller/interview_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/admissions/interviews/dto"
	service "sekolahku_backend/internals/features/admissions/interviews/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type InterviewAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Catalog   *service.TemplateCatalog
	Ledger    *service.ScoreLedger
	Recon     *service.ReconciliationService
}

func NewInterviewAdminController(db *gorm.DB, v *validator.Validate) *InterviewAdminController {
	if v == nil {
		v = validator.New()
	}
	return &InterviewAdminController{
		DB:        db,
		Validator: v,
		Catalog:   service.NewTemplateCatalog(db),
		Ledger:    service.NewScoreLedger(db),
		Recon:     service.NewReconciliationService(db),
	}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func formTypeParam(c *fiber.Ctx) (string, error) {
	ft := c.Params("form_type")
	if !constants.IsValidFormType(ft) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Unknown form type")
	}
	return ft, nil
}

/* ============================================
   SUBJECT CATALOG
   GET /api/a/admissions/interview-subjects/:form_type
   PUT /api/a/admissions/interview-subjects/:form_type
============================================ */

func (ctl *InterviewAdminController) ListSubjects(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	rows, err := ctl.Catalog.ListActive(ft)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load interview subjects")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *InterviewAdminController) ReplaceSubjects(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var p dto.InterviewSubjectsReplaceDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	rows, err := ctl.Catalog.Replace(ft, p.ToSpecs())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save interview subjects")
	}
	return helper.JsonUpdated(c, "Interview subjects saved", rows)
}

/* ============================================
   SCORE SHEET (merged view for marks entry)
   GET /api/a/admissions/applications/:form_type/:id/interview-scores
   PUT /api/a/admissions/applications/:form_type/:id/interview-scores
============================================ */

func (ctl *InterviewAdminController) GetScoreSheet(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	results, err := ctl.Recon.ResultsFor(id, ft)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load score sheet")
	}
	return helper.JsonOK(c, "ok", results)
}

func (ctl *InterviewAdminController) SaveScores(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var p dto.InterviewMarksSaveDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := ctl.Ledger.SaveScores(id, ft, p.ToModels()); err != nil {
		if errors.Is(err, service.ErrMarksOutOfRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		// persistence failures surface to the admin UI so it can retry
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save interview scores")
	}

	results, err := ctl.Recon.ResultsFor(id, ft)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Scores saved but reload failed")
	}
	return helper.JsonUpdated(c, "Interview scores saved", results)
}

/* ============================================
   RAW LEDGER (audit/history; orphans included)
   GET /api/a/admissions/applications/:form_type/:id/interview-scores/history
============================================ */

func (ctl *InterviewAdminController) ScoreHistory(c *fiber.Ctx) error {
	if _, err := formTypeParam(c); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	rows, err := ctl.Ledger.GetScores(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load score history")
	}
	return helper.JsonOK(c, "ok", rows)
}
