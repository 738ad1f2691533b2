// file: internals/features/admissions/applications/controller/application_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/admissions/applications/dto"
	model "sekolahku_backend/internals/features/admissions/applications/model"
	service "sekolahku_backend/internals/features/admissions/applications/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller (admin back-office)
============================================ */

type ApplicationAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     *service.ApplicationStore
}

func NewApplicationAdminController(db *gorm.DB, v *validator.Validate) *ApplicationAdminController {
	if v == nil {
		v = validator.New()
	}
	return &ApplicationAdminController{DB: db, Validator: v, Store: service.NewApplicationStore(db)}
}

func formTypeParam(c *fiber.Ctx) (string, error) {
	ft := c.Params("form_type")
	if !constants.IsValidFormType(ft) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Unknown form type")
	}
	return ft, nil
}

/* ============================================
   LIST (paginated, filterable)
   GET /api/a/admissions/applications/:form_type?status=&q=&page=&per_page=
============================================ */

func (ctl *ApplicationAdminController) List(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	if ft == constants.FormTypeKgStd {
		tx := ctl.DB.Model(&model.KgStdApplicationModel{})
		if status != "" {
			tx = tx.Where("kg_std_application_status = ?", status)
		}
		if q != "" {
			like := "%" + q + "%"
			tx = tx.Where("kg_std_application_applicant_name ILIKE ? OR kg_std_application_number ILIKE ?", like, like)
		}
		var total int64
		if err := tx.Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
		}
		var rows []model.KgStdApplicationModel
		if err := tx.
			Order("kg_std_application_created_at DESC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
		}
		return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
	}

	tx := ctl.DB.Model(&model.PlusOneApplicationModel{})
	if status != "" {
		tx = tx.Where("plus_one_application_status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("plus_one_application_applicant_name ILIKE ? OR plus_one_application_number ILIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}
	var rows []model.PlusOneApplicationModel
	if err := tx.
		Order("plus_one_application_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ============================================
   DETAIL
   GET /api/a/admissions/applications/:form_type/:id
============================================ */

func (ctl *ApplicationAdminController) Detail(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	if ft == constants.FormTypeKgStd {
		var m model.KgStdApplicationModel
		err := ctl.DB.Where("kg_std_application_id = ?", id).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
		}
		return helper.JsonOK(c, "ok", m)
	}

	var m model.PlusOneApplicationModel
	err = ctl.DB.Where("plus_one_application_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}
	return helper.JsonOK(c, "ok", m)
}

/* ============================================
   STATUS TRANSITION
   PATCH /api/a/admissions/applications/:form_type/:id/status
============================================ */

func (ctl *ApplicationAdminController) UpdateStatus(c *fiber.Ctx) error {
	ft, err := formTypeParam(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var p dto.ApplicationStatusUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.Store.UpdateStatus(ft, id, p.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status")
		case errors.Is(err, service.ErrApplicationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
		}
	}
	return helper.JsonUpdated(c, "Status updated", fiber.Map{"status": p.Status})
}

/* ============================================
   STREAM ALLOTMENT (plus_one only)
   PATCH /api/a/admissions/applications/plus_one/:id/stream
============================================ */

func (ctl *ApplicationAdminController) AllotStream(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var p dto.StreamAllotmentDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.Store.AllotStream(id, p.AllottedStream); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allot stream")
	}
	return helper.JsonUpdated(c, "Stream allotted", fiber.Map{"allotted_stream": p.AllottedStream})
}
