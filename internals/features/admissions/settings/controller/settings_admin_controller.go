// file: internals/features/admissions/settings/controller/settings_admin_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/admissions/settings/dto"
	model "sekolahku_backend/internals/features/admissions/settings/model"
	service "sekolahku_backend/internals/features/admissions/settings/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type SettingsAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.SettingsService
}

func NewSettingsAdminController(db *gorm.DB, v *validator.Validate) *SettingsAdminController {
	if v == nil {
		v = validator.New()
	}
	return &SettingsAdminController{DB: db, Validator: v, Service: service.NewSettingsService(db)}
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

/* ============================================
   LIST
   GET /api/a/admissions/settings
============================================ */

func (ctl *SettingsAdminController) List(c *fiber.Ctx) error {
	var rows []model.AdmissionFormSettingModel
	if err := ctl.DB.
		Order("admission_form_setting_form_type ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ============================================
   UPSERT (per form type)
   PUT /api/a/admissions/settings/:form_type
============================================ */

func (ctl *SettingsAdminController) Upsert(c *fiber.Ctx) error {
	formType := c.Params("form_type")
	if !constants.IsValidFormType(formType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown form type")
	}

	var p dto.AdmissionFormSettingUpsertDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	m := p.ToModel(formType)
	if err := ctl.Service.Upsert(&m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save settings")
	}
	return helper.JsonUpdated(c, "Admission form settings saved", m)
}
