// file: internals/features/admissions/applications/controller/application_public_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/admissions/applications/dto"
	service "sekolahku_backend/internals/features/admissions/applications/service"
	settingsService "sekolahku_backend/internals/features/admissions/settings/service"
	helper "sekolahku_backend/internals/helpers"
)

/* ============================================
   Controller (public submission)
============================================ */

type ApplicationPublicController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     *service.ApplicationStore
	Settings  *settingsService.SettingsService
}

func NewApplicationPublicController(db *gorm.DB, v *validator.Validate) *ApplicationPublicController {
	if v == nil {
		v = validator.New()
	}
	return &ApplicationPublicController{
		DB:        db,
		Validator: v,
		Store:     service.NewApplicationStore(db),
		Settings:  settingsService.NewSettingsService(db),
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

// guardFormOpen reports the admission window state as a domain error, never a
// written response: the handler decides the status code and MUST stop on a
// non-nil return.
func (ctl *ApplicationPublicController) guardFormOpen(formType string) error {
	open, err := ctl.Settings.IsFormOpen(formType)
	if err != nil {
		return err
	}
	if !open {
		return settingsService.ErrFormClosed
	}
	return nil
}

func (ctl *ApplicationPublicController) denyClosedForm(c *fiber.Ctx, err error) error {
	if errors.Is(err, settingsService.ErrFormClosed) {
		return helper.JsonError(c, fiber.StatusForbidden, "Admissions are currently closed for this form")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check admission window")
}

/* ============================================
   SUBMIT (KG/STD)
   POST /api/public/admissions/kg-std
============================================ */

func (ctl *ApplicationPublicController) SubmitKgStd(c *fiber.Ctx) error {
	if err := ctl.guardFormOpen(constants.FormTypeKgStd); err != nil {
		return ctl.denyClosedForm(c, err)
	}

	var p dto.KgStdApplicationCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	m := p.ToModel()
	if err := ctl.Store.CreateKgStd(&m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application submitted", fiber.Map{
		"application_number": m.KgStdApplicationNumber,
		"status":             m.KgStdApplicationStatus,
	})
}

/* ============================================
   SUBMIT (Plus One)
   POST /api/public/admissions/plus-one
============================================ */

func (ctl *ApplicationPublicController) SubmitPlusOne(c *fiber.Ctx) error {
	if err := ctl.guardFormOpen(constants.FormTypePlusOne); err != nil {
		return ctl.denyClosedForm(c, err)
	}

	var p dto.PlusOneApplicationCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	m := p.ToModel()
	if err := ctl.Store.CreatePlusOne(&m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}
	return helper.JsonCreated(c, "Application submitted", fiber.Map{
		"application_number": m.PlusOneApplicationNumber,
		"status":             m.PlusOneApplicationStatus,
	})
}
