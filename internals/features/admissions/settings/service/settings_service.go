// file: internals/features/admissions/settings/service/settings_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/admissions/settings/model"
)

// ErrFormClosed: the admission window for a form type is not accepting
// submissions (closed explicitly, or never opened at all).
var ErrFormClosed = errors.New("admission form closed")

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// GetByFormType returns (nil, nil) when no row exists for the form type.
// Metadata is supplementary: a missing row is a valid state, not an error.
func (s *SettingsService) GetByFormType(formType string) (*model.AdmissionFormSettingModel, error) {
	var m model.AdmissionFormSettingModel
	err := s.DB.
		Where("admission_form_setting_form_type = ?", formType).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AcademicYearFor resolves the academic year for a form type; empty string
// when not configured.
func (s *SettingsService) AcademicYearFor(formType string) (string, error) {
	m, err := s.GetByFormType(formType)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", nil
	}
	return m.AdmissionFormSettingAcademicYear, nil
}

// IsFormOpen reports whether public submission for the form type is accepting
// entries. No settings row means the form was never opened.
func (s *SettingsService) IsFormOpen(formType string) (bool, error) {
	m, err := s.GetByFormType(formType)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}
	return m.AdmissionFormSettingIsOpen, nil
}

// Upsert creates or updates the single row for a form type.
func (s *SettingsService) Upsert(in *model.AdmissionFormSettingModel) error {
	existing, err := s.GetByFormType(in.AdmissionFormSettingFormType)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.DB.Create(in).Error
	}
	existing.AdmissionFormSettingAcademicYear = in.AdmissionFormSettingAcademicYear
	existing.AdmissionFormSettingIsOpen = in.AdmissionFormSettingIsOpen
	if in.AdmissionFormSettingExtra != nil {
		existing.AdmissionFormSettingExtra = in.AdmissionFormSettingExtra
	}
	if err := s.DB.Save(existing).Error; err != nil {
		return err
	}
	*in = *existing
	return nil
}
