// file: internals/features/admissions/settings/model/admission_form_setting_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// One row per form type. Read-only from the public lookup's perspective.
type AdmissionFormSettingModel struct {
	AdmissionFormSettingID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_form_setting_id" json:"admission_form_setting_id"`
	AdmissionFormSettingFormType string    `gorm:"type:varchar(16);not null;uniqueIndex;column:admission_form_setting_form_type" json:"admission_form_setting_form_type"`

	// e.g. "2026-27"
	AdmissionFormSettingAcademicYear string `gorm:"type:varchar(16);not null;column:admission_form_setting_academic_year" json:"admission_form_setting_academic_year"`
	AdmissionFormSettingIsOpen       bool   `gorm:"not null;default:true;column:admission_form_setting_is_open" json:"admission_form_setting_is_open"`

	// free-form knobs (notice text, seat counts, ...)
	AdmissionFormSettingExtra datatypes.JSON `gorm:"type:jsonb;column:admission_form_setting_extra" json:"admission_form_setting_extra,omitempty"`

	AdmissionFormSettingCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:admission_form_setting_created_at" json:"admission_form_setting_created_at"`
	AdmissionFormSettingUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:admission_form_setting_updated_at" json:"admission_form_setting_updated_at"`
}

func (AdmissionFormSettingModel) TableName() string { return "admission_form_settings" }

func (m *AdmissionFormSettingModel) BeforeSave(tx *gorm.DB) error {
	m.AdmissionFormSettingFormType = strings.TrimSpace(m.AdmissionFormSettingFormType)
	m.AdmissionFormSettingAcademicYear = strings.TrimSpace(m.AdmissionFormSettingAcademicYear)
	return nil
}
