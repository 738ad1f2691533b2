// file: internals/features/admissions/settings/dto/settings_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/admissions/settings/model"
)

type AdmissionFormSettingUpsertDTO struct {
	AcademicYear string         `json:"academic_year" validate:"required,min=4,max=16"`
	IsOpen       *bool          `json:"is_open,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
}

func (p *AdmissionFormSettingUpsertDTO) Normalize() {
	p.AcademicYear = strings.TrimSpace(p.AcademicYear)
}

func (p *AdmissionFormSettingUpsertDTO) ToModel(formType string) model.AdmissionFormSettingModel {
	isOpen := true
	if p.IsOpen != nil {
		isOpen = *p.IsOpen
	}
	m := model.AdmissionFormSettingModel{
		AdmissionFormSettingFormType:     formType,
		AdmissionFormSettingAcademicYear: p.AcademicYear,
		AdmissionFormSettingIsOpen:       isOpen,
	}
	if len(p.Extra) > 0 {
		if b, err := json.Marshal(p.Extra); err == nil {
			m.AdmissionFormSettingExtra = datatypes.JSON(b)
		}
	}
	return m
}
