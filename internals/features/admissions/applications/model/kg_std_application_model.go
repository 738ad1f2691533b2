// file: internals/features/admissions/applications/model/kg_std_application_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
)

type KgStdApplicationModel struct {
	// ============ PK & identity ============
	KgStdApplicationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:kg_std_application_id" json:"kg_std_application_id"`
	KgStdApplicationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex;column:kg_std_application_number" json:"kg_std_application_number"`

	// ============ Applicant ============
	KgStdApplicationApplicantName string    `gorm:"type:text;not null;column:kg_std_application_applicant_name" json:"kg_std_application_applicant_name"`
	KgStdApplicationDateOfBirth   time.Time `gorm:"type:date;not null;column:kg_std_application_date_of_birth" json:"kg_std_application_date_of_birth"`
	KgStdApplicationGender        *string   `gorm:"type:varchar(16);column:kg_std_application_gender" json:"kg_std_application_gender,omitempty"`
	// Class applied for, e.g. "LKG", "UKG", "STD 1" .. "STD 10"
	KgStdApplicationAppliedClass string `gorm:"type:varchar(16);not null;column:kg_std_application_applied_class" json:"kg_std_application_applied_class"`

	// ============ Contact (mobile doubles as the public lookup credential) ============
	KgStdApplicationMobileNumber string  `gorm:"type:varchar(20);not null;column:kg_std_application_mobile_number" json:"kg_std_application_mobile_number"`
	KgStdApplicationEmail        *string `gorm:"type:varchar(120);column:kg_std_application_email" json:"kg_std_application_email,omitempty"`

	// ============ Guardians ============
	KgStdApplicationFatherName string `gorm:"type:text;not null;column:kg_std_application_father_name" json:"kg_std_application_father_name"`
	KgStdApplicationMotherName string `gorm:"type:text;not null;column:kg_std_application_mother_name" json:"kg_std_application_mother_name"`

	// ============ Address ============
	KgStdApplicationAddressLine1 string  `gorm:"type:text;not null;column:kg_std_application_address_line1" json:"kg_std_application_address_line1"`
	KgStdApplicationAddressLine2 *string `gorm:"type:text;column:kg_std_application_address_line2" json:"kg_std_application_address_line2,omitempty"`
	KgStdApplicationDistrict     string  `gorm:"type:varchar(64);not null;column:kg_std_application_district" json:"kg_std_application_district"`
	KgStdApplicationPincode      string  `gorm:"type:varchar(10);not null;column:kg_std_application_pincode" json:"kg_std_application_pincode"`

	// ============ Workflow ============
	KgStdApplicationStatus string `gorm:"type:varchar(32);not null;default:'submitted';column:kg_std_application_status" json:"kg_std_application_status"`

	// ============ Audit / Soft delete ============
	KgStdApplicationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:kg_std_application_created_at" json:"kg_std_application_created_at"`
	KgStdApplicationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:kg_std_application_updated_at" json:"kg_std_application_updated_at"`
	KgStdApplicationDeletedAt gorm.DeletedAt `gorm:"column:kg_std_application_deleted_at;index" json:"kg_std_application_deleted_at,omitempty"`
}

func (KgStdApplicationModel) TableName() string { return "kg_std_applications" }

// ============ Hooks: light normalization ============
func (m *KgStdApplicationModel) BeforeSave(tx *gorm.DB) error {
	m.KgStdApplicationApplicantName = strings.TrimSpace(m.KgStdApplicationApplicantName)
	m.KgStdApplicationMobileNumber = strings.TrimSpace(m.KgStdApplicationMobileNumber)
	m.KgStdApplicationFatherName = strings.TrimSpace(m.KgStdApplicationFatherName)
	m.KgStdApplicationMotherName = strings.TrimSpace(m.KgStdApplicationMotherName)

	if m.KgStdApplicationStatus == "" {
		m.KgStdApplicationStatus = constants.StatusSubmitted
	}
	if m.KgStdApplicationEmail != nil {
		e := strings.TrimSpace(*m.KgStdApplicationEmail)
		if e == "" {
			m.KgStdApplicationEmail = nil
		} else {
			m.KgStdApplicationEmail = &e
		}
	}
	if m.KgStdApplicationAddressLine2 != nil {
		a := strings.TrimSpace(*m.KgStdApplicationAddressLine2)
		if a == "" {
			m.KgStdApplicationAddressLine2 = nil
		} else {
			m.KgStdApplicationAddressLine2 = &a
		}
	}
	return nil
}
