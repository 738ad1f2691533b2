// file: internals/features/admissions/applications/model/plus_one_application_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
)

type PlusOneApplicationModel struct {
	// ============ PK & identity ============
	PlusOneApplicationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:plus_one_application_id" json:"plus_one_application_id"`
	PlusOneApplicationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex;column:plus_one_application_number" json:"plus_one_application_number"`

	// ============ Applicant ============
	PlusOneApplicationApplicantName string    `gorm:"type:text;not null;column:plus_one_application_applicant_name" json:"plus_one_application_applicant_name"`
	PlusOneApplicationDateOfBirth   time.Time `gorm:"type:date;not null;column:plus_one_application_date_of_birth" json:"plus_one_application_date_of_birth"`
	PlusOneApplicationGender        *string   `gorm:"type:varchar(16);column:plus_one_application_gender" json:"plus_one_application_gender,omitempty"`

	// ============ Contact (mobile doubles as the public lookup credential) ============
	PlusOneApplicationMobileNumber string  `gorm:"type:varchar(20);not null;column:plus_one_application_mobile_number" json:"plus_one_application_mobile_number"`
	PlusOneApplicationEmail        *string `gorm:"type:varchar(120);column:plus_one_application_email" json:"plus_one_application_email,omitempty"`

	// ============ Guardians ============
	PlusOneApplicationFatherName string `gorm:"type:text;not null;column:plus_one_application_father_name" json:"plus_one_application_father_name"`
	PlusOneApplicationMotherName string `gorm:"type:text;not null;column:plus_one_application_mother_name" json:"plus_one_application_mother_name"`

	// ============ Address ============
	PlusOneApplicationAddressLine1 string  `gorm:"type:text;not null;column:plus_one_application_address_line1" json:"plus_one_application_address_line1"`
	PlusOneApplicationAddressLine2 *string `gorm:"type:text;column:plus_one_application_address_line2" json:"plus_one_application_address_line2,omitempty"`
	PlusOneApplicationDistrict     string  `gorm:"type:varchar(64);not null;column:plus_one_application_district" json:"plus_one_application_district"`
	PlusOneApplicationPincode      string  `gorm:"type:varchar(10);not null;column:plus_one_application_pincode" json:"plus_one_application_pincode"`

	// ============ Prior school & qualifying exam ============
	PlusOneApplicationPreviousSchool     string `gorm:"type:text;not null;column:plus_one_application_previous_school" json:"plus_one_application_previous_school"`
	PlusOneApplicationQualifyingBoard    string `gorm:"type:varchar(32);not null;column:plus_one_application_qualifying_board" json:"plus_one_application_qualifying_board"`
	PlusOneApplicationQualifyingRegNo    string `gorm:"type:varchar(32);not null;column:plus_one_application_qualifying_reg_no" json:"plus_one_application_qualifying_reg_no"`
	PlusOneApplicationQualifyingExamYear int    `gorm:"type:integer;not null;column:plus_one_application_qualifying_exam_year" json:"plus_one_application_qualifying_exam_year"`
	// Subject-wise SSLC grades, e.g. {"English":"A+","Maths":"A"}
	PlusOneApplicationQualifyingGrades datatypes.JSON `gorm:"type:jsonb;column:plus_one_application_qualifying_grades" json:"plus_one_application_qualifying_grades,omitempty"`

	// ============ Streams ============
	// Ordered stream preferences, e.g. {science,commerce}
	PlusOneApplicationPreferredStreams pq.StringArray `gorm:"type:text[];column:plus_one_application_preferred_streams" json:"plus_one_application_preferred_streams,omitempty"`
	PlusOneApplicationAllottedStream   *string        `gorm:"type:varchar(32);column:plus_one_application_allotted_stream" json:"plus_one_application_allotted_stream,omitempty"`

	// ============ Workflow ============
	PlusOneApplicationStatus string `gorm:"type:varchar(32);not null;default:'submitted';column:plus_one_application_status" json:"plus_one_application_status"`

	// ============ Audit / Soft delete ============
	PlusOneApplicationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:plus_one_application_created_at" json:"plus_one_application_created_at"`
	PlusOneApplicationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:plus_one_application_updated_at" json:"plus_one_application_updated_at"`
	PlusOneApplicationDeletedAt gorm.DeletedAt `gorm:"column:plus_one_application_deleted_at;index" json:"plus_one_application_deleted_at,omitempty"`
}

func (PlusOneApplicationModel) TableName() string { return "plus_one_applications" }

// ============ Hooks: light normalization ============
func (m *PlusOneApplicationModel) BeforeSave(tx *gorm.DB) error {
	m.PlusOneApplicationApplicantName = strings.TrimSpace(m.PlusOneApplicationApplicantName)
	m.PlusOneApplicationMobileNumber = strings.TrimSpace(m.PlusOneApplicationMobileNumber)
	m.PlusOneApplicationFatherName = strings.TrimSpace(m.PlusOneApplicationFatherName)
	m.PlusOneApplicationMotherName = strings.TrimSpace(m.PlusOneApplicationMotherName)
	m.PlusOneApplicationPreviousSchool = strings.TrimSpace(m.PlusOneApplicationPreviousSchool)
	m.PlusOneApplicationQualifyingRegNo = strings.TrimSpace(m.PlusOneApplicationQualifyingRegNo)

	if m.PlusOneApplicationStatus == "" {
		m.PlusOneApplicationStatus = constants.StatusSubmitted
	}
	if m.PlusOneApplicationEmail != nil {
		e := strings.TrimSpace(*m.PlusOneApplicationEmail)
		if e == "" {
			m.PlusOneApplicationEmail = nil
		} else {
			m.PlusOneApplicationEmail = &e
		}
	}
	if m.PlusOneApplicationAddressLine2 != nil {
		a := strings.TrimSpace(*m.PlusOneApplicationAddressLine2)
		if a == "" {
			m.PlusOneApplicationAddressLine2 = nil
		} else {
			m.PlusOneApplicationAddressLine2 = &a
		}
	}
	if m.PlusOneApplicationAllottedStream != nil {
		s := strings.TrimSpace(*m.PlusOneApplicationAllottedStream)
		if s == "" {
			m.PlusOneApplicationAllottedStream = nil
		} else {
			m.PlusOneApplicationAllottedStream = &s
		}
	}
	return nil
}
