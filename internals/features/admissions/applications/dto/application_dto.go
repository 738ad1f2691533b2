// file: internals/features/admissions/applications/dto/application_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/admissions/applications/model"
)

/* =======================
   Request DTO (public submission)
======================= */

type KgStdApplicationCreateDTO struct {
	ApplicantName string    `json:"applicant_name" validate:"required,min=2"`
	DateOfBirth   time.Time `json:"date_of_birth"  validate:"required"`
	Gender        *string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	AppliedClass  string    `json:"applied_class"  validate:"required,max=16"`
	MobileNumber  string    `json:"mobile_number"  validate:"required,min=10,max=15"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	FatherName    string    `json:"father_name"    validate:"required,min=2"`
	MotherName    string    `json:"mother_name"    validate:"required,min=2"`
	AddressLine1  string    `json:"address_line1"  validate:"required"`
	AddressLine2  *string   `json:"address_line2,omitempty"`
	District      string    `json:"district"       validate:"required"`
	Pincode       string    `json:"pincode"        validate:"required,len=6,numeric"`
}

type PlusOneApplicationCreateDTO struct {
	ApplicantName string    `json:"applicant_name" validate:"required,min=2"`
	DateOfBirth   time.Time `json:"date_of_birth"  validate:"required"`
	Gender        *string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	MobileNumber  string    `json:"mobile_number"  validate:"required,min=10,max=15"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	FatherName    string    `json:"father_name"    validate:"required,min=2"`
	MotherName    string    `json:"mother_name"    validate:"required,min=2"`
	AddressLine1  string    `json:"address_line1"  validate:"required"`
	AddressLine2  *string   `json:"address_line2,omitempty"`
	District      string    `json:"district"       validate:"required"`
	Pincode       string    `json:"pincode"        validate:"required,len=6,numeric"`

	// plus_one only: prior school + qualifying exam are mandatory
	PreviousSchool     string            `json:"previous_school"      validate:"required"`
	QualifyingBoard    string            `json:"qualifying_board"     validate:"required,oneof=SSLC CBSE ICSE OTHER"`
	QualifyingRegNo    string            `json:"qualifying_reg_no"    validate:"required"`
	QualifyingExamYear int               `json:"qualifying_exam_year" validate:"required,min=2000,max=2100"`
	QualifyingGrades   map[string]string `json:"qualifying_grades,omitempty"`
	PreferredStreams   []string          `json:"preferred_streams" validate:"required,min=1,max=4,dive,oneof=science commerce humanities"`
}

func (p *KgStdApplicationCreateDTO) Normalize() {
	p.ApplicantName = strings.TrimSpace(p.ApplicantName)
	p.AppliedClass = strings.TrimSpace(p.AppliedClass)
	p.MobileNumber = strings.TrimSpace(p.MobileNumber)
}

func (p *PlusOneApplicationCreateDTO) Normalize() {
	p.ApplicantName = strings.TrimSpace(p.ApplicantName)
	p.MobileNumber = strings.TrimSpace(p.MobileNumber)
	p.PreviousSchool = strings.TrimSpace(p.PreviousSchool)
	p.QualifyingRegNo = strings.TrimSpace(p.QualifyingRegNo)
}

func (p *KgStdApplicationCreateDTO) ToModel() model.KgStdApplicationModel {
	return model.KgStdApplicationModel{
		KgStdApplicationApplicantName: p.ApplicantName,
		KgStdApplicationDateOfBirth:   p.DateOfBirth,
		KgStdApplicationGender:        p.Gender,
		KgStdApplicationAppliedClass:  p.AppliedClass,
		KgStdApplicationMobileNumber:  p.MobileNumber,
		KgStdApplicationEmail:         p.Email,
		KgStdApplicationFatherName:    p.FatherName,
		KgStdApplicationMotherName:    p.MotherName,
		KgStdApplicationAddressLine1:  p.AddressLine1,
		KgStdApplicationAddressLine2:  p.AddressLine2,
		KgStdApplicationDistrict:      p.District,
		KgStdApplicationPincode:       p.Pincode,
	}
}

func (p *PlusOneApplicationCreateDTO) ToModel() model.PlusOneApplicationModel {
	var grades datatypes.JSON
	if len(p.QualifyingGrades) > 0 {
		// map -> JSONB; datatypes.JSONMap would also work but the column
		// stays a plain jsonb payload on purpose
		if b, err := json.Marshal(p.QualifyingGrades); err == nil {
			grades = datatypes.JSON(b)
		}
	}
	return model.PlusOneApplicationModel{
		PlusOneApplicationApplicantName:      p.ApplicantName,
		PlusOneApplicationDateOfBirth:        p.DateOfBirth,
		PlusOneApplicationGender:             p.Gender,
		PlusOneApplicationMobileNumber:       p.MobileNumber,
		PlusOneApplicationEmail:              p.Email,
		PlusOneApplicationFatherName:         p.FatherName,
		PlusOneApplicationMotherName:         p.MotherName,
		PlusOneApplicationAddressLine1:       p.AddressLine1,
		PlusOneApplicationAddressLine2:       p.AddressLine2,
		PlusOneApplicationDistrict:           p.District,
		PlusOneApplicationPincode:            p.Pincode,
		PlusOneApplicationPreviousSchool:     p.PreviousSchool,
		PlusOneApplicationQualifyingBoard:    p.QualifyingBoard,
		PlusOneApplicationQualifyingRegNo:    p.QualifyingRegNo,
		PlusOneApplicationQualifyingExamYear: p.QualifyingExamYear,
		PlusOneApplicationQualifyingGrades:   grades,
		PlusOneApplicationPreferredStreams:   pq.StringArray(p.PreferredStreams),
	}
}

/* =======================
   Request DTO (admin)
======================= */

type ApplicationStatusUpdateDTO struct {
	Status string `json:"status" validate:"required"`
}

type StreamAllotmentDTO struct {
	AllottedStream string `json:"allotted_stream" validate:"required,oneof=science commerce humanities"`
}

/* =======================
   Public payload mappers
======================= */

// ToPublicMap flattens a kg_std row into the shape the public status endpoint
// returns. Nil-valued fields are kept here; the caller strips them.
func ToPublicMapKgStd(m *model.KgStdApplicationModel) map[string]any {
	return map[string]any{
		"application_number": m.KgStdApplicationNumber,
		"applicant_name":     m.KgStdApplicationApplicantName,
		"date_of_birth":      m.KgStdApplicationDateOfBirth.Format("2006-01-02"),
		"gender":             m.KgStdApplicationGender,
		"applied_class":      m.KgStdApplicationAppliedClass,
		"mobile_number":      m.KgStdApplicationMobileNumber,
		"email":              m.KgStdApplicationEmail,
		"father_name":        m.KgStdApplicationFatherName,
		"mother_name":        m.KgStdApplicationMotherName,
		"address_line1":      m.KgStdApplicationAddressLine1,
		"address_line2":      m.KgStdApplicationAddressLine2,
		"district":           m.KgStdApplicationDistrict,
		"pincode":            m.KgStdApplicationPincode,
		"status":             m.KgStdApplicationStatus,
		"submitted_at":       m.KgStdApplicationCreatedAt,
	}
}

func ToPublicMapPlusOne(m *model.PlusOneApplicationModel) map[string]any {
	out := map[string]any{
		"application_number":   m.PlusOneApplicationNumber,
		"applicant_name":       m.PlusOneApplicationApplicantName,
		"date_of_birth":        m.PlusOneApplicationDateOfBirth.Format("2006-01-02"),
		"gender":               m.PlusOneApplicationGender,
		"mobile_number":        m.PlusOneApplicationMobileNumber,
		"email":                m.PlusOneApplicationEmail,
		"father_name":          m.PlusOneApplicationFatherName,
		"mother_name":          m.PlusOneApplicationMotherName,
		"address_line1":        m.PlusOneApplicationAddressLine1,
		"address_line2":        m.PlusOneApplicationAddressLine2,
		"district":             m.PlusOneApplicationDistrict,
		"pincode":              m.PlusOneApplicationPincode,
		"previous_school":      m.PlusOneApplicationPreviousSchool,
		"qualifying_board":     m.PlusOneApplicationQualifyingBoard,
		"qualifying_reg_no":    m.PlusOneApplicationQualifyingRegNo,
		"qualifying_exam_year": m.PlusOneApplicationQualifyingExamYear,
		"allotted_stream":      m.PlusOneApplicationAllottedStream,
		"status":               m.PlusOneApplicationStatus,
		"submitted_at":         m.PlusOneApplicationCreatedAt,
	}
	if len(m.PlusOneApplicationPreferredStreams) > 0 {
		out["preferred_streams"] = []string(m.PlusOneApplicationPreferredStreams)
	}
	return out
}
