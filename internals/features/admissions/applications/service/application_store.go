// file: internals/features/admissions/applications/service/application_store.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/admissions/applications/model"
)

// Uniform miss: callers must not learn which store was probed or which
// credential failed.
var ErrApplicationNotFound = errors.New("application not found")

var (
	ErrUnknownStatus   = errors.New("unknown application status")
	ErrUnknownFormType = errors.New("unknown form type")
)

/* ============================================
   Tagged union over the two application stores
============================================ */

type Application struct {
	FormType string
	KgStd    *model.KgStdApplicationModel
	PlusOne  *model.PlusOneApplicationModel
}

func (a *Application) ID() uuid.UUID {
	if a.KgStd != nil {
		return a.KgStd.KgStdApplicationID
	}
	return a.PlusOne.PlusOneApplicationID
}

func (a *Application) Status() string {
	if a.KgStd != nil {
		return a.KgStd.KgStdApplicationStatus
	}
	return a.PlusOne.PlusOneApplicationStatus
}

/* ============================================
   Store
============================================ */

type ApplicationStore struct {
	DB *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

// FindByNumberAndMobile probes kg_std first, then plus_one, and stops at the
// first match. A number only ever lives in one store, so no cross-store
// transaction is needed. Any miss collapses into ErrApplicationNotFound.
func (s *ApplicationStore) FindByNumberAndMobile(number, mobile string) (*Application, error) {
	var kg model.KgStdApplicationModel
	err := s.DB.
		Where("kg_std_application_number = ? AND kg_std_application_mobile_number = ?", number, mobile).
		First(&kg).Error
	if err == nil {
		return &Application{FormType: constants.FormTypeKgStd, KgStd: &kg}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var po model.PlusOneApplicationModel
	err = s.DB.
		Where("plus_one_application_number = ? AND plus_one_application_mobile_number = ?", number, mobile).
		First(&po).Error
	if err == nil {
		return &Application{FormType: constants.FormTypePlusOne, PlusOne: &po}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, ErrApplicationNotFound
}

// CreateKgStd inserts a fresh kg_std application. The application number is
// generated here; on a unique-index collision the insert is retried once with
// a new number.
func (s *ApplicationStore) CreateKgStd(m *model.KgStdApplicationModel) error {
	for attempt := 0; attempt < 2; attempt++ {
		m.KgStdApplicationID = uuid.Nil
		m.KgStdApplicationNumber = GenerateApplicationNumber(constants.AppNumberPrefixKgStd)
		err := s.DB.Create(m).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return errors.New("could not allocate a unique application number")
}

func (s *ApplicationStore) CreatePlusOne(m *model.PlusOneApplicationModel) error {
	for attempt := 0; attempt < 2; attempt++ {
		m.PlusOneApplicationID = uuid.Nil
		m.PlusOneApplicationNumber = GenerateApplicationNumber(constants.AppNumberPrefixPlusOne)
		err := s.DB.Create(m).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return errors.New("could not allocate a unique application number")
}

// UpdateStatus moves an application to a known status. The lookup service
// never transitions state; this is the admin-only mutator.
func (s *ApplicationStore) UpdateStatus(formType string, id uuid.UUID, status string) error {
	if !constants.IsValidApplicationStatus(status) {
		return ErrUnknownStatus
	}
	switch formType {
	case constants.FormTypeKgStd:
		res := s.DB.Model(&model.KgStdApplicationModel{}).
			Where("kg_std_application_id = ?", id).
			Update("kg_std_application_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return nil
	case constants.FormTypePlusOne:
		res := s.DB.Model(&model.PlusOneApplicationModel{}).
			Where("plus_one_application_id = ?", id).
			Update("plus_one_application_status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return nil
	default:
		return ErrUnknownFormType
	}
}

// AllotStream sets the allotted stream on a plus_one application.
func (s *ApplicationStore) AllotStream(id uuid.UUID, stream string) error {
	res := s.DB.Model(&model.PlusOneApplicationModel{}).
		Where("plus_one_application_id = ?", id).
		Update("plus_one_application_allotted_stream", stream)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

/* ============================================
   PG error mapping
============================================ */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// isUniqueViolation: Postgres unique violation (SQLSTATE 23505).
// String fallback keeps this portable across lib/pq and wrapped pgx errors.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
