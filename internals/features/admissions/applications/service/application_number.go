// file: internals/features/admissions/applications/service/application_number.go
package service

import (
	"fmt"
	"math/rand"
	"time"

	"sekolahku_backend/internals/constants"
)

// GenerateApplicationNumber builds a human-facing number from the variant
// prefix, the current unix-millis and two random digits. The unique index on
// the application tables is the real guard; the random tail only narrows the
// same-millisecond window. Numbers are unique per variant, not globally.
func GenerateApplicationNumber(prefix string) string {
	return fmt.Sprintf("%s%d%02d", prefix, time.Now().UnixMilli(), rand.Intn(100))
}

func PrefixForFormType(formType string) string {
	if formType == constants.FormTypePlusOne {
		return constants.AppNumberPrefixPlusOne
	}
	return constants.AppNumberPrefixKgStd
}
