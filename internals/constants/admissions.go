// file: internals/constants/admissions.go
package constants

/* ===============================
   Form types (admission tracks)
=================================*/

const (
	FormTypeKgStd   = "kg_std"   // KG / STD (class 1-10) track
	FormTypePlusOne = "plus_one" // Plus One (higher secondary) track
)

var FormTypes = []string{FormTypeKgStd, FormTypePlusOne}

func IsValidFormType(ft string) bool {
	return ft == FormTypeKgStd || ft == FormTypePlusOne
}

/* ===============================
   Application statuses
=================================*/

const (
	StatusSubmitted         = "submitted"
	StatusShortlisted       = "shortlisted_for_interview"
	StatusInterviewComplete = "interview_complete"
	StatusAdmitted          = "admitted"
	StatusRejected          = "rejected"
	StatusWaitlisted        = "waitlisted"
)

var ApplicationStatuses = []string{
	StatusSubmitted,
	StatusShortlisted,
	StatusInterviewComplete,
	StatusAdmitted,
	StatusRejected,
	StatusWaitlisted,
}

func IsValidApplicationStatus(s string) bool {
	for _, st := range ApplicationStatuses {
		if st == s {
			return true
		}
	}
	return false
}

/* ===============================
   Application number prefixes
=================================*/

const (
	AppNumberPrefixKgStd   = "ADM-KG-"
	AppNumberPrefixPlusOne = "ADM-P1-"
)

// DefaultInterviewMaxMarks is the max marks used when the admin does not
// specify one for an interview subject.
const DefaultInterviewMaxMarks = 25
