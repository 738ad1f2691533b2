// file: internals/features/admissions/status/dto/status_dto.go
package dto

import "strings"

// Camel-case keys: this endpoint is consumed directly by the public site.
type StatusLookupDTO struct {
	ApplicationNumber string `json:"applicationNumber"`
	MobileNumber      string `json:"mobileNumber"`
}

func (p *StatusLookupDTO) Normalize() {
	p.ApplicationNumber = strings.TrimSpace(p.ApplicationNumber)
	p.MobileNumber = strings.TrimSpace(p.MobileNumber)
}

// Blank input is a client error, distinct from "no such application".
func (p *StatusLookupDTO) Valid() bool {
	return p.ApplicationNumber != "" && p.MobileNumber != ""
}
