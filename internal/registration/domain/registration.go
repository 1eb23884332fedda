// Package domain defines the registration domain model.
//
// A registration is keyed by a normalized CPF: the eleven-digit form without
// punctuation is what gets persisted and what the uniqueness constraint covers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaritalStatus is the declared marital status of the registrant.
type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
)

// MaritalStatuses lists every accepted marital status.
var MaritalStatuses = []MaritalStatus{
	MaritalStatusSingle,
	MaritalStatusMarried,
	MaritalStatusDivorced,
	MaritalStatusWidowed,
}

// Sex is the declared sex of the registrant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// Sexes lists every accepted sex value.
var Sexes = []Sex{SexMale, SexFemale, SexOther}

// Field limits shared by validation, migrations and the HTTP layer.
const (
	NameMinLength         = 2
	NameMaxLength         = 200
	AddressMaxLength      = 300
	NeighborhoodMaxLength = 150
	CityStateMaxLength    = 150
	PhoneMaxLength        = 20
)

// Registration is a single enrollment record.
type Registration struct {
	ID            uuid.UUID      // Unique identifier (UUIDv7)
	CPF           string         // Normalized, 11 digits
	Name          string         // Trimmed full name
	MaritalStatus *MaritalStatus // Optional
	Sex           *Sex           // Optional
	BirthDate     *time.Time     // Date only, UTC midnight
	Address       *string
	Neighborhood  *string
	CityState     *string
	Phone         *string
	Age           *int // Full years at registration time
	TeamLeader    bool
	CreatedAt     time.Time
}

// AgeOn returns the number of full years between birth and today.
func AgeOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
