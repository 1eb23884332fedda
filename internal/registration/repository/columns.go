// Package repository implements registration persistence for PostgreSQL and MySQL.
package repository

import (
	"database/sql"
	"time"

	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

const registrationColumns = `id, cpf, name, marital_status, sex, birth_date, address, neighborhood,
	city_state, phone, age, team_leader, created_at`

// nullableColumns holds the scan targets of the optional registration columns.
type nullableColumns struct {
	maritalStatus sql.NullString
	sex           sql.NullString
	birthDate     sql.NullTime
	address       sql.NullString
	neighborhood  sql.NullString
	cityState     sql.NullString
	phone         sql.NullString
	age           sql.NullInt64
}

// apply copies the scanned optional columns into registration.
func (n *nullableColumns) apply(registration *registrationDomain.Registration) {
	if n.maritalStatus.Valid {
		status := registrationDomain.MaritalStatus(n.maritalStatus.String)
		registration.MaritalStatus = &status
	}
	if n.sex.Valid {
		sex := registrationDomain.Sex(n.sex.String)
		registration.Sex = &sex
	}
	if n.birthDate.Valid {
		birthDate := time.Date(
			n.birthDate.Time.Year(), n.birthDate.Time.Month(), n.birthDate.Time.Day(),
			0, 0, 0, 0, time.UTC,
		)
		registration.BirthDate = &birthDate
	}
	registration.Address = stringPtr(n.address)
	registration.Neighborhood = stringPtr(n.neighborhood)
	registration.CityState = stringPtr(n.cityState)
	registration.Phone = stringPtr(n.phone)
	if n.age.Valid {
		age := int(n.age.Int64)
		registration.Age = &age
	}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// optionalArgs returns the insert arguments for the optional columns in column order.
func optionalArgs(registration *registrationDomain.Registration) []any {
	var maritalStatus, sex, birthDate, age any
	if registration.MaritalStatus != nil {
		maritalStatus = string(*registration.MaritalStatus)
	}
	if registration.Sex != nil {
		sex = string(*registration.Sex)
	}
	if registration.BirthDate != nil {
		birthDate = registration.BirthDate.Format("2006-01-02")
	}
	if registration.Age != nil {
		age = int64(*registration.Age)
	}
	return []any{
		maritalStatus,
		sex,
		birthDate,
		derefString(registration.Address),
		derefString(registration.Neighborhood),
		derefString(registration.CityState),
		derefString(registration.Phone),
		age,
	}
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
