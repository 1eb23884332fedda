package dto

import (
	"time"

	"github.com/allisson/enrollment/internal/cpf"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
	"github.com/allisson/enrollment/internal/validation"
)

// RegistrationResponse represents a registration in API responses.
// The CPF is rendered as 000.000.000-00.
type RegistrationResponse struct {
	ID            string    `json:"id"`
	CPF           string    `json:"cpf"`
	Name          string    `json:"name"`
	MaritalStatus *string   `json:"marital_status"`
	Sex           *string   `json:"sex"`
	BirthDate     *string   `json:"birth_date"`
	Address       *string   `json:"address"`
	Neighborhood  *string   `json:"neighborhood"`
	CityState     *string   `json:"city_state"`
	Phone         *string   `json:"phone"`
	Age           *int      `json:"age"`
	TeamLeader    bool      `json:"team_leader"`
	CreatedAt     time.Time `json:"created_at"`
}

// MapRegistrationToResponse converts a domain registration to an API response.
func MapRegistrationToResponse(registration *registrationDomain.Registration) RegistrationResponse {
	response := RegistrationResponse{
		ID:           registration.ID.String(),
		CPF:          cpf.Format(registration.CPF),
		Name:         registration.Name,
		Address:      registration.Address,
		Neighborhood: registration.Neighborhood,
		CityState:    registration.CityState,
		Phone:        registration.Phone,
		Age:          registration.Age,
		TeamLeader:   registration.TeamLeader,
		CreatedAt:    registration.CreatedAt,
	}

	if registration.MaritalStatus != nil {
		s := string(*registration.MaritalStatus)
		response.MaritalStatus = &s
	}
	if registration.Sex != nil {
		s := string(*registration.Sex)
		response.Sex = &s
	}
	if registration.BirthDate != nil {
		s := registration.BirthDate.Format(validation.DateLayout)
		response.BirthDate = &s
	}

	return response
}

// MapRegistrationsToResponses converts domain registrations to API responses.
func MapRegistrationsToResponses(registrations []*registrationDomain.Registration) []RegistrationResponse {
	responses := make([]RegistrationResponse, 0, len(registrations))
	for _, registration := range registrations {
		responses = append(responses, MapRegistrationToResponse(registration))
	}
	return responses
}
