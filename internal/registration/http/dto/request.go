// Package dto provides data transfer objects for registration HTTP requests and responses.
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

// Checkbox is a boolean that also accepts HTML checkbox values ("on") when bound from a form.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler for form and query values.
func (c *Checkbox) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "on", "true", "1", "yes":
		*c = true
	case "", "off", "false", "0", "no":
		*c = false
	default:
		return fmt.Errorf("invalid boolean value %q", param)
	}
	return nil
}

// UnmarshalJSON accepts JSON booleans and the same strings as form values.
func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid boolean value %s", data)
	}
	return c.UnmarshalParam(s)
}

// RegisterRequest contains the fields of the public registration form.
type RegisterRequest struct {
	CPF           string   `json:"cpf"            form:"cpf"`
	Name          string   `json:"name"           form:"name"`
	MaritalStatus string   `json:"marital_status" form:"marital_status"`
	Sex           string   `json:"sex"            form:"sex"`
	BirthDate     string   `json:"birth_date"     form:"birth_date"`
	Address       string   `json:"address"        form:"address"`
	Neighborhood  string   `json:"neighborhood"   form:"neighborhood"`
	CityState     string   `json:"city_state"     form:"city_state"`
	Phone         string   `json:"phone"          form:"phone"`
	TeamLeader    Checkbox `json:"team_leader"    form:"team_leader"`
}

// ToInput maps the request to the domain input.
func (r *RegisterRequest) ToInput() *registrationDomain.RegisterInput {
	return &registrationDomain.RegisterInput{
		CPF:           r.CPF,
		Name:          r.Name,
		MaritalStatus: r.MaritalStatus,
		Sex:           r.Sex,
		BirthDate:     r.BirthDate,
		Address:       r.Address,
		Neighborhood:  r.Neighborhood,
		CityState:     r.CityState,
		Phone:         r.Phone,
		TeamLeader:    bool(r.TeamLeader),
	}
}

// Validate checks if the registration request is valid.
func (r *RegisterRequest) Validate(now func() time.Time) error {
	return r.ToInput().Validate(now)
}
