package domain

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/enrollment/internal/validation"
)

// RegisterInput carries a registration as submitted. Optional fields left
// empty are stored as NULL. The json tags name the keys of validation errors.
type RegisterInput struct {
	CPF           string `json:"cpf"`
	Name          string `json:"name"`
	MaritalStatus string `json:"marital_status"`
	Sex           string `json:"sex"`
	BirthDate     string `json:"birth_date"` // YYYY-MM-DD
	Address       string `json:"address"`
	Neighborhood  string `json:"neighborhood"`
	CityState     string `json:"city_state"`
	Phone         string `json:"phone"`
	TeamLeader    bool   `json:"team_leader"`
}

// Validate checks every field of the input. The CPF passes the shape rule
// before the checksum rule so punctuation-only inputs report the shape message.
func (in *RegisterInput) Validate(now func() time.Time) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.CPF,
			validation.Required,
			validation.Length(11, 14),
			customValidation.CPFShape,
			customValidation.CPF,
		),
		validation.Field(&in.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.By(trimmedLength(NameMinLength, NameMaxLength)),
		),
		validation.Field(&in.MaritalStatus,
			validation.In(toAny(MaritalStatuses)...),
		),
		validation.Field(&in.Sex,
			validation.In(toAny(Sexes)...),
		),
		validation.Field(&in.BirthDate,
			customValidation.Date,
			customValidation.NotFutureDate(now),
		),
		validation.Field(&in.Address, validation.RuneLength(0, AddressMaxLength)),
		validation.Field(&in.Neighborhood, validation.RuneLength(0, NeighborhoodMaxLength)),
		validation.Field(&in.CityState, validation.RuneLength(0, CityStateMaxLength)),
		validation.Field(&in.Phone, validation.RuneLength(0, PhoneMaxLength)),
	)
}

// trimmedLength checks the rune length of a string after trimming surrounding whitespace.
func trimmedLength(minLen, maxLen int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		return validation.RuneLength(minLen, maxLen).Validate(strings.TrimSpace(s))
	}
}

// toAny converts typed choices into the untyped list validation.In expects.
// Values are compared as plain strings because the input fields are strings.
func toAny[T ~string](choices []T) []interface{} {
	out := make([]interface{}, len(choices))
	for i, c := range choices {
		out[i] = string(c)
	}
	return out
}
