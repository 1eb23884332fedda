package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

func TestCheckbox_UnmarshalParam(t *testing.T) {
	tests := []struct {
		param   string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"true", true, false},
		{"1", true, false},
		{"YES", true, false},
		{"", false, false},
		{"off", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			var c Checkbox
			err := c.UnmarshalParam(tt.param)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(c))
		})
	}
}

func TestCheckbox_UnmarshalJSON(t *testing.T) {
	var req struct {
		A Checkbox `json:"a"`
		B Checkbox `json:"b"`
		C Checkbox `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":true,"b":"on","c":false}`), &req))
	assert.True(t, bool(req.A))
	assert.True(t, bool(req.B))
	assert.False(t, bool(req.C))

	assert.Error(t, json.Unmarshal([]byte(`{"a":12}`), &req))
}

func TestRegisterRequest_Validate(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }

	valid := RegisterRequest{CPF: "529.982.247-25", Name: "Maria", TeamLeader: true}
	assert.NoError(t, valid.Validate(now))
	assert.True(t, valid.ToInput().TeamLeader)

	invalid := RegisterRequest{CPF: "529.982.247-26", Name: "Maria"}
	assert.Error(t, invalid.Validate(now))
}

func TestMapRegistrationToResponse(t *testing.T) {
	sex := registrationDomain.SexMale
	birthDate := time.Date(1985, time.December, 1, 0, 0, 0, 0, time.UTC)
	registration := &registrationDomain.Registration{
		ID:        uuid.Must(uuid.NewV7()),
		CPF:       "11144477735",
		Name:      "João",
		Sex:       &sex,
		BirthDate: &birthDate,
		CreatedAt: time.Now().UTC(),
	}

	response := MapRegistrationToResponse(registration)

	assert.Equal(t, registration.ID.String(), response.ID)
	assert.Equal(t, "111.444.777-35", response.CPF)
	require.NotNil(t, response.Sex)
	assert.Equal(t, "male", *response.Sex)
	require.NotNil(t, response.BirthDate)
	assert.Equal(t, "1985-12-01", *response.BirthDate)
	assert.Nil(t, response.MaritalStatus)
	assert.Nil(t, response.Age)

	assert.Empty(t, MapRegistrationsToResponses(nil))
	assert.NotNil(t, MapRegistrationsToResponses(nil))
}
