package utils

import (
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr string
	}{
		{
			name:  "valid register",
			input: &requests.RegisterUser{Name: "Asha", Age: 30, Email: "asha@example.com", Password: "secret"},
		},
		{
			name:    "short password",
			input:   &requests.RegisterUser{Name: "Asha", Age: 30, Email: "asha@example.com", Password: "12345"},
			wantErr: "password must be at least 6 characters long",
		},
		{
			name:    "age out of range",
			input:   &requests.RegisterUser{Name: "Asha", Age: 50, Email: "asha@example.com", Password: "secret"},
			wantErr: "age must be less than or equal to 45",
		},
		{
			name:    "blank name",
			input:   &requests.RegisterUser{Name: "   ", Age: 30, Email: "asha@example.com", Password: "secret"},
			wantErr: "name must not be blank",
		},
		{
			name:    "bad blood type",
			input:   &requests.UpdateHealthProfile{BloodType: "C+"},
			wantErr: "bloodType must be one of [A+, A-, B+, B-, AB+, AB-, O+, O-]",
		},
		{
			name:  "phone in international format",
			input: &requests.UpdatePersonalInfo{Phone: "+1 234 567 8900"},
		},
		{
			name:    "phone without country code",
			input:   &requests.UpdatePersonalInfo{Phone: "2345678900"},
			wantErr: "phone number must be in international format, for example +1 234 567 8900",
		},
		{
			name:    "unsupported language",
			input:   &requests.UpdateSettings{Language: "fr"},
			wantErr: "language must be one of [en, hi, pa, or]",
		},
		{
			name:    "unknown height unit",
			input:   &requests.CalculateBMI{Height: "170", Weight: "70", HeightUnit: "yd"},
			wantErr: "heightUnit must be one of [cm, m, ft, in]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, exceptions.FormatFirstValidationError(err))
		})
	}
}
