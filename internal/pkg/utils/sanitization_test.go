package utils

import (
	"halo-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:  "  Asha  ",
			Email: "  ASHA@EXAMPLE.COM  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "asha@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "Asha", request.Name, "name should be trimmed")
	})

	t.Run("Password Untouched", func(t *testing.T) {
		request := &requests.RegisterUser{Password: " secret "}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, " secret ", request.Password, "password should be kept as typed")
	})
}

func TestSanitizeUpdateHealthProfileRequest(t *testing.T) {
	t.Run("Lists Sanitization", func(t *testing.T) {
		request := &requests.UpdateHealthProfile{
			Allergies:   []string{"  Pollen ", "Pollen", "", " Dust"},
			Medications: []string{" Multivitamin "},
		}

		SanitizeUpdateHealthProfileRequest(request)

		assert.Equal(t, []string{"Pollen", "Dust"}, request.Allergies, "allergies should be trimmed and deduplicated")
		assert.Equal(t, []string{"Multivitamin"}, request.Medications)
	})

	t.Run("Nil Lists Stay Nil", func(t *testing.T) {
		request := &requests.UpdateHealthProfile{BloodType: " o+ ", HeightUnit: " FT "}

		SanitizeUpdateHealthProfileRequest(request)

		assert.Nil(t, request.Allergies, "absent list should not become an empty update")
		assert.Equal(t, "O+", request.BloodType)
		assert.Equal(t, "ft", request.HeightUnit)
	})
}

func TestSanitizeDiagnosisRequest(t *testing.T) {
	request := &requests.Diagnosis{Symptoms: "  Fever, Cough  ", Language: "xx"}

	SanitizeDiagnosisRequest(request)

	assert.Equal(t, "Fever, Cough", request.Symptoms)
	assert.Equal(t, "en", request.Language, "unknown language should fall back to en")
}

func TestDiagnosisCacheKey(t *testing.T) {
	assert.Equal(t,
		DiagnosisCacheKey("Fever,   Cough", "en"),
		DiagnosisCacheKey("  fever, cough ", "EN"),
		"keys should ignore case and whitespace runs",
	)
	assert.NotEqual(t, DiagnosisCacheKey("fever", "en"), DiagnosisCacheKey("fever", "hi"))
	assert.Len(t, DiagnosisCacheKey("fever", "en"), 64)
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "hi", NormalizeLanguage("HI"))
	assert.Equal(t, "or", NormalizeLanguage(" or "))
	assert.Equal(t, "en", NormalizeLanguage(""))
	assert.Equal(t, "Punjabi", LanguageName("pa"))
	assert.Equal(t, "English", LanguageName("zz"))
}
