package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"regexp"
	"strings"
)

var whitespaceRunRegex = regexp.MustCompile(constvars.RegexWhitespaceRun)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	seen := make(map[string]bool, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		sanitizedArray = append(sanitizedArray, v)
	}
	return sanitizedArray
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeSendOTPRequest(input *requests.SendOTP) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeVerifyOTPRequest(input *requests.VerifyOTP) {
	input.Email = normalizeEmail(input.Email)
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeUpdatePersonalInfoRequest(input *requests.UpdatePersonalInfo) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Location = strings.TrimSpace(input.Location)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
}

func SanitizeUpdateHealthProfileRequest(input *requests.UpdateHealthProfile) {
	input.Height = strings.TrimSpace(input.Height)
	input.HeightUnit = strings.ToLower(strings.TrimSpace(input.HeightUnit))
	input.Weight = strings.TrimSpace(input.Weight)
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	input.BloodPressure = strings.TrimSpace(input.BloodPressure)
	input.HeartRate = strings.TrimSpace(input.HeartRate)
	if input.Allergies != nil {
		input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	}
	if input.Medications != nil {
		input.Medications = cleanWhiteSpaceFromEachStringOfAnArray(input.Medications)
	}
}

func SanitizeUpdateSettingsRequest(input *requests.UpdateSettings) {
	input.Language = strings.ToLower(strings.TrimSpace(input.Language))
	if input.Privacy != nil {
		input.Privacy.ProfileVisibility = strings.ToLower(strings.TrimSpace(input.Privacy.ProfileVisibility))
	}
}

func SanitizeAddActivityRequest(input *requests.AddActivity) {
	input.Type = strings.TrimSpace(input.Type)
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeAddMedicalHistoryRequest(input *requests.AddMedicalHistory) {
	input.Type = strings.TrimSpace(input.Type)
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Doctor = strings.TrimSpace(input.Doctor)
	input.Location = strings.TrimSpace(input.Location)
	input.Date = strings.TrimSpace(input.Date)
}

func SanitizeDiagnosisRequest(input *requests.Diagnosis) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Language = NormalizeLanguage(input.Language)
}

func SanitizeGeocodeRequest(input *requests.Geocode) {
	input.Query = strings.TrimSpace(input.Query)
	input.Region = strings.ToLower(strings.TrimSpace(input.Region))
}

func SanitizeNearbyPlacesRequest(input *requests.NearbyPlaces) {
	types := make([]string, 0, len(input.Types))
	for _, placeType := range input.Types {
		types = append(types, strings.ToLower(placeType))
	}
	input.Types = cleanWhiteSpaceFromEachStringOfAnArray(types)
}

// NormalizeSymptoms lowercases and collapses whitespace runs.
func NormalizeSymptoms(symptoms string) string {
	return whitespaceRunRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(symptoms)), " ")
}

// DiagnosisCacheKey hashes the normalized symptoms together with the language.
func DiagnosisCacheKey(symptoms, language string) string {
	sum := sha256.Sum256([]byte(NormalizeSymptoms(symptoms) + "|" + NormalizeLanguage(language)))
	return hex.EncodeToString(sum[:])
}
