package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccessMessage      = "User registered successfully"
	LoginSuccessMessage         = "Login successful"
	LogoutSuccessMessage        = "Logout successful"
	SendOTPSuccessMessage       = "OTP sent successfully"
	VerifyOTPSuccessMessage     = "OTP verified successfully"
	ResetPasswordSuccessMessage = "Password reset successful"
	GetSessionUserSuccess       = "get session user successfully"

	// Profile messages
	GetCompleteProfileSuccessMessage = "get complete profile successfully"
	UpdatePersonalSuccessMessage     = "Personal information updated successfully"
	UpdateHealthSuccessMessage       = "Health profile updated successfully"
	UpdateSettingsSuccessMessage     = "Settings updated successfully"
	AddActivitySuccessMessage        = "Activity added successfully"
	AddMedicalHistorySuccessMessage  = "Medical history entry added successfully"
	GetMedicalHistorySuccessMessage  = "get medical history successfully"
	UploadPictureSuccessMessage      = "Profile picture uploaded successfully"

	// Feature messages
	DiagnosisSuccessMessage       = "diagnosis generated successfully"
	AITestSuccessMessage          = "AI connection successful"
	GetCommonSymptomsSuccess      = "get common symptoms successfully"
	GetEQQuestionsSuccessMessage  = "get EQ questions successfully"
	ScoreEQSuccessMessage         = "EQ assessment scored successfully"
	CalculateBMISuccessMessage    = "BMI calculated successfully"
	GetDoctorsSuccessMessage      = "get doctors successfully"
	GetDoctorSuccessMessage       = "get doctor successfully"
	AnalyzeMedicineSuccessMessage = "medicine analyzed successfully"
	GeocodeSuccessMessage         = "geocode successfully"
	NearbyPlacesSuccessMessage    = "get nearby places successfully"
	MapsConfigSuccessMessage      = "get maps config successfully"
	GetLanguagesSuccessMessage    = "get languages successfully"
	HealthCheckSuccessMessage     = "service health retrieved"
	WelcomeMessage                = "Welcome to HALO Healthcare API"
)
