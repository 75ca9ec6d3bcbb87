package constvars

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguagePunjabi = "pa"
	LanguageOdia    = "or"
)

type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// SupportedLanguages is ordered as shown in the language picker.
var SupportedLanguages = []Language{
	{Code: LanguageEnglish, Name: "English", NativeName: "English"},
	{Code: LanguageHindi, Name: "Hindi", NativeName: "हिन्दी"},
	{Code: LanguagePunjabi, Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
	{Code: LanguageOdia, Name: "Odia", NativeName: "ଓଡ଼ିଆ"},
}
