package i18n

// DefaultLanguage is used for unknown codes and as the lookup fallback.
const DefaultLanguage = "en"

type Language struct {
	Code       string
	Name       string
	NativeName string
}

// English plus the 22 scheduled languages of India.
var languages = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
	{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
	{Code: "as", Name: "Assamese", NativeName: "অসমীয়া"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو"},
	{Code: "sa", Name: "Sanskrit", NativeName: "संस्कृतम्"},
	{Code: "ks", Name: "Kashmiri", NativeName: "कॉशुर"},
	{Code: "sd", Name: "Sindhi", NativeName: "سنڌي"},
	{Code: "ne", Name: "Nepali", NativeName: "नेपाली"},
	{Code: "kok", Name: "Konkani", NativeName: "कोंकणी"},
	{Code: "mni", Name: "Manipuri", NativeName: "মৈতৈলোন্"},
	{Code: "doi", Name: "Dogri", NativeName: "डोगरी"},
	{Code: "mai", Name: "Maithili", NativeName: "मैथिली"},
	{Code: "sat", Name: "Santali", NativeName: "ᱥᱟᱱᱛᱟᱲᱤ"},
	{Code: "bo", Name: "Bodo", NativeName: "बड़ो"},
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Find returns the language for code.
func Find(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Normalize maps codes outside the selectable set to DefaultLanguage.
func Normalize(code string) string {
	if _, ok := Find(code); ok {
		return code
	}
	return DefaultLanguage
}
