package normalized

// DefaultLanguage is used by every name getter when the caller passes "".
const DefaultLanguage = "en"

// localizedName returns names[language], with "" meaning DefaultLanguage. The
// key must match exactly; a missing key is absent even when another locale
// would have matched.
func localizedName(names map[string]string, language string) (string, bool) {
	if names == nil {
		return "", false
	}

	if language == "" {
		language = DefaultLanguage
	}

	name, ok := names[language]

	return name, ok
}
