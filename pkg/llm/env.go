package llm

// APIKeyFromEnv returns the first non empty API key.
// GOOGLE_API_KEY takes precedence over GEMINI_API_KEY.
func APIKeyFromEnv(getEnv func(string) string) string {
	for _, envName := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if key := getEnv(envName); key != "" {
			return key
		}
	}
	return ""
}
