package domain

// SetupStep is one numbered item in a provider setup guide.
type SetupStep struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	URL    string `json:"url,omitempty"`
}

// SetupGuide walks a developer through registering OAuth credentials for a
// platform whose provider is not configured yet.
type SetupGuide struct {
	Platform PlatformID  `json:"platform"`
	Intro    string      `json:"intro"`
	Steps    []SetupStep `json:"steps"`
	// RedirectURI is the value the developer must whitelist with the
	// provider, already bound to the local callback origin.
	RedirectURI string `json:"redirect_uri"`
	// EnvVars names the variables that override the built-in client IDs.
	EnvVars []string `json:"env_vars,omitempty"`
	// Configured is true when the provider already resolves to a usable
	// client id, so the guide is informational only.
	Configured bool `json:"configured"`
}
