package models

// MessageResponse is the generic {"message": ...} body the server returns
// for onboarding saves and for failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login endpoints alongside the
// Authorization header carrying the bearer token.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// PathResponse wraps a generated learning path as returned by
// POST /api/ai/generate-path and GET /api/ai/path.
type PathResponse struct {
	Message string       `json:"message,omitempty"`
	Path    LearningPath `json:"path"`
}

// OnboardingStatus reports which onboarding sections the user has completed.
type OnboardingStatus struct {
	Skills      bool `json:"skills"`
	Goal        bool `json:"goal"`
	Preferences bool `json:"preferences"`
}

// StatusResponse is the body of GET /api/onboarding/status.
type StatusResponse struct {
	Status    OnboardingStatus `json:"status"`
	Completed bool             `json:"completed"`
}
