package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// GoalRequest is the body of POST /api/onboarding/goal.
type GoalRequest struct {
	Goal       string `json:"goal"`
	TargetRole string `json:"target_role"`
}

// SkillsRequest is the body of POST /api/onboarding/skills.
type SkillsRequest struct {
	Skills []string `json:"skills"`
}

// PreferencesRequest is the body of POST /api/onboarding/preferences.
type PreferencesRequest struct {
	LearningPace     string   `json:"learning_pace"`
	DailyHours       int      `json:"daily_hours"`
	PreferredContent []string `json:"preferred_content"`
}
