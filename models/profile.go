package models

// Profile is the server-side onboarding record of a user: the goal and
// target role, collected skills, and learning preferences. Each section is
// written by its own onboarding endpoint, so any subset may be present.
type Profile struct {
	UserID           int64    `json:"user_id"`
	Goal             string   `json:"goal"`
	TargetRole       string   `json:"target_role"`
	Skills           []string `json:"skills"`
	LearningPace     string   `json:"learning_pace"`
	DailyHours       int      `json:"daily_hours"`
	PreferredContent []string `json:"preferred_content"`
}

// Status derives the per-section completion flags used by the status
// endpoint.
func (p Profile) Status() OnboardingStatus {
	return OnboardingStatus{
		Skills:      len(p.Skills) > 0,
		Goal:        p.Goal != "" || p.TargetRole != "",
		Preferences: p.LearningPace != "" || p.DailyHours > 0 || len(p.PreferredContent) > 0,
	}
}
