package models

import "time"

// MaxSkills is the hard cap on the number of skills a draft may hold.
const MaxSkills = 20

// DraftMaxAge is how long a saved draft stays resumable. Drafts saved
// longer ago than this are treated as absent by LoadDraft.
const DraftMaxAge = 24 * time.Hour

// Preferences is the learning-preference snapshot collected on the last
// wizard step.
type Preferences struct {
	// ExperienceLevel is the self-reported proficiency
	// (beginner, intermediate, advanced).
	ExperienceLevel string `json:"experience_level"`

	// LearningPace is one of relaxed, moderate, intensive.
	LearningPace string `json:"learning_pace"`

	// DailyHours is the number of hours per day the user plans to spend.
	DailyHours int `json:"daily_hours"`

	// PreferredContent lists content types (videos, articles, interactive).
	PreferredContent []string `json:"preferred_content"`
}

// Draft is a snapshot of in-progress onboarding input saved for resumption.
// It is written on every mutating wizard action and on the autosave tick,
// and discarded after a successful path-generation submit or a declined
// resume prompt.
type Draft struct {
	// Role is the selected career role, empty until the user picks one.
	Role string `json:"role"`

	// Skills is the ordered-insertion, case-insensitively unique skill list.
	Skills []string `json:"skills"`

	// Preferences is the preference snapshot at save time.
	Preferences Preferences `json:"preferences"`

	// SavedAt is the time the draft was last written.
	SavedAt time.Time `json:"savedAt"`
}

// Stale reports whether the draft is older than DraftMaxAge relative to now.
func (d Draft) Stale(now time.Time) bool {
	return now.Sub(d.SavedAt) > DraftMaxAge
}
