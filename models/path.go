package models

import "time"

// Topic is a single unit of study inside a module.
type Topic struct {
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
}

// Module groups topics under one theme with an overall difficulty.
type Module struct {
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
	Difficulty     string  `json:"difficulty"`
	Description    string  `json:"description"`
	Topics         []Topic `json:"topics"`
}

// Curriculum is the ordered module list of a generated learning path.
type Curriculum struct {
	Modules []Module `json:"modules"`
}

// LearningPath is the generated plan returned by GET /api/ai/path.
// The shape is validated at the adapter boundary; a response that does not
// decode into this structure is surfaced as a schema error rather than
// rendered partially.
type LearningPath struct {
	ID                     int64      `json:"id,omitempty"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	TargetRole             string     `json:"target_role,omitempty"`
	EstimatedDurationWeeks int        `json:"estimated_duration_weeks"`
	DifficultyLevel        string     `json:"difficulty_level"`
	Curriculum             Curriculum `json:"curriculum"`
	CreatedAt              time.Time  `json:"created_at,omitempty"`
}

// TotalTopics counts the topics across all modules.
func (p LearningPath) TotalTopics() int {
	n := 0
	for _, m := range p.Curriculum.Modules {
		n += len(m.Topics)
	}
	return n
}
