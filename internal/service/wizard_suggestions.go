package service

// roles is the fixed career role list the Career step offers.
var roles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Data Scientist",
	"DevOps Engineer",
	"Mobile Developer",
}

// skillSuggestions maps each career role to its quick-add skill suggestions.
// Selecting a suggestion goes through WizardState.AddSkill, so normalization
// and duplicate handling apply the same way as for typed input.
var skillSuggestions = map[string][]string{
	"Frontend Developer":   {"HTML", "CSS", "JavaScript", "React", "TypeScript", "Responsive Design"},
	"Backend Developer":    {"Python", "SQL", "REST APIs", "Docker", "PostgreSQL", "Redis"},
	"Full Stack Developer": {"HTML", "CSS", "JavaScript", "Node.js", "SQL", "Git"},
	"Data Scientist":       {"Python", "Pandas", "NumPy", "SQL", "Machine Learning", "Statistics"},
	"DevOps Engineer":      {"Linux", "Docker", "Kubernetes", "CI/CD", "Terraform", "AWS"},
	"Mobile Developer":     {"Kotlin", "Swift", "Flutter", "React Native", "REST APIs", "Git"},
}

// Roles returns the selectable career roles in display order.
func Roles() []string {
	return append([]string(nil), roles...)
}

// SuggestionsForRole returns the quick-add skills for role, or nil when the
// role has no suggestion entry.
func SuggestionsForRole(role string) []string {
	return append([]string(nil), skillSuggestions[role]...)
}
