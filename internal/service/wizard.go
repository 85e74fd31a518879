// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/pathforge/pathforge/models"
)

// Step is the wizard position. Steps are ordered; forward movement is gated
// by the current step's completion precondition, backward movement is free.
type Step int

const (
	StepCareer Step = iota + 1
	StepSkills
	StepPreferences
)

// Progress returns the derived progress percentage for the step. The
// remaining 20% past Preferences is realized on the results screen.
func (s Step) Progress() int {
	switch s {
	case StepCareer:
		return 40
	case StepSkills:
		return 60
	case StepPreferences:
		return 80
	default:
		return 0
	}
}

func (s Step) String() string {
	switch s {
	case StepCareer:
		return "career"
	case StepSkills:
		return "skills"
	case StepPreferences:
		return "preferences"
	default:
		return "unknown"
	}
}

// Effects is what a wizard transition asks its caller to do besides adopting
// the new state. The transition layer itself performs no IO; the caller
// shows notices, saves the draft, and fires the submission.
type Effects struct {
	// Notice is a user-facing message, empty when there is nothing to show.
	Notice string

	// SaveDraft asks the caller to snapshot the new state to the draft
	// store.
	SaveDraft bool

	// Submit asks the caller to run the onboarding submission sequence.
	Submit bool
}

// WizardState is the full onboarding wizard state. Values are immutable:
// every transition takes the receiver by value and returns the successor
// state alongside the effects the caller should carry out.
type WizardState struct {
	Step   Step
	Role   string
	Skills []string
	Prefs  models.Preferences
}

// NewWizardState returns the initial state, positioned on the Career step.
func NewWizardState() WizardState {
	return WizardState{Step: StepCareer}
}

// SelectRole sets the career role and snapshots the draft.
func (w WizardState) SelectRole(role string) (WizardState, Effects) {
	w.Role = strings.TrimSpace(role)
	return w, Effects{SaveDraft: true}
}

// Next advances one step when the current step's precondition holds.
// Career requires a selected role; Skills requires at least one skill (see
// Skip for the bypass). On a failed precondition the state is unchanged and
// a notice is emitted.
func (w WizardState) Next() (WizardState, Effects) {
	switch w.Step {
	case StepCareer:
		if w.Role == "" {
			return w, Effects{Notice: "Select a career role to continue"}
		}
		w.Step = StepSkills
		return w, Effects{SaveDraft: true}

	case StepSkills:
		if len(w.Skills) == 0 {
			return w, Effects{Notice: "Add at least one skill, or skip this step"}
		}
		w.Step = StepPreferences
		return w, Effects{SaveDraft: true}

	default:
		return w, Effects{}
	}
}

// Skip moves from Skills to Preferences without the one-skill precondition.
// It has no effect on any other step.
func (w WizardState) Skip() (WizardState, Effects) {
	if w.Step != StepSkills {
		return w, Effects{}
	}
	w.Step = StepPreferences
	return w, Effects{SaveDraft: true}
}

// Back moves one step backward. Backward navigation is always allowed;
// calling Back on the Career step is a no-op.
func (w WizardState) Back() (WizardState, Effects) {
	switch w.Step {
	case StepSkills:
		w.Step = StepCareer
	case StepPreferences:
		w.Step = StepSkills
	}
	return w, Effects{}
}

// AddSkill normalizes raw (trim, collapse inner whitespace runs) and appends
// it to the skill list. Empty input is rejected silently; a case-insensitive
// duplicate or a full list (models.MaxSkills entries) is rejected with a
// notice. A successful append preserves insertion order and snapshots the
// draft.
func (w WizardState) AddSkill(raw string) (WizardState, Effects) {
	skill := normalizeSkill(raw)
	if skill == "" {
		return w, Effects{}
	}

	for _, existing := range w.Skills {
		if strings.EqualFold(existing, skill) {
			return w, Effects{Notice: "You already added " + existing}
		}
	}

	if len(w.Skills) >= models.MaxSkills {
		return w, Effects{Notice: "You can add up to 20 skills"}
	}

	w.Skills = append(append([]string(nil), w.Skills...), skill)
	return w, Effects{SaveDraft: true}
}

// RemoveSkill removes the skill at position i. An out-of-bounds index is a
// silent no-op. Either way the draft is snapshotted.
func (w WizardState) RemoveSkill(i int) (WizardState, Effects) {
	if i >= 0 && i < len(w.Skills) {
		skills := append([]string(nil), w.Skills[:i]...)
		w.Skills = append(skills, w.Skills[i+1:]...)
	}
	return w, Effects{SaveDraft: true}
}

// SetPreferences replaces the preference snapshot and snapshots the draft.
func (w WizardState) SetPreferences(prefs models.Preferences) (WizardState, Effects) {
	w.Prefs = prefs
	return w, Effects{SaveDraft: true}
}

// Generate is the terminal action. It requires a selected role; when the
// precondition holds the caller is asked to run the submission sequence.
// The step does not change: on a failed submission the user remains on
// Preferences and may retry.
func (w WizardState) Generate() (WizardState, Effects) {
	if w.Role == "" {
		return w, Effects{Notice: "Select a career role to continue"}
	}
	return w, Effects{Submit: true}
}

// ApplyDraft restores role, skills, and preferences from a resumed draft.
// The wizard is positioned back on the Career step with the restored role
// selected.
func (w WizardState) ApplyDraft(d models.Draft) WizardState {
	w.Step = StepCareer
	w.Role = d.Role
	w.Skills = append([]string(nil), d.Skills...)
	w.Prefs = d.Preferences
	return w
}

// Draft snapshots the current input as a draft. The save timestamp is
// stamped by the draft service on write.
func (w WizardState) Draft() models.Draft {
	return models.Draft{
		Role:        w.Role,
		Skills:      append([]string(nil), w.Skills...),
		Preferences: w.Prefs,
	}
}

// normalizeSkill trims raw and collapses internal whitespace runs to single
// spaces.
func normalizeSkill(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
