package tui

import (
	"github.com/pathforge/pathforge/models"
)

type authDoneMsg struct {
	user models.UserSummary
}

type authFailedMsg struct {
	err error
}

type initialStateMsg struct {
	path     models.LearningPath
	hasPath  bool
	draft    models.Draft
	hasDraft bool
}

type draftDiscardedMsg struct{}

type submitDoneMsg struct {
	err error
}

type pathLoadedMsg struct {
	path models.LearningPath
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
