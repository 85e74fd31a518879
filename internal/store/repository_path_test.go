// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

func newTestPathRepo(t *testing.T) (*pathRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &pathRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testPath() models.LearningPath {
	return models.LearningPath{
		Title:                  "Backend Developer Path (Backend Developer)",
		Description:            "Server-side engineering",
		TargetRole:             "Backend Developer",
		EstimatedDurationWeeks: 6,
		DifficultyLevel:        "intermediate",
		Curriculum: models.Curriculum{
			Modules: []models.Module{
				{
					Title:          "HTTP Services",
					EstimatedHours: 10,
					Difficulty:     "intermediate",
					Topics: []models.Topic{
						{Title: "REST APIs", EstimatedHours: 10},
					},
				},
			},
		},
	}
}

func TestSavePath_Success(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()
	path := testPath()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE learning_paths").
		WithArgs(0, int64(1), path.TargetRole, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO learning_paths").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	saved, err := repo.SavePath(ctx, 1, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 3 {
		t.Errorf("expected ID=3, got %d", saved.ID)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSavePath_DeactivateError_RollsBack(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE learning_paths").
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	_, err := repo.SavePath(ctx, 1, testPath())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSavePath_InsertError_RollsBack(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE learning_paths").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO learning_paths").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	_, err := repo.SavePath(ctx, 1, testPath())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetActivePath_Success(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()

	curriculum := `{"modules":[{"title":"HTTP Services","estimated_hours":10,"difficulty":"intermediate","topics":[{"title":"REST APIs","estimated_hours":10}]}]}`
	rows := sqlmock.
		NewRows([]string{"title", "description", "target_role", "estimated_duration_weeks", "difficulty_level", "curriculum_data"}).
		AddRow("Backend Developer Path", "Server-side engineering", "Backend Developer", 6, "intermediate", curriculum)

	mock.ExpectQuery("SELECT title").
		WithArgs(int64(1), 1).
		WillReturnRows(rows)

	path, err := repo.GetActivePath(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Title != "Backend Developer Path" {
		t.Errorf("expected title Backend Developer Path, got %s", path.Title)
	}
	if len(path.Curriculum.Modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(path.Curriculum.Modules))
	}
	if path.Curriculum.Modules[0].Topics[0].Title != "REST APIs" {
		t.Errorf("unexpected topic: %+v", path.Curriculum.Modules[0].Topics)
	}
}

func TestGetActivePath_NotFound(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT title").
		WithArgs(int64(2), 1).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActivePath(ctx, 2)
	if !errors.Is(err, ErrNoPathWasFound) {
		t.Fatalf("expected ErrNoPathWasFound, got %v", err)
	}
}

func TestGetActivePath_CorruptCurriculum(t *testing.T) {
	repo, mock, db := newTestPathRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"title", "description", "target_role", "estimated_duration_weeks", "difficulty_level", "curriculum_data"}).
		AddRow("Path", "", "Backend Developer", 6, "intermediate", "{not json")

	mock.ExpectQuery("SELECT title").
		WithArgs(int64(1), 1).
		WillReturnRows(rows)

	_, err := repo.GetActivePath(ctx, 1)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}
