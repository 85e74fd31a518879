package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/models"
)

func newTestDraftRepo(t *testing.T) (*draftRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewClientLogger("test")
	repo := &draftRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveDraft(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	ctx := context.Background()
	draft := models.Draft{
		Role:    "Backend Developer",
		Skills:  []string{"Go"},
		SavedAt: time.Now().UTC(),
	}
	payload, _ := json.Marshal(draft)

	mock.ExpectExec("INSERT INTO local_kv").
		WithArgs(kvKeyDraft, string(payload)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveDraft(ctx, draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDraft_Success(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Draft{Role: "Data Scientist", Skills: []string{"Python"}}
	payload, _ := json.Marshal(stored)

	mock.ExpectQuery("SELECT value").
		WithArgs(kvKeyDraft).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(payload)))

	draft, err := repo.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Role != "Data Scientist" {
		t.Errorf("unexpected draft: %+v", draft)
	}
}

func TestLoadDraft_NotFound(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value").
		WithArgs(kvKeyDraft).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadDraft(ctx)
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestLoadDraft_CorruptPayloadReadsAsAbsent(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value").
		WithArgs(kvKeyDraft).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{broken"))

	_, err := repo.LoadDraft(ctx)
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestClearDraft(t *testing.T) {
	repo, mock, db := newTestDraftRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM local_kv").
		WithArgs(kvKeyDraft).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearDraft(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
