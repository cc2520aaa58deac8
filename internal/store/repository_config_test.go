package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/siteforge-io/siteforge/internal/logger"
)

func newTestConfigRepo(t *testing.T) (*configRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &configRepository{
		db:     &DB{DB: db, placeholder: sq.Dollar, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestConfigRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestConfigRepo(t)
	defer db.Close()

	stored := `{"site":{"title":"Acme"}}`
	rows := sqlmock.NewRows([]string{"value"}).AddRow(stored)

	mock.ExpectQuery("SELECT value FROM site_configs").
		WithArgs("default").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != stored {
		t.Errorf("expected %s, got %s", stored, got)
	}
}

func TestConfigRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestConfigRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM site_configs").
		WithArgs("default").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "default")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConfigRepository_Get_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestConfigRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM site_configs").
		WithArgs("default").
		WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), "default")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestConfigRepository_Put_InsertsNewDocument(t *testing.T) {
	repo, mock, db := newTestConfigRepo(t)
	defer db.Close()

	doc := `{"theme":{"primary":"#123456"}}`

	mock.ExpectExec("INSERT INTO site_configs").
		WithArgs("default", doc).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Put(context.Background(), "default", []byte(doc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigRepository_Put_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestConfigRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_configs").
		WithArgs("default", "{}").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	err := repo.Put(context.Background(), "default", []byte("{}"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRetryablePostgresError(t *testing.T) {
	if !retryablePostgresError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}) {
		t.Error("deadlock should be retryable")
	}
	if retryablePostgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}) {
		t.Error("unique violation should not be retryable")
	}
	if retryablePostgresError(errors.New("plain")) {
		t.Error("non-pg errors should not be retryable")
	}
}
