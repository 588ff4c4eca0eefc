package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrateUp(t *testing.T) {
	t.Parallel()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = database.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS summaries").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS usage_events").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_summaries_created_at").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_usage_events_success").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_usage_events_endpoint").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := MigrateUp(database); err != nil {
		t.Fatalf("MigrateUp err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMigrateUp_WrapsStatementError(t *testing.T) {
	t.Parallel()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = database.Close() }()

	execErr := errors.New("permission denied")
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS summaries").
		WillReturnError(execErr)

	err = MigrateUp(database)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, execErr) {
		t.Errorf("err=%v, want wrapped %v", err, execErr)
	}
	if !strings.Contains(err.Error(), "create summaries table") {
		t.Errorf("err=%v, want failing statement context", err)
	}
}

func TestMigrateDown(t *testing.T) {
	t.Parallel()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = database.Close() }()

	mock.ExpectExec("DROP TABLE IF EXISTS usage_events").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS summaries").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := MigrateDown(database); err != nil {
		t.Fatalf("MigrateDown err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
