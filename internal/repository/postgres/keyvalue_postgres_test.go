package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestKeyValuePostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewKeyValuePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"d1"}]`))
		mock.ExpectQuery("SELECT value FROM kv_store WHERE key = ?").
			WithArgs("downloaded_documents").
			WillReturnRows(rows)

		value, err := repo.Get(ctx, "downloaded_documents")

		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":"d1"}]`, string(value))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store WHERE key = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		value, err := repo.Get(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, value)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValuePostgres_Put(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewKeyValuePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("downloaded_documents", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Put(ctx, "downloaded_documents", []byte(`[]`)))

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("downloaded_documents", []byte(`[]`)).
		WillReturnError(errors.New("db down"))

	assert.EqualError(t, repo.Put(ctx, "downloaded_documents", []byte(`[]`)), "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValuePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewKeyValuePostgres(db)

	mock.ExpectExec("DELETE FROM kv_store WHERE key = ?").
		WithArgs("downloaded_documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "downloaded_documents"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
