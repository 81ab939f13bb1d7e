package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/migrations"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T, dialect string) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: dialect, logger: l},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).AddRow(1, "john@auth.gr", "hash", now)

	mock.ExpectQuery(`INSERT INTO users \(email,password_hash\) VALUES \(\$1,\$2\) RETURNING`).
		WithArgs("john@auth.gr", "hash").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{Email: "john@auth.gr", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john@auth.gr", created.Email)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery(`INSERT INTO users \(email,password_hash\) VALUES \(\?,\?\)`).
		WithArgs("a@auth.gr", "h").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "a@auth.gr", "h", time.Now()))

	created, err := repo.CreateUser(context.Background(), models.User{Email: "a@auth.gr", PasswordHash: "h"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@auth.gr"})

	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_ConnectionFailure(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@auth.gr"})

	assert.ErrorIs(t, err, ErrDBUnavailable)
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@auth.gr"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// FindUserByEmail
// ─────────────────────────────────────────────

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery(`SELECT user_id, email, password_hash, created_at FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("john@auth.gr").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "john@auth.gr", "hash", time.Now()))

	found, err := repo.FindUserByEmail(context.Background(), "john@auth.gr")

	require.NoError(t, err)
	assert.Equal(t, int64(3), found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectPostgres)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost@auth.gr").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@auth.gr")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery("SELECT user_id").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@auth.gr")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// SQLite end to end
// ─────────────────────────────────────────────

func TestUserRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "auth.db")

	db, err := NewConnectDB(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	assert.Equal(t, migrations.DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	repo := NewStorages(db, logger.Nop()).UserRepository

	created, err := repo.CreateUser(ctx, models.User{Email: "νικος@auth.gr", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.CreateUser(ctx, models.User{Email: "νικος@auth.gr", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "νικος@auth.gr")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "h", found.PasswordHash)

	_, err = repo.FindUserByEmail(ctx, "nobody@auth.gr")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestNewConnectDB_EmptyDSN(t *testing.T) {
	_, err := NewConnectDB(context.Background(), config.DB{}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestScanTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   any
		want    time.Time
		wantErr bool
	}{
		{name: "time value", value: want, want: want},
		{name: "sqlite text", value: "2026-03-01 12:30:00", want: want},
		{name: "rfc3339 bytes", value: []byte("2026-03-01T12:30:00Z"), want: want},
		{name: "null", value: nil, want: time.Time{}},
		{name: "garbage", value: "yesterday", wantErr: true},
		{name: "integer", value: int64(5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			err := scanTime{&got}.Scan(tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrScanningRow)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
