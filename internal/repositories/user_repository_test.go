package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedKind  apperrors.Kind
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users \(username, email, password_hash, role\)`).
					WithArgs("ann", "ann@example.com", "hash", 2).
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
		},
		{
			name: "duplicate",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).WillReturnError(&mysql.MySQLError{Number: 1062})
			},
			expectedError: true,
			expectedKind:  apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)

			user := &models.User{Username: "ann", Email: "ann@example.com", PasswordHash: "hash", Role: models.RoleTeacher}
			err = NewUserRepository(db).Create(context.Background(), user)

			if tt.expectedError {
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, role FROM users WHERE email = \?`).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role"}).AddRow(3, "ann", "ann@example.com", "hash", 2))
	mock.ExpectQuery(`SELECT id, username, email, password_hash, role FROM users WHERE email = \?`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
