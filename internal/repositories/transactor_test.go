package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_WithinTx(t *testing.T) {
	tests := []struct {
		name          string
		fn            func(ctx context.Context) error
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "commit on success",
			fn:   func(ctx context.Context) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "rollback on error",
			fn:   func(ctx context.Context) error { return errors.New("boom") },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "begin error",
			fn:   func(ctx context.Context) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			expectedError: true,
		},
		{
			name: "commit error",
			fn:   func(ctx context.Context) error { return nil },
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)

			err = NewTransactor(db).WithinTx(context.Background(), tt.fn)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM lessons`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tr := NewTransactor(db)
	err = tr.WithinTx(context.Background(), func(ctx context.Context) error {
		return tr.WithinTx(ctx, func(ctx context.Context) error {
			_, ok := conn(ctx, db).(*sql.Tx)
			assert.True(t, ok)
			_, err := conn(ctx, db).ExecContext(ctx, "DELETE FROM lessons")
			return err
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDuplicateOr(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	err := duplicateOr(dup, apperrors.ErrAlreadyEnrolled)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyEnrolled))

	other := &mysql.MySQLError{Number: 1452, Message: "foreign key"}
	assert.Equal(t, other, duplicateOr(other, apperrors.ErrAlreadyEnrolled))
}
