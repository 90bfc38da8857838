package gateway

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsGateway_HideAllPostingsOwnedBy(t *testing.T) {
	const accountID = "550e8400-e29b-41d4-a716-446655440001"
	hideQuery := regexp.QuoteMeta("UPDATE jobs SET is_visible = false WHERE user_id = $1")

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "hides postings",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(hideQuery).WithArgs(accountID).WillReturnResult(sqlmock.NewResult(0, 3))
			},
		},
		{
			name: "no postings",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(hideQuery).WithArgs(accountID).WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(hideQuery).WithArgs(accountID).WillReturnError(errors.New("lock timeout"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()

			tc.mockSetup(mock)
			err = NewJobsGateway(sqlx.NewDb(mockDB, "pgx")).HideAllPostingsOwnedBy(context.Background(), accountID)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to hide job postings")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoopJobsGateway(t *testing.T) {
	assert.NoError(t, NoopJobsGateway{}.HideAllPostingsOwnedBy(context.Background(), "any"))
}
