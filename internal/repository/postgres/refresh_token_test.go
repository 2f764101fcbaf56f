package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authcore/internal/model"
)

func TestRefreshTokenRepository_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("inserted", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectExec(`INSERT INTO refresh_tokens`).
			WithArgs(pgxmock.AnyArg(), "rt1", userID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := NewRefreshTokenRepository(conn).Create(context.Background(), model.RefreshToken{Token: "rt1", UserID: userID})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectExec(`INSERT INTO refresh_tokens`).
			WithArgs(pgxmock.AnyArg(), "rt1", userID).
			WillReturnError(errors.New("foreign key violation"))

		err := NewRefreshTokenRepository(conn).Create(context.Background(), model.RefreshToken{Token: "rt1", UserID: userID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create refresh token")
	})
}

func TestRefreshTokenRepository_GetByToken(t *testing.T) {
	id, userID := uuid.New(), uuid.New()
	now := time.Now().UTC()
	columns := []string{"id", "token", "user_id", "created_at", "updated_at"}

	t.Run("live", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1`).
			WithArgs("rt1").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "rt1", userID, now, now))

		got, err := NewRefreshTokenRepository(conn).GetByToken(context.Background(), "rt1")
		require.NoError(t, err)
		assert.Equal(t, model.RefreshToken{ID: id, Token: "rt1", UserID: userID, CreatedAt: now, UpdatedAt: now}, got)
	})

	t.Run("absent", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1`).
			WithArgs("rt1").
			WillReturnRows(pgxmock.NewRows(columns))

		_, err := NewRefreshTokenRepository(conn).GetByToken(context.Background(), "rt1")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
		errMsg   string
	}{
		{name: "rotated", affected: 1},
		{name: "superseded token", affected: 0, wantErr: model.ErrNotFound},
		{name: "database error", execErr: errors.New("deadlock detected"), errMsg: "failed to rotate refresh token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, conn := newMockConnection(t)
			exp := mock.ExpectExec(`UPDATE refresh_tokens SET token = \$2`).WithArgs("rt1", "rt2")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			err := NewRefreshTokenRepository(conn).Rotate(context.Background(), "rt1", "rt2")

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("by token is idempotent", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1`).
			WithArgs("rt1").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		require.NoError(t, NewRefreshTokenRepository(conn).DeleteByToken(context.Background(), "rt1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all by user", func(t *testing.T) {
		mock, conn := newMockConnection(t)
		mock.ExpectExec(`DELETE FROM refresh_tokens WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		require.NoError(t, NewRefreshTokenRepository(conn).DeleteAllByUser(context.Background(), userID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
