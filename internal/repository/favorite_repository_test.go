package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

const favUserID = "c4a2e9ce-95a2-4a5f-92f4-9d2b9aa25c1f"

func TestFavoriteRepositoryFind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewFavoriteRepository(db)
	rows := sqlmock.NewRows([]string{"user_id", "room_id", "created_at"}).
		AddRow(favUserID, 101, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, room_id, created_at FROM favorites")).
		WithArgs(favUserID, int64(101)).
		WillReturnRows(rows)

	favorite, err := repo.Find(context.Background(), favUserID, 101)
	require.NoError(t, err)
	require.Equal(t, int64(101), favorite.RoomID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepositoryFindAbsent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewFavoriteRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, room_id, created_at FROM favorites")).
		WithArgs(favUserID, int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), favUserID, 999)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepositoryCreateDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewFavoriteRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favorites")).
		WithArgs(favUserID, int64(101), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), favUserID, 101))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites")).
		WithArgs(favUserID, int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), favUserID, 101))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepositoryListWithRooms(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewFavoriteRepository(db)
	rows := sqlmock.NewRows([]string{"user_id", "room_id", "created_at", "room_number", "building_code"}).
		AddRow(favUserID, 101, time.Now(), "225", "IT5").
		AddRow(favUserID, 102, time.Now(), "301", "IT5")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT f.user_id, f.room_id, f.created_at")).
		WithArgs(favUserID).
		WillReturnRows(rows)

	favorites, err := repo.ListWithRooms(context.Background(), favUserID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.Equal(t, "225", favorites[0].RoomNumber)
	require.Equal(t, "IT5", favorites[0].BuildingCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
