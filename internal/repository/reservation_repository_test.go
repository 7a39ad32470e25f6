package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/team7/classroom-informer-api/internal/models"
)

func TestReservationRepositoryListConfirmedAt(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReservationRepository(db)
	at := time.Date(2026, 3, 2, 10, 50, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "room_id", "user_id", "start_at", "end_at", "status"}).
		AddRow("res-1", 101, favUserID, at.Add(-time.Hour), at.Add(time.Hour), "confirmed")
	mock.ExpectQuery(regexp.QuoteMeta("start_at <= $3 AND end_at > $3")).
		WithArgs(int64(101), models.ReservationConfirmed, at).
		WillReturnRows(rows)

	reservations, err := repo.ListConfirmedAt(context.Background(), 101, at)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	require.Equal(t, models.ReservationConfirmed, reservations[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryListConfirmedOverlapping(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReservationRepository(db)
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("start_at < $4 AND end_at > $3")).
		WithArgs(int64(101), models.ReservationConfirmed, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "user_id", "start_at", "end_at", "status"}))

	reservations, err := repo.ListConfirmedOverlapping(context.Background(), 101, from, to)
	require.NoError(t, err)
	require.Empty(t, reservations)
	require.NoError(t, mock.ExpectationsWereMet())
}
