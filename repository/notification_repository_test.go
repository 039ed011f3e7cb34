package repository

import (
	"context"
	"testing"

	"marketplace-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormNotificationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormNotificationRepository(db)

	notificationID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID))
	mock.ExpectCommit()

	notification := &models.Notification{
		UserID:  uuid.New(),
		Title:   "New order received",
		Message: "You received a new order.",
		Type:    models.TypeOrderCreated,
	}
	err := repo.Create(context.Background(), notification)

	require.NoError(t, err)
	assert.Equal(t, notificationID, notification.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormNotificationRepository_MarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormNotificationRepository(db)

	id := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "read_status"=\$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs(true, id, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkRead(context.Background(), id, userID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormNotificationRepository_MarkRead_WrongOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "read_status"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.MarkRead(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
