package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_DecrementStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)

	productID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock_quantity"=stock_quantity - \$1 WHERE id = \$2 AND stock_quantity >= \$3`).
		WithArgs(3, productID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DecrementStock(context.Background(), productID, 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_DecrementStock_Insufficient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)

	productID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock_quantity"=stock_quantity - \$1 WHERE id = \$2 AND stock_quantity >= \$3`).
		WithArgs(100, productID, 100).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DecrementStock(context.Background(), productID, 100)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
