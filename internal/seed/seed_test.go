package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"leavehub/internal/seed"
)

func setupSeedTest(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestRun_SkipsWhenUsersExist(t *testing.T) {
	gormDB, mock, cleanup := setupSeedTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := seed.Run(context.Background(), gormDB)
	assert.NoError(t, err)

	// No transaction may have started: an existing deployment must never be
	// re-seeded.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_PropagatesCountError(t *testing.T) {
	gormDB, mock, cleanup := setupSeedTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("relation \"users\" does not exist"))

	err := seed.Run(context.Background(), gormDB)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
